package inference

import "go.uber.org/fx"

// FXModule wires the inference client into Fx.
//
// It provides:
//   - *Client (NewClient, depends on *rest.Client)
var FXModule = fx.Module(
	"inference",

	fx.Provide(
		NewClient, // -> *Client
	),
)
