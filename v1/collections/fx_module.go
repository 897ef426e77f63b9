package collections

import "go.uber.org/fx"

// FXModule wires the collection management client into Fx.
//
// It provides:
//   - *Client (NewClient, depends on *rest.Client)
var FXModule = fx.Module(
	"collections",

	fx.Provide(
		NewClient, // -> *Client
	),
)
