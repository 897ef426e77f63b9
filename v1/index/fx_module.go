package index

import "go.uber.org/fx"

// FXModule wires the index management client into Fx.
//
// It provides:
//   - *Client (NewClient, depends on *rest.Client)
var FXModule = fx.Module(
	"index",

	fx.Provide(
		NewClient, // -> *Client
	),
)
