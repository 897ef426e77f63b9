package rest

import (
	"context"

	"go.uber.org/fx"
)

// FXModule wires the transport client into Fx.
//
// It provides:
//   - *Config  (NewConfigFromEnv)
//   - *Client  (NewClient)
//   - Lifecycle hook (RegisterRestLifecycle)
var FXModule = fx.Module(
	"rest",

	fx.Provide(
		NewConfigFromEnv, // -> *Config
		NewClient,        // -> *Client
	),

	fx.Invoke(RegisterRestLifecycle),
)

// RegisterRestLifecycle releases transport resources on application
// shutdown.
func RegisterRestLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
