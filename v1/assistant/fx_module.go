package assistant

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

// FXModule wires the assistant management client into Fx. DataClients
// are per assistant and created on demand via NewDataClientFor.
//
// It provides:
//   - *Client (NewClient, depends on *rest.Client)
var FXModule = fx.Module(
	"assistant",

	fx.Provide(
		NewClient, // -> *Client
	),
)

// NewDataClientFor resolves the assistant's data-plane host and returns a
// DataClient bound to it.
func NewDataClientFor(ctx context.Context, rc *rest.Client, mgr *Client, name string) (*DataClient, error) {
	host, err := mgr.DataPlaneHost(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewDataClient(rc, host, name)
}
