package imports

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/vectorhub/v1/index"
	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

// Factory builds import clients by index name, resolving each index's
// data-plane host through the control plane.
type Factory struct {
	rest *rest.Client
	idx  *index.Client
}

// NewFactory constructs a Factory from the shared transport and the index
// management client.
func NewFactory(rc *rest.Client, idx *index.Client) (*Factory, error) {
	if rc == nil {
		return nil, fmt.Errorf("imports: nil rest client")
	}
	if idx == nil {
		return nil, fmt.Errorf("imports: nil index client")
	}
	return &Factory{rest: rc, idx: idx}, nil
}

// ForIndex resolves the index's data-plane host and returns an import
// client bound to it.
func (f *Factory) ForIndex(ctx context.Context, name string) (*Client, error) {
	host, err := f.idx.DataPlaneHost(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewClient(f.rest, host)
}

// FXModule wires the imports factory into Fx.
//
// It provides:
//   - *Factory (NewFactory, depends on *rest.Client and *index.Client)
var FXModule = fx.Module(
	"imports",

	fx.Provide(
		NewFactory, // -> *Factory
	),
)
