package vectors

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/vectorhub/v1/index"
	"github.com/Aleph-Alpha/vectorhub/v1/rest"
)

// Factory builds data-plane clients by index name, resolving each index's
// host through the control plane on first use of that name.
type Factory struct {
	rest *rest.Client
	idx  *index.Client
}

// NewFactory constructs a Factory from the shared transport and the index
// management client.
func NewFactory(rc *rest.Client, idx *index.Client) (*Factory, error) {
	if rc == nil {
		return nil, fmt.Errorf("vectors: nil rest client")
	}
	if idx == nil {
		return nil, fmt.Errorf("vectors: nil index client")
	}
	return &Factory{rest: rc, idx: idx}, nil
}

// ForIndex resolves the index's data-plane host and returns a vectors
// client bound to it.
func (f *Factory) ForIndex(ctx context.Context, name string, opts ...Option) (*Client, error) {
	host, err := f.idx.DataPlaneHost(ctx, name)
	if err != nil {
		return nil, err
	}
	return NewClient(f.rest, host, opts...)
}

// FXModule wires the vectors factory into Fx. Individual clients are per
// index and created on demand via Factory.ForIndex.
//
// It provides:
//   - *Factory (NewFactory, depends on *rest.Client and *index.Client)
var FXModule = fx.Module(
	"vectors",

	fx.Provide(
		NewFactory, // -> *Factory
	),
)
