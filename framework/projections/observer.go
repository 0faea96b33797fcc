package projections

import (
	"context"

	"github.com/retro-framework/go-archglob/framework/archglob"
)

// Observer is told about every glob the server expands. Observers must
// not fail the request, whatever goes wrong is theirs to log.
type Observer interface {
	Observe(ctx context.Context, res archglob.Result)
}

type Noop struct{}

func (Noop) Observe(context.Context, archglob.Result) {}

// Multi fans out to every observer in order.
type Multi []Observer

func (m Multi) Observe(ctx context.Context, res archglob.Result) {
	for _, o := range m {
		o.Observe(ctx, res)
	}
}
