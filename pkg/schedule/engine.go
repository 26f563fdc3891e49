package schedule

import (
	"github.com/railboard/railboard/pkg/store"
)

// Engine answers schedule resolution queries against one immutable
// record store generation. Every method is a pure function of its
// arguments and the snapshot; an Engine holds no mutable state, so it is
// safe for concurrent use and cheap to rebuild when the feed generation
// changes.
type Engine struct {
	records    *store.Store
	directions DirectionResolver
}

func New(records *store.Store, directions DirectionResolver) *Engine {
	return &Engine{
		records:    records,
		directions: directions,
	}
}

// Records exposes the snapshot this engine was built over.
func (e *Engine) Records() *store.Store {
	return e.records
}
