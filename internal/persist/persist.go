package persist

import (
	"context"
	"time"
)

// Results is the opaque payload of one run, keyed by output kind.
type Results map[string]any

// RunMeta identifies one run in the snapshot store.
type RunMeta struct {
	// ID is the run identifier; the store assigns one when left empty.
	ID string

	// Kind names the operation that produced the results, such as
	// "structure", "cascade" or "simulation".
	Kind string

	// Label is a free-form description, usually the initial
	// configuration list of the run.
	Label string

	// StartedAt is when the run began.
	StartedAt time.Time
}

// Store persists run results.
type Store interface {
	Save(ctx context.Context, meta RunMeta, results Results) error
}

// Discard drops every snapshot.
type Discard struct{}

var _ Store = Discard{}

func (Discard) Save(context.Context, RunMeta, Results) error { return nil }
