package core

import "context"

// Source defines the contract for providing content records.
// Adhering to this interface keeps the core independent of where content
// actually lives (filesystem, embedded assets, a test double).
type Source interface {
	// List returns all loadable records in enumeration order.
	// Per-file failures degrade the result set, they do not fail the call.
	List(ctx context.Context) ([]Record, error)

	// Get retrieves a single record by its slug.
	// Returns ErrNotFound when no content file matches.
	Get(ctx context.Context, slug string) (Record, error)
}

// Watchable defines an interface for sources that can report changes to
// their underlying content files.
type Watchable interface {
	// Watch emits an Event per observed content change until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
