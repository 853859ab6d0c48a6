package terms

import (
	"context"

	"github.com/google/uuid"

	"github.com/kmoussa/dragoman/pkg/lifecycle"
	"github.com/kmoussa/dragoman/pkg/pagination"
)

// System defines the public contract for term dictionary operations.
// Resolution and phrase matching read from an immutable in-memory snapshot
// that is swapped atomically; callers never observe a partially loaded
// dictionary.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Term], error)

	Find(ctx context.Context, id uuid.UUID) (*Term, error)

	// Snapshot returns the current dictionary snapshot. The result is
	// immutable and safe for concurrent use.
	Snapshot() *Snapshot

	// Reload rebuilds the snapshot from persisted terms and swaps it in.
	// On failure the previous snapshot stays active.
	Reload(ctx context.Context) (*Snapshot, error)

	// ReplaceAll atomically replaces the persisted dictionary with the
	// given entries and reloads the snapshot.
	ReplaceAll(ctx context.Context, entries []Term) (*Snapshot, error)

	Start(lc *lifecycle.Coordinator)
}
