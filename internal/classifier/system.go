package classifier

import (
	"context"

	"github.com/google/uuid"

	"github.com/kmoussa/dragoman/pkg/pagination"
)

// System defines the public contract for classification run operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Run], error)

	Find(ctx context.Context, id uuid.UUID) (*Run, error)

	// Classify runs a full classification pass over a vocabulary and
	// atomically replaces the term dictionary with the merged results.
	Classify(ctx context.Context, vocabularyID uuid.UUID) (*Run, error)
}
