package vocabularies

import (
	"context"

	"github.com/google/uuid"

	"github.com/kmoussa/dragoman/pkg/pagination"
)

// System defines the public contract for vocabulary domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Vocabulary], error)

	Find(ctx context.Context, id uuid.UUID) (*Vocabulary, error)
	Create(ctx context.Context, cmd CreateCommand) (*Vocabulary, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Download returns the raw workbook bytes for a registered vocabulary.
	Download(ctx context.Context, id uuid.UUID) (*Vocabulary, []byte, error)

	// SetStatus updates the vocabulary's lifecycle status.
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}
