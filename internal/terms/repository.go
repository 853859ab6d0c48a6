package terms

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kmoussa/dragoman/pkg/lifecycle"
	"github.com/kmoussa/dragoman/pkg/pagination"
	"github.com/kmoussa/dragoman/pkg/query"
	"github.com/kmoussa/dragoman/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	snapshot   atomic.Pointer[Snapshot]
}

// New creates a term repository implementing the System interface.
// The snapshot starts empty; Start loads it from the database during
// application startup.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	r := &repo{
		db:         db,
		logger:     logger.With("system", "terms"),
		pagination: pagination,
	}
	r.snapshot.Store(NewSnapshot(nil))
	return r
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Term], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Code", "SourcePhrase", "TargetPhrase")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count terms: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	entries, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTerm)
	if err != nil {
		return nil, fmt.Errorf("query terms: %w", err)
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Term, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTerm)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Snapshot() *Snapshot {
	return r.snapshot.Load()
}

func (r *repo) Reload(ctx context.Context) (*Snapshot, error) {
	entries, err := r.loadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReloadFailed, err)
	}

	snap := NewSnapshot(entries)
	r.snapshot.Store(snap)

	r.logger.Info("term snapshot reloaded", "terms", snap.Len())
	return snap, nil
}

func (r *repo) ReplaceAll(ctx context.Context, entries []Term) (*Snapshot, error) {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(ctx, "DELETE FROM terms"); err != nil {
			return struct{}{}, fmt.Errorf("clear terms: %w", err)
		}

		q := `
			INSERT INTO terms(id, code, category, source_phrase, target_phrase, classified_at)
			VALUES ($1, $2, $3, $4, $5, $6)`

		for _, t := range entries {
			if t.ID == uuid.Nil {
				t.ID = uuid.New()
			}
			if _, err := tx.ExecContext(
				ctx, q,
				t.ID, NormalizeCode(t.Code), t.Category,
				t.SourcePhrase, t.TargetPhrase, t.ClassifiedAt,
			); err != nil {
				return struct{}{}, fmt.Errorf("insert term %s: %w", t.Code, err)
			}
		}
		return struct{}{}, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	snap, err := r.Reload(ctx)
	if err != nil {
		return nil, err
	}

	r.logger.Info("term dictionary replaced", "terms", snap.Len())
	return snap, nil
}

func (r *repo) Start(lc *lifecycle.Coordinator) {
	lc.OnStartup(func() {
		if _, err := r.Reload(lc.Context()); err != nil {
			r.logger.Error("initial term snapshot load failed", "error", err)
		}
	})
}

func (r *repo) loadAll(ctx context.Context) ([]Term, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()
	return repository.QueryMany(ctx, r.db, q, args, scanTerm)
}
