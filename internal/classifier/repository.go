package classifier

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kmoussa/dragoman/internal/prompts"
	"github.com/kmoussa/dragoman/internal/terms"
	"github.com/kmoussa/dragoman/internal/vocabularies"
	"github.com/kmoussa/dragoman/pkg/pagination"
	"github.com/kmoussa/dragoman/pkg/query"
	"github.com/kmoussa/dragoman/pkg/repository"
)

type repo struct {
	db         *sql.DB
	oracle     Oracle
	agent      gaconfig.AgentConfig
	terms      terms.System
	vocabs     vocabularies.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a classification run repository implementing the System
// interface. It internally constructs the categorization oracle from the
// provided agent config and prompt system.
func New(
	db *sql.DB,
	agent gaconfig.AgentConfig,
	logger *slog.Logger,
	pagination pagination.Config,
	terms terms.System,
	vocabs vocabularies.System,
	prompts prompts.System,
) System {
	return &repo{
		db:         db,
		oracle:     NewOracle(agent, prompts),
		agent:      agent,
		terms:      terms,
		vocabs:     vocabs,
		logger:     logger.With("system", "classifier"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Run], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ModelName", "ProviderName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count classification runs: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	runs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRun)
	if err != nil {
		return nil, fmt.Errorf("query classification runs: %w", err)
	}

	result := pagination.NewPageResult(runs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Run, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	run, err := repository.QueryOne(ctx, r.db, q, args, scanRun)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &run, nil
}

// Classify runs a full classification pass over a vocabulary: download,
// parse, classify every entry, merge verdicts in workbook order, replace
// the dictionary, and record the run. Oracle failure aborts before any
// persistence; the prior dictionary stays authoritative.
func (r *repo) Classify(ctx context.Context, vocabularyID uuid.UUID) (*Run, error) {
	startedAt := time.Now().UTC()

	vocab, data, err := r.vocabs.Download(ctx, vocabularyID)
	if err != nil {
		return nil, err
	}

	entries, skipped, err := vocabularies.ParseWorkbook(data, vocab.Filename, vocab.ContentType)
	if err != nil {
		return nil, err
	}

	verdicts, err := classifyEntries(ctx, r.oracle, entries)
	if err != nil {
		if statusErr := r.vocabs.SetStatus(ctx, vocabularyID, vocabularies.StatusFailed); statusErr != nil {
			r.logger.Warn("vocabulary status update failed", "id", vocabularyID, "error", statusErr)
		}
		return nil, fmt.Errorf("classify vocabulary %s: %w", vocabularyID, err)
	}

	merged, rejections := mergeVerdicts(entries, verdicts, skipped, startedAt)

	if _, err := r.terms.ReplaceAll(ctx, merged); err != nil {
		if statusErr := r.vocabs.SetStatus(ctx, vocabularyID, vocabularies.StatusFailed); statusErr != nil {
			r.logger.Warn("vocabulary status update failed", "id", vocabularyID, "error", statusErr)
		}
		return nil, fmt.Errorf("replace dictionary: %w", err)
	}

	if err := r.vocabs.SetStatus(ctx, vocabularyID, vocabularies.StatusClassified); err != nil {
		r.logger.Warn("vocabulary status update failed", "id", vocabularyID, "error", err)
	}

	run, err := r.record(ctx, vocab.ID, len(entries), len(merged), rejections, startedAt)
	if err != nil {
		return nil, err
	}

	r.logger.Info("classification run complete",
		"id", run.ID,
		"vocabulary_id", vocab.ID,
		"classified", run.Classified,
		"rejected", run.Rejected,
	)
	return run, nil
}

func (r *repo) record(
	ctx context.Context,
	vocabularyID uuid.UUID,
	totalRows, classified int,
	rejections []Rejection,
	startedAt time.Time,
) (*Run, error) {
	rejectionsJSON, err := json.Marshal(rejections)
	if err != nil {
		return nil, fmt.Errorf("marshal rejections: %w", err)
	}

	q := `
		INSERT INTO classification_runs(
			vocabulary_id, total_rows, classified, rejected,
			rejections, model_name, provider_name, started_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, vocabulary_id, total_rows, classified, rejected,
				  rejections, model_name, provider_name, started_at, completed_at`

	args := []any{
		vocabularyID,
		totalRows,
		classified,
		len(rejections),
		rejectionsJSON,
		r.agent.Model.Name,
		r.agent.Provider.Name,
		startedAt,
	}

	run, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Run, error) {
		return repository.QueryOne(ctx, tx, q, args, scanRun)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &run, nil
}

// mergeVerdicts folds verdicts into dictionary terms in workbook order.
// When two entries resolve to the same (category, code) pair, the later
// row overwrites the earlier one. Unclassifiable and unrecognized
// categories become rejections.
func mergeVerdicts(
	entries []vocabularies.RawEntry,
	verdicts []*Verdict,
	skipped []vocabularies.SkippedRow,
	classifiedAt time.Time,
) ([]terms.Term, []Rejection) {
	rejections := make([]Rejection, 0, len(skipped))
	for _, s := range skipped {
		rejections = append(rejections, Rejection{Row: s.Row, Reason: s.Reason})
	}

	slots := make(map[string]int, len(entries))
	merged := make([]terms.Term, 0, len(entries))

	for i, entry := range entries {
		verdict := verdicts[i]

		if verdict.Category == CategoryUnclassifiable {
			rejections = append(rejections, Rejection{
				Row:          entry.Row,
				Code:         entry.Code,
				SourcePhrase: entry.SourceText,
				Reason:       verdict.Rationale,
			})
			continue
		}

		category, err := terms.ParseCategory(verdict.Category)
		if err != nil {
			rejections = append(rejections, Rejection{
				Row:          entry.Row,
				Code:         entry.Code,
				SourcePhrase: entry.SourceText,
				Reason:       fmt.Sprintf("unrecognized category %q", verdict.Category),
			})
			continue
		}

		t := terms.Term{
			ID:           uuid.New(),
			Code:         terms.NormalizeCode(entry.Code),
			Category:     category,
			SourcePhrase: entry.SourceText,
			TargetPhrase: entry.TargetText,
			ClassifiedAt: classifiedAt,
		}

		key := string(category) + "|" + t.Code
		if at, ok := slots[key]; ok {
			merged[at] = t
			continue
		}

		slots[key] = len(merged)
		merged = append(merged, t)
	}

	return merged, rejections
}
