// Copyright (c) 2026 ArtScope. All rights reserved.

package browse

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/platform/constants"
)

// Source is the part of the collection client a run needs.
type Source interface {
	DepartmentID(ctx context.Context, name string) (int, bool, error)
	Search(ctx context.Context, params collection.SearchParams) ([]int, error)
	Object(ctx context.Context, id int) (*collection.Artwork, error)
}

// Outcome is the committed result of a completed run. NoResults is set when a
// non-empty filter produced nothing, whether from a true empty match or an
// upstream fault.
type Outcome struct {
	Artworks  []collection.Artwork `json:"artworks"`
	NoResults bool                 `json:"noResults"`
}

// Reconciler executes runs against a [Source]. It holds no per-run state and is
// safe to share between sessions.
type Reconciler struct {
	source     Source
	shuffler   Shuffler
	fetchDelay time.Duration
	logger     *slog.Logger
}

// Option customises a [Reconciler].
type Option func(*Reconciler)

// WithShuffler replaces the candidate shuffle.
func WithShuffler(shuffler Shuffler) Option {
	return func(reconciler *Reconciler) { reconciler.shuffler = shuffler }
}

// WithFetchDelay sets the minimum spacing between object fetches.
func WithFetchDelay(delay time.Duration) Option {
	return func(reconciler *Reconciler) { reconciler.fetchDelay = delay }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(reconciler *Reconciler) { reconciler.logger = logger }
}

// NewReconciler constructs a [Reconciler].
func NewReconciler(source Source, options ...Option) *Reconciler {
	reconciler := &Reconciler{
		source:     source,
		shuffler:   RandomShuffle,
		fetchDelay: constants.DefaultFetchDelay,
		logger:     slog.Default(),
	}
	for _, option := range options {
		option(reconciler)
	}
	reconciler.logger = reconciler.logger.With(slog.String("component", "reconciler"))
	return reconciler
}

func (reconciler *Reconciler) limiter() *rate.Limiter {
	if reconciler.fetchDelay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(reconciler.fetchDelay), 1)
}

/*
Run reconciles filter into a gallery.

An empty filter yields an empty Outcome without touching the network. Search
faults end the run with NoResults; individual object faults are skipped.

Returns:
  - Outcome: The accepted records in fetch order
  - error: ctx.Err() when the run was cancelled, otherwise nil
*/
func (reconciler *Reconciler) Run(ctx context.Context, filter Filter) (Outcome, error) {
	if filter.IsEmpty() {
		return Outcome{}, nil
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	started := time.Now()
	logger := reconciler.logger.With(slog.Bool("search", filter.IsSearch()))

	plan, err := reconciler.buildPlan(ctx, filter)
	if err != nil {
		return reconciler.searchFault(ctx, logger, err)
	}

	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	ids, err := reconciler.source.Search(ctx, plan.params)
	if err != nil {
		return reconciler.searchFault(ctx, logger, err)
	}
	if len(ids) == 0 {
		logger.Info("reconcile_no_candidates", slog.String("q", plan.params.Query))
		return Outcome{NoResults: true}, nil
	}

	candidates := slices.Clone(ids)
	reconciler.shuffler.Shuffle(candidates)
	if len(candidates) > plan.limits.FetchBudget {
		candidates = candidates[:plan.limits.FetchBudget]
	}

	limiter := reconciler.limiter()
	accepted := make([]collection.Artwork, 0, plan.limits.ResultCap)
	fetched, failed := 0, 0

	for _, id := range candidates {
		if len(accepted) >= plan.limits.ResultCap {
			break
		}
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return Outcome{}, ctx.Err()
			}
			// The next slot lies beyond the deadline; keep what was accepted.
			break
		}

		artwork, err := reconciler.source.Object(ctx, id)
		fetched++
		if err != nil {
			if ctx.Err() != nil {
				return Outcome{}, ctx.Err()
			}
			failed++
			logger.Warn("object_fetch_failed", slog.Int("object_id", id), slog.Any("error", err))
			continue
		}
		if plan.matcher.accepts(artwork) {
			accepted = append(accepted, *artwork)
		}
	}

	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	logger.Info("reconcile_completed",
		slog.Int("candidates", len(ids)),
		slog.Int("fetched", fetched),
		slog.Int("failed", failed),
		slog.Int("accepted", len(accepted)),
		slog.Duration("elapsed", time.Since(started)),
	)
	return Outcome{Artworks: accepted, NoResults: len(accepted) == 0}, nil
}

func (reconciler *Reconciler) searchFault(ctx context.Context, logger *slog.Logger, err error) (Outcome, error) {
	if ctx.Err() != nil {
		return Outcome{}, ctx.Err()
	}
	logger.Warn("search_failed", slog.Any("error", err))
	return Outcome{NoResults: true}, nil
}
