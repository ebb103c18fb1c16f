// Copyright (c) 2026 ArtScope. All rights reserved.

package browse

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/taxonomy"
)

// Runner executes one reconciliation. [*Reconciler] is the production Runner.
type Runner interface {
	Run(ctx context.Context, filter Filter) (Outcome, error)
}

// Snapshot is a read-only view of a browsing context.
type Snapshot struct {
	Generation    uint64               `json:"generation"`
	Filter        Filter               `json:"filter"`
	Artworks      []collection.Artwork `json:"artworks"`
	Loading       bool                 `json:"loading"`
	NoResults     bool                 `json:"noResults"`
	SearchMode    bool                 `json:"searchMode"`
	ActiveFilters int                  `json:"activeFilters"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// # Controller

// Controller owns the filter state of one browsing context. State only changes
// through its transition methods; each effective change bumps the generation,
// cancels the run in flight and starts a new one. A run commits only while its
// generation is still current.
type Controller struct {
	runner  Runner
	catalog taxonomy.Catalog
	logger  *slog.Logger

	mu         sync.Mutex
	filter     Filter
	generation uint64
	artworks   []collection.Artwork
	loading    bool
	noResults  bool
	updatedAt  time.Time
	cancel     context.CancelFunc
	closed     bool

	subscribers map[uint64]chan Snapshot
	nextSub     uint64

	done chan struct{}
	runs sync.WaitGroup
}

// NewController constructs an idle [Controller] with an empty filter.
func NewController(runner Runner, catalog taxonomy.Catalog, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		runner:      runner,
		catalog:     catalog,
		logger:      logger,
		updatedAt:   time.Now(),
		subscribers: make(map[uint64]chan Snapshot),
		done:        make(chan struct{}),
	}
}

// # Transitions

// ToggleLeaf flips one leaf. For periods the leaf's range is selected
// exclusively. Unknown leaves leave the state untouched.
func (controller *Controller) ToggleLeaf(kind taxonomy.Kind, leaf string) Snapshot {
	if kind == taxonomy.KindPeriods {
		return controller.SelectPeriod(taxonomy.Path{Leaf: leaf})
	}

	hierarchy, ok := controller.catalog.Categories(kind)
	if !ok || !taxonomy.HasTerm(hierarchy, leaf) {
		return controller.Snapshot()
	}

	return controller.apply("toggle_leaf", func(filter Filter) Filter {
		if kind == taxonomy.KindDepartments {
			filter.Departments = taxonomy.ToggleLeaf(filter.Departments, leaf)
		} else {
			filter.Mediums = taxonomy.ToggleLeaf(filter.Mediums, leaf)
		}
		return filter
	})
}

// ToggleGroup applies the all-or-nothing toggle to a group or subgroup. For
// periods it selects the node's aggregate range.
func (controller *Controller) ToggleGroup(kind taxonomy.Kind, path taxonomy.Path) Snapshot {
	if kind == taxonomy.KindPeriods {
		return controller.SelectPeriod(path)
	}

	hierarchy, ok := controller.catalog.Categories(kind)
	if !ok {
		return controller.Snapshot()
	}
	leaves := taxonomy.LeavesOf(hierarchy, taxonomy.Path{Group: path.Group, Subgroup: path.Subgroup})
	if leaves.Len() == 0 {
		return controller.Snapshot()
	}

	return controller.apply("toggle_group", func(filter Filter) Filter {
		if kind == taxonomy.KindDepartments {
			filter.Departments = taxonomy.ToggleGroup(filter.Departments, leaves)
		} else {
			filter.Mediums = taxonomy.ToggleGroup(filter.Mediums, leaves)
		}
		return filter
	})
}

// SelectPeriod selects the range at path, replacing any previous one. Selecting
// the current range again clears it.
func (controller *Controller) SelectPeriod(path taxonomy.Path) Snapshot {
	period, ok := taxonomy.ResolvePeriod(controller.catalog.Periods, path)
	if !ok {
		return controller.Snapshot()
	}

	return controller.apply("select_period", func(filter Filter) Filter {
		filter.Period = taxonomy.SelectPeriod(filter.Period, period)
		return filter
	})
}

// Search switches to the free-text path. A blank query behaves like ClearSearch.
func (controller *Controller) Search(query string) Snapshot {
	query = strings.TrimSpace(query)
	return controller.apply("search", func(filter Filter) Filter {
		filter.Query = query
		return filter
	})
}

// ClearSearch leaves the free-text path and returns to filter browsing.
func (controller *Controller) ClearSearch() Snapshot {
	return controller.Search("")
}

// ClearFilters drops every department, medium and period selection.
func (controller *Controller) ClearFilters() Snapshot {
	return controller.apply("clear_filters", Filter.ClearSelections)
}

// Refresh re-runs the current filter with a fresh sample.
func (controller *Controller) Refresh() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if !controller.closed {
		controller.startLocked("refresh")
	}
	return controller.snapshotLocked()
}

// # Read Access

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// Filter returns the current selection.
func (controller *Controller) Filter() Filter {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.filter
}

/*
Subscribe streams snapshots until ctx is done or the controller is closed.

The channel holds at most one pending snapshot; a slow reader only ever sees the
latest state. The current snapshot is delivered immediately.
*/
func (controller *Controller) Subscribe(ctx context.Context) <-chan Snapshot {
	updates := make(chan Snapshot, 1)

	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		close(updates)
		return updates
	}
	id := controller.nextSub
	controller.nextSub++
	controller.subscribers[id] = updates
	updates <- controller.snapshotLocked()
	controller.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-controller.done:
		}

		controller.mu.Lock()
		defer controller.mu.Unlock()
		if _, ok := controller.subscribers[id]; ok {
			delete(controller.subscribers, id)
			close(updates)
		}
	}()

	return updates
}

// Close cancels the run in flight, ends every subscription and waits for
// background work to finish. Transitions after Close are no-ops.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	if controller.cancel != nil {
		controller.cancel()
		controller.cancel = nil
	}
	for id, updates := range controller.subscribers {
		delete(controller.subscribers, id)
		close(updates)
	}
	close(controller.done)
	controller.mu.Unlock()

	controller.runs.Wait()
}

// # Internals

func (controller *Controller) apply(reason string, mutate func(Filter) Filter) Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.closed {
		return controller.snapshotLocked()
	}

	previous := controller.filter
	next := mutate(previous)
	if next.Equal(previous) {
		return controller.snapshotLocked()
	}

	controller.filter = next
	if sameRun(previous, next) {
		controller.updatedAt = time.Now()
		controller.publishLocked()
		return controller.snapshotLocked()
	}

	controller.startLocked(reason)
	return controller.snapshotLocked()
}

// startLocked supersedes the run in flight with a new generation.
func (controller *Controller) startLocked(reason string) {
	if controller.cancel != nil {
		controller.cancel()
		controller.cancel = nil
	}

	controller.generation++
	generation := controller.generation
	filter := controller.filter

	controller.artworks = nil
	controller.noResults = false
	controller.updatedAt = time.Now()

	if filter.IsEmpty() {
		controller.loading = false
		controller.publishLocked()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	controller.cancel = cancel
	controller.loading = true
	controller.publishLocked()

	controller.logger.Debug("reconcile_started",
		slog.String("reason", reason),
		slog.Uint64("generation", generation),
	)

	controller.runs.Add(1)
	go func() {
		defer controller.runs.Done()
		defer cancel()

		outcome, err := controller.runner.Run(ctx, filter)
		controller.commit(generation, outcome, err)
	}()
}

func (controller *Controller) commit(generation uint64, outcome Outcome, err error) {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if generation != controller.generation || controller.closed {
		controller.logger.Debug("reconcile_discarded",
			slog.Uint64("generation", generation),
			slog.Uint64("current", controller.generation),
		)
		return
	}

	// Runs only see cancellation once superseded or closed, so an error
	// here is a real failure of the current run and must end loading.
	if err != nil {
		controller.logger.Warn("reconcile_failed",
			slog.Uint64("generation", generation),
			slog.Any("error", err),
		)
		outcome = Outcome{NoResults: true}
	}

	controller.artworks = outcome.Artworks
	controller.noResults = outcome.NoResults
	controller.loading = false
	controller.cancel = nil
	controller.updatedAt = time.Now()
	controller.publishLocked()
}

func (controller *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Generation:    controller.generation,
		Filter:        controller.filter,
		Artworks:      controller.artworks,
		Loading:       controller.loading,
		NoResults:     controller.noResults,
		SearchMode:    controller.filter.IsSearch(),
		ActiveFilters: controller.filter.ActiveCount(),
		UpdatedAt:     controller.updatedAt,
	}
}

// publishLocked hands the current snapshot to every subscriber, replacing any
// snapshot they have not read yet.
func (controller *Controller) publishLocked() {
	snapshot := controller.snapshotLocked()
	for _, updates := range controller.subscribers {
		select {
		case <-updates:
		default:
		}
		updates <- snapshot
	}
}
