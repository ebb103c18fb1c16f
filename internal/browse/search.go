// Copyright (c) 2026 ArtScope. All rights reserved.

package browse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/platform/constants"
	"github.com/jenna9192/artscope/pkg/pointer"
)

// Limits bound one run: ResultCap accepted records out of at most FetchBudget
// candidate fetches.
type Limits struct {
	ResultCap   int
	FetchBudget int
}

var (
	// FilterLimits apply to category and time browsing.
	FilterLimits = Limits{ResultCap: constants.BrowseResultCap, FetchBudget: constants.BrowseFetchBudget}
	// SearchLimits apply to the free-text path.
	SearchLimits = Limits{ResultCap: constants.SearchResultCap, FetchBudget: constants.SearchFetchBudget}
)

// plan is the upstream query and acceptance rules derived from a Filter.
type plan struct {
	params  collection.SearchParams
	limits  Limits
	matcher *matcher
}

// buildPlan derives the search for filter. Only the first selected department is
// sent upstream; the full department set is enforced on fetched records. A
// department name missing from the directory is searched without a department
// constraint.
func (reconciler *Reconciler) buildPlan(ctx context.Context, filter Filter) (plan, error) {
	result := plan{
		params:  collection.SearchParams{HasImages: true},
		matcher: newMatcher(filter),
	}

	if filter.IsSearch() {
		result.params.Query = strings.TrimSpace(filter.Query)
		result.limits = SearchLimits
		return result, nil
	}
	result.limits = FilterLimits

	if name, ok := filter.PrimaryDepartment(); ok {
		id, found, err := reconciler.source.DepartmentID(ctx, name)
		if err != nil {
			return plan{}, fmt.Errorf("resolve department %q: %w", name, err)
		}
		if found {
			result.params.DepartmentID = pointer.To(id)
		} else {
			reconciler.logger.Warn("department_not_in_directory", slog.String("department", name))
		}
	}

	if filter.Period != nil {
		result.params.DateBegin = pointer.To(filter.Period.MinYear)
		result.params.DateEnd = pointer.To(filter.Period.MaxYear)
	}

	result.params.Query = constants.WildcardQuery
	if terms := filter.MediumTerms(); len(terms) > 0 {
		result.params.Query = strings.Join(terms, " OR ")
	}

	return result, nil
}
