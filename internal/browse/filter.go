// Copyright (c) 2026 ArtScope. All rights reserved.

/*
Package browse turns a browsing context's filter state into a gallery of artworks.

The package is split in three layers:

  - Filter: the immutable selection (departments, mediums, period, free-text query)
    and the predicates a fetched record must satisfy.
  - Reconciler: one cancellable run that searches the collection, samples the
    candidates and fetches them one by one until the gallery is full.
  - Controller: the per-session state machine. Every effective change starts a new
    generation and supersedes the run in flight; only the current generation may
    commit.

Sessions and their HTTP/SSE surface live in registry.go and http.go.
*/
package browse

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/platform/constants"
	"github.com/jenna9192/artscope/internal/taxonomy"
)

// # Filter State

// Filter is the selection of one browsing context. Values are treated as
// immutable; transitions build a new Filter.
type Filter struct {
	Departments taxonomy.Set     `json:"departments"`
	Mediums     taxonomy.Set     `json:"mediums"`
	Period      *taxonomy.Period `json:"period,omitempty"`
	Query       string           `json:"query,omitempty"`
}

// IsSearch reports whether the free-text path applies. A query takes precedence
// over the category and time filters.
func (f Filter) IsSearch() bool {
	return strings.TrimSpace(f.Query) != ""
}

// IsEmpty reports whether nothing is selected and no query is set.
func (f Filter) IsEmpty() bool {
	return !f.IsSearch() && f.ActiveCount() == 0
}

// ActiveCount is the number of active filters shown next to the filter toggle.
func (f Filter) ActiveCount() int {
	count := f.Departments.Len() + f.Mediums.Len()
	if f.Period != nil {
		count++
	}
	return count
}

// Equal compares two filters. Set order is significant because the first
// department is the one sent upstream.
func (f Filter) Equal(other Filter) bool {
	if f.Query != other.Query || !samePeriod(f.Period, other.Period) {
		return false
	}
	return sameOrder(f.Departments, other.Departments) && sameOrder(f.Mediums, other.Mediums)
}

// ClearSelections drops departments, mediums and the period, keeping the query.
func (f Filter) ClearSelections() Filter {
	return Filter{Query: f.Query}
}

func samePeriod(a, b *taxonomy.Period) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameOrder(a, b taxonomy.Set) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameRun reports whether two filters would produce the same reconciliation.
// While a query is active the category and time filters do not affect the run.
func sameRun(a, b Filter) bool {
	if a.IsSearch() || b.IsSearch() {
		return strings.TrimSpace(a.Query) == strings.TrimSpace(b.Query)
	}
	return a.Equal(b)
}

// # Upstream Terms

// MediumTerms returns the medium terms sent upstream, in selection order.
func (f Filter) MediumTerms() []string {
	terms := []string(f.Mediums)
	if len(terms) > constants.MaxMediumTerms {
		terms = terms[:constants.MaxMediumTerms]
	}
	return terms
}

// PrimaryDepartment is the department whose id constrains the upstream search.
func (f Filter) PrimaryDepartment() (string, bool) {
	if f.Departments.Len() == 0 {
		return "", false
	}
	return f.Departments[0], true
}

// # Acceptance

// matcher holds the compiled predicates of one run. Casers are stateful, so each
// run owns its own.
type matcher struct {
	search      bool
	period      *taxonomy.YearRange
	mediums     []string
	departments taxonomy.Set
	caser       cases.Caser
}

func newMatcher(f Filter) *matcher {
	m := &matcher{search: f.IsSearch(), caser: cases.Fold()}
	if m.search {
		return m
	}

	if f.Period != nil {
		yearRange := f.Period.YearRange
		m.period = &yearRange
	}
	for _, medium := range f.Mediums {
		m.mediums = append(m.mediums, m.caser.String(medium))
	}
	m.departments = f.Departments
	return m
}

// accepts applies the client-side validation to a fetched record. Every record
// needs a primary image; filtered runs also re-check each active predicate since
// the upstream search is only a coarse pre-filter.
func (m *matcher) accepts(artwork *collection.Artwork) bool {
	if !artwork.HasPrimaryImage() {
		return false
	}
	if m.search {
		return true
	}

	if m.period != nil {
		span := taxonomy.YearRange{MinYear: artwork.ObjectBeginDate, MaxYear: artwork.ObjectEndDate}
		if !m.period.Contains(span) {
			return false
		}
	}

	if len(m.mediums) > 0 {
		medium := m.caser.String(artwork.Medium)
		matched := false
		for _, term := range m.mediums {
			if strings.Contains(medium, term) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if m.departments.Len() > 0 && !m.departments.Has(artwork.Department) {
		return false
	}
	return true
}
