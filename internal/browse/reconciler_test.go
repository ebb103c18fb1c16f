// Copyright (c) 2026 ArtScope. All rights reserved.

package browse_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenna9192/artscope/internal/browse"
	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/taxonomy"
	"github.com/jenna9192/artscope/pkg/pointer"
)

func newTestReconciler(source browse.Source, options ...browse.Option) *browse.Reconciler {
	options = append([]browse.Option{browse.WithShuffler(browse.NoShuffle), browse.WithFetchDelay(0)}, options...)
	return browse.NewReconciler(source, options...)
}

func renaissance() *taxonomy.Period {
	return &taxonomy.Period{Name: "1400–1600 CE", YearRange: taxonomy.YearRange{MinYear: 1400, MaxYear: 1600}}
}

func TestReconciler_EmptyFilterSkipsNetwork(t *testing.T) {
	source := newFakeSource(artwork(1, "Oil on canvas", "European Paintings", 1500, 1510))

	outcome, err := newTestReconciler(source).Run(context.Background(), browse.Filter{})

	require.NoError(t, err)
	assert.Empty(t, outcome.Artworks)
	assert.False(t, outcome.NoResults)
	assert.Zero(t, source.searchCount())
	assert.Zero(t, source.fetchCount())
}

func TestReconciler_SearchParams(t *testing.T) {
	tests := []struct {
		name   string
		filter browse.Filter
		want   collection.SearchParams
	}{
		{
			name:   "period_only",
			filter: browse.Filter{Period: renaissance()},
			want:   collection.SearchParams{Query: "*", HasImages: true, DateBegin: pointer.To(1400), DateEnd: pointer.To(1600)},
		},
		{
			name:   "mediums_joined_and_capped",
			filter: browse.Filter{Mediums: taxonomy.NewSet("gold", "silver", "bronze", "iron", "brass", "copper")},
			want:   collection.SearchParams{Query: "gold OR silver OR bronze OR iron OR brass", HasImages: true},
		},
		{
			name:   "first_department_only",
			filter: browse.Filter{Departments: taxonomy.NewSet("Asian Art", "European Paintings")},
			want:   collection.SearchParams{Query: "*", HasImages: true, DepartmentID: pointer.To(6)},
		},
		{
			name:   "department_missing_from_directory",
			filter: browse.Filter{Departments: taxonomy.NewSet("Musical Instruments")},
			want:   collection.SearchParams{Query: "*", HasImages: true},
		},
		{
			name: "query_takes_precedence",
			filter: browse.Filter{
				Departments: taxonomy.NewSet("Asian Art"),
				Period:      renaissance(),
				Query:       "  sunflowers ",
			},
			want: collection.SearchParams{Query: "sunflowers", HasImages: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newFakeSource()

			_, err := newTestReconciler(source).Run(context.Background(), tt.filter)
			require.NoError(t, err)

			require.Equal(t, 1, source.searchCount())
			assert.Equal(t, tt.want.Values(), source.lastSearch().Values())
		})
	}
}

func TestReconciler_RevalidatesFetchedRecords(t *testing.T) {
	noImage := artwork(5, "Gold", "European Paintings", 1450, 1460)
	noImage.PrimaryImage = ""

	source := newFakeSource(
		artwork(1, "Gold leaf on panel", "European Paintings", 1450, 1460),
		artwork(2, "Gold leaf on panel", "European Paintings", 1390, 1460),
		artwork(3, "Oil on canvas", "European Paintings", 1500, 1510),
		artwork(4, "SILVER gilt", "Asian Art", 1500, 1510),
		noImage,
		artwork(6, "Tempera and gold", "Asian Art", 1600, 1600),
		artwork(7, "Silver", "Arms and Armor", 1500, 1510),
	)

	filter := browse.Filter{
		Departments: taxonomy.NewSet("European Paintings", "Asian Art"),
		Mediums:     taxonomy.NewSet("gold", "silver"),
		Period:      renaissance(),
	}

	outcome, err := newTestReconciler(source).Run(context.Background(), filter)
	require.NoError(t, err)

	ids := make([]int, 0, len(outcome.Artworks))
	for _, accepted := range outcome.Artworks {
		ids = append(ids, accepted.ObjectID)
	}
	assert.Equal(t, []int{1, 4, 6}, ids)
	assert.False(t, outcome.NoResults)
}

func TestReconciler_FreeTextOnlyRequiresImage(t *testing.T) {
	noImage := artwork(2, "Oil", "Asian Art", 0, 0)
	noImage.PrimaryImage = " "
	source := newFakeSource(artwork(1, "Oil", "Asian Art", 2000, 2001), noImage)

	outcome, err := newTestReconciler(source).Run(context.Background(), browse.Filter{
		Mediums: taxonomy.NewSet("gold"),
		Query:   "sunflowers",
	})

	require.NoError(t, err)
	require.Len(t, outcome.Artworks, 1)
	assert.Equal(t, 1, outcome.Artworks[0].ObjectID)
}

func TestReconciler_CapsAndBudgets(t *testing.T) {
	matching := make([]collection.Artwork, 0, 150)
	rejected := make([]collection.Artwork, 0, 150)
	for id := 1; id <= 150; id++ {
		matching = append(matching, artwork(id, "Gold", "Asian Art", 1500, 1500))
		rejected = append(rejected, artwork(id, "Clay", "Asian Art", 1500, 1500))
	}

	tests := []struct {
		name        string
		artworks    []collection.Artwork
		filter      browse.Filter
		wantLen     int
		wantFetched int
	}{
		{"filtered_cap", matching, browse.Filter{Mediums: taxonomy.NewSet("gold")}, 25, 25},
		{"filtered_budget", rejected, browse.Filter{Mediums: taxonomy.NewSet("gold")}, 0, 100},
		{"search_cap", matching, browse.Filter{Query: "gold"}, 12, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newFakeSource(tt.artworks...)

			outcome, err := newTestReconciler(source).Run(context.Background(), tt.filter)
			require.NoError(t, err)

			assert.Len(t, outcome.Artworks, tt.wantLen)
			assert.Equal(t, tt.wantFetched, source.fetchCount())
			assert.Equal(t, tt.wantLen == 0, outcome.NoResults)
		})
	}
}

func TestReconciler_SearchBudget(t *testing.T) {
	source := newFakeSource()
	for id := 1; id <= 50; id++ {
		source.ids = append(source.ids, id)
	}

	outcome, err := newTestReconciler(source).Run(context.Background(), browse.Filter{Query: "nothing"})
	require.NoError(t, err)

	assert.True(t, outcome.NoResults)
	assert.Equal(t, 30, source.fetchCount())
}

func TestReconciler_Faults(t *testing.T) {
	t.Run("zero_candidates", func(t *testing.T) {
		source := newFakeSource()

		outcome, err := newTestReconciler(source).Run(context.Background(), browse.Filter{Query: "zzzz"})
		require.NoError(t, err)
		assert.True(t, outcome.NoResults)
		assert.Zero(t, source.fetchCount())
	})

	t.Run("search_failure", func(t *testing.T) {
		source := newFakeSource(artwork(1, "Gold", "Asian Art", 1500, 1500))
		source.searchErr = errUpstream

		outcome, err := newTestReconciler(source).Run(context.Background(), browse.Filter{Query: "gold"})
		require.NoError(t, err)
		assert.True(t, outcome.NoResults)
	})

	t.Run("every_fetch_fails", func(t *testing.T) {
		source := newFakeSource(artwork(1, "Gold", "Asian Art", 1500, 1500), artwork(2, "Gold", "Asian Art", 1500, 1500))
		source.failObjects = true

		outcome, err := newTestReconciler(source).Run(context.Background(), browse.Filter{Query: "gold"})
		require.NoError(t, err)
		assert.True(t, outcome.NoResults)
		assert.Equal(t, 2, source.fetchCount())
	})
}

func TestReconciler_Cancellation(t *testing.T) {
	t.Run("before_start", func(t *testing.T) {
		source := newFakeSource(artwork(1, "Gold", "Asian Art", 1500, 1500))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcome, err := newTestReconciler(source).Run(ctx, browse.Filter{Query: "gold"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, outcome.Artworks)
		assert.Zero(t, source.searchCount())
	})

	t.Run("mid_run_discards_partial_results", func(t *testing.T) {
		artworks := make([]collection.Artwork, 0, 20)
		for id := 1; id <= 20; id++ {
			artworks = append(artworks, artwork(id, "Gold", "Asian Art", 1500, 1500))
		}
		source := newFakeSource(artworks...)
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(60*time.Millisecond, cancel)

		reconciler := newTestReconciler(source, browse.WithFetchDelay(25*time.Millisecond))
		outcome, err := reconciler.Run(ctx, browse.Filter{Query: "gold"})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, outcome.Artworks)
		assert.Less(t, source.fetchCount(), 12)
	})
}

func TestReconciler_SpacesFetches(t *testing.T) {
	source := newFakeSource(
		artwork(1, "Gold", "Asian Art", 1500, 1500),
		artwork(2, "Gold", "Asian Art", 1500, 1500),
		artwork(3, "Gold", "Asian Art", 1500, 1500),
		artwork(4, "Gold", "Asian Art", 1500, 1500),
	)

	_, err := newTestReconciler(source, browse.WithFetchDelay(20*time.Millisecond)).Run(context.Background(), browse.Filter{Query: "gold"})
	require.NoError(t, err)

	require.Len(t, source.fetchedAt, 4)
	for i := 1; i < len(source.fetchedAt); i++ {
		gap := source.fetchedAt[i].Sub(source.fetchedAt[i-1])
		assert.GreaterOrEqual(t, gap, 15*time.Millisecond, "gap %d", i)
	}
}

func TestReconciler_UsesShuffler(t *testing.T) {
	source := newFakeSource(
		artwork(1, "Gold", "Asian Art", 1500, 1500),
		artwork(2, "Gold", "Asian Art", 1500, 1500),
		artwork(3, "Gold", "Asian Art", 1500, 1500),
	)
	reverse := browse.ShuffleFunc(func(ids []int) { slices.Reverse(ids) })

	outcome, err := newTestReconciler(source, browse.WithShuffler(reverse)).Run(context.Background(), browse.Filter{Query: "gold"})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1}, source.fetched)
	require.Len(t, outcome.Artworks, 3)
	assert.Equal(t, 3, outcome.Artworks[0].ObjectID)
	// The upstream id list itself is never reordered.
	assert.Equal(t, []int{1, 2, 3}, source.ids)
}

func TestRandomShuffle_IsPermutation(t *testing.T) {
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	shuffled := slices.Clone(ids)

	browse.RandomShuffle.Shuffle(shuffled)

	slices.Sort(shuffled)
	assert.Equal(t, ids, shuffled)
}
