// Copyright (c) 2026 ArtScope. All rights reserved.

package browse_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenna9192/artscope/internal/browse"
	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/taxonomy"
)

// upstream is a fake collection API backed by a fixed object table.
type upstream struct {
	mu       sync.Mutex
	objects  map[int]collection.Artwork
	ids      []int
	requests []*url.URL
}

func newUpstream(t *testing.T, ids []int, artworks ...collection.Artwork) (*upstream, *collection.Client) {
	t.Helper()

	fake := &upstream{objects: map[int]collection.Artwork{}, ids: ids}
	for _, record := range artworks {
		fake.objects[record.ObjectID] = record
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /departments", func(writer http.ResponseWriter, request *http.Request) {
		fake.record(request)
		_ = json.NewEncoder(writer).Encode(map[string]any{"departments": []collection.Department{
			{DepartmentID: 11, DisplayName: "European Paintings"},
		}})
	})
	mux.HandleFunc("GET /search", func(writer http.ResponseWriter, request *http.Request) {
		fake.record(request)
		_ = json.NewEncoder(writer).Encode(map[string]any{"total": len(fake.ids), "objectIDs": fake.ids})
	})
	mux.HandleFunc("GET /objects/{id}", func(writer http.ResponseWriter, request *http.Request) {
		fake.record(request)
		id, _ := strconv.Atoi(request.PathValue("id"))
		record, ok := fake.objects[id]
		if !ok {
			http.NotFound(writer, request)
			return
		}
		_ = json.NewEncoder(writer).Encode(record)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return fake, collection.NewClient(collection.Options{BaseURL: server.URL, Timeout: time.Second})
}

func (fake *upstream) record(request *http.Request) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	copied := *request.URL
	fake.requests = append(fake.requests, &copied)
}

func (fake *upstream) searches() []url.Values {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	var result []url.Values
	for _, request := range fake.requests {
		if request.Path == "/search" {
			result = append(result, request.Query())
		}
	}
	return result
}

func (fake *upstream) requestCount() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return len(fake.requests)
}

func newScenarioController(client *collection.Client) *browse.Controller {
	reconciler := browse.NewReconciler(client, browse.WithFetchDelay(time.Millisecond))
	return browse.NewController(reconciler, taxonomy.DefaultCatalog(), nil)
}

func TestScenario_TimeRangeOnly(t *testing.T) {
	fake, client := newUpstream(t, []int{1, 2, 3, 4, 5},
		artwork(1, "Oil on wood", "European Paintings", 1450, 1470),
		artwork(2, "Oil on canvas", "European Paintings", 1590, 1620),
		artwork(3, "Tempera", "European Paintings", 1400, 1600),
		artwork(4, "Bronze", "Greek and Roman Art", -300, -200),
		artwork(5, "Fresco", "European Paintings", 1500, 1500),
	)
	controller := newScenarioController(client)
	defer controller.Close()

	controller.SelectPeriod(taxonomy.Path{Group: "Renaissance to Enlightenment", Subgroup: "Renaissance", Leaf: "1400–1600 CE"})
	snapshot := waitIdle(t, controller)

	searches := fake.searches()
	require.Len(t, searches, 1)
	assert.Equal(t, "1400", searches[0].Get("dateBegin"))
	assert.Equal(t, "1600", searches[0].Get("dateEnd"))
	assert.Equal(t, "*", searches[0].Get("q"))
	assert.Equal(t, "true", searches[0].Get("hasImages"))
	assert.False(t, searches[0].Has("departmentId"))

	require.NotEmpty(t, snapshot.Artworks)
	for _, committed := range snapshot.Artworks {
		assert.GreaterOrEqual(t, committed.ObjectBeginDate, 1400, "object %d", committed.ObjectID)
		assert.LessOrEqual(t, committed.ObjectEndDate, 1600, "object %d", committed.ObjectID)
	}
	assert.Len(t, snapshot.Artworks, 3)
}

func TestScenario_MediumSubstring(t *testing.T) {
	fake, client := newUpstream(t, []int{1, 2, 3, 4, 5},
		artwork(1, "Gold, enamel", "Medieval Art", 1200, 1250),
		artwork(2, "Oil on canvas", "European Paintings", 1880, 1880),
		artwork(3, "Sterling SILVER", "American Decorative Arts", 1790, 1800),
		artwork(4, "Gilt bronze", "Asian Art", 1600, 1700),
		artwork(5, "Silver-gilt and GOLD", "Islamic Art", 1500, 1510),
	)
	controller := newScenarioController(client)
	defer controller.Close()

	controller.ToggleLeaf(taxonomy.KindMediums, "gold")
	controller.ToggleLeaf(taxonomy.KindMediums, "silver")
	snapshot := waitIdle(t, controller)

	// The superseded "gold" run may or may not have reached the upstream.
	queries := make([]string, 0, 2)
	for _, search := range fake.searches() {
		queries = append(queries, search.Get("q"))
	}
	assert.Contains(t, queries, "gold OR silver")

	require.Len(t, snapshot.Artworks, 3)
	for _, committed := range snapshot.Artworks {
		medium := strings.ToLower(committed.Medium)
		assert.True(t, strings.Contains(medium, "gold") || strings.Contains(medium, "silver"), committed.Medium)
	}
}

func TestScenario_EmptyFilterIssuesNoRequests(t *testing.T) {
	fake, client := newUpstream(t, []int{1}, artwork(1, "Gold", "Asian Art", 1500, 1500))
	controller := newScenarioController(client)
	defer controller.Close()

	snapshot := controller.Refresh()
	assert.False(t, snapshot.Loading)
	assert.False(t, snapshot.NoResults)
	assert.Empty(t, snapshot.Artworks)

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, fake.requestCount())
}

func TestScenario_ZeroIdentifiersIsNoResults(t *testing.T) {
	_, client := newUpstream(t, nil)
	controller := newScenarioController(client)
	defer controller.Close()

	controller.Search("qwxzzy")
	snapshot := waitIdle(t, controller)

	assert.True(t, snapshot.NoResults)
	assert.Empty(t, snapshot.Artworks)
	assert.True(t, snapshot.SearchMode)
}

func TestScenario_DepartmentMappedThroughDirectory(t *testing.T) {
	fake, client := newUpstream(t, []int{1, 2},
		artwork(1, "Oil on canvas", "European Paintings", 1880, 1880),
		artwork(2, "Oil on canvas", "Modern Art", 1950, 1950),
	)
	controller := newScenarioController(client)
	defer controller.Close()

	controller.ToggleLeaf(taxonomy.KindDepartments, "European Paintings")
	snapshot := waitIdle(t, controller)

	searches := fake.searches()
	require.Len(t, searches, 1)
	assert.Equal(t, "11", searches[0].Get("departmentId"))

	require.Len(t, snapshot.Artworks, 1)
	assert.Equal(t, 1, snapshot.Artworks[0].ObjectID)
	assert.Equal(t, 1, snapshot.ActiveFilters)
}
