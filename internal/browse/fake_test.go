// Copyright (c) 2026 ArtScope. All rights reserved.

package browse_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jenna9192/artscope/internal/collection"
)

var errUpstream = errors.New("upstream unavailable")

// fakeSource is an in-memory collection with call recording.
type fakeSource struct {
	mu          sync.Mutex
	departments map[string]int
	ids         []int
	objects     map[int]collection.Artwork
	searchErr   error
	failObjects bool

	searches  []collection.SearchParams
	fetched   []int
	fetchedAt []time.Time
}

func newFakeSource(artworks ...collection.Artwork) *fakeSource {
	source := &fakeSource{
		departments: map[string]int{"European Paintings": 11, "Asian Art": 6, "The American Wing": 1},
		objects:     map[int]collection.Artwork{},
	}
	for _, artwork := range artworks {
		source.objects[artwork.ObjectID] = artwork
		source.ids = append(source.ids, artwork.ObjectID)
	}
	return source
}

func (source *fakeSource) DepartmentID(_ context.Context, name string) (int, bool, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	id, ok := source.departments[name]
	return id, ok, nil
}

func (source *fakeSource) Search(ctx context.Context, params collection.SearchParams) ([]int, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.searches = append(source.searches, params)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source.searchErr != nil {
		return nil, source.searchErr
	}
	return source.ids, nil
}

func (source *fakeSource) Object(ctx context.Context, id int) (*collection.Artwork, error) {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.fetched = append(source.fetched, id)
	source.fetchedAt = append(source.fetchedAt, time.Now())
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source.failObjects {
		return nil, errUpstream
	}
	artwork, ok := source.objects[id]
	if !ok {
		return nil, collection.ErrNotFound
	}
	return &artwork, nil
}

func (source *fakeSource) searchCount() int {
	source.mu.Lock()
	defer source.mu.Unlock()
	return len(source.searches)
}

func (source *fakeSource) lastSearch() collection.SearchParams {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.searches[len(source.searches)-1]
}

func (source *fakeSource) fetchCount() int {
	source.mu.Lock()
	defer source.mu.Unlock()
	return len(source.fetched)
}

func artwork(id int, medium, department string, begin, end int) collection.Artwork {
	return collection.Artwork{
		ObjectID:        id,
		Title:           "Object",
		Medium:          medium,
		Department:      department,
		ObjectBeginDate: begin,
		ObjectEndDate:   end,
		PrimaryImage:    "https://images.example/object.jpg",
	}
}
