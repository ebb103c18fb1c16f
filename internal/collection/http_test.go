// Copyright (c) 2026 ArtScope. All rights reserved.

package collection_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jenna9192/artscope/internal/collection"
)

type stubReader struct {
	departments []collection.Department
	objects     map[int]collection.Artwork
	err         error
}

func (reader stubReader) Departments(ctx context.Context) ([]collection.Department, error) {
	return reader.departments, reader.err
}

func (reader stubReader) Object(ctx context.Context, id int) (*collection.Artwork, error) {
	if reader.err != nil {
		return nil, reader.err
	}
	artwork, ok := reader.objects[id]
	if !ok {
		return nil, collection.ErrNotFound
	}
	return &artwork, nil
}

func TestHandler(t *testing.T) {
	healthy := stubReader{
		departments: []collection.Department{{DepartmentID: 11, DisplayName: "European Paintings"}},
		objects:     map[int]collection.Artwork{436535: {ObjectID: 436535, Title: "Wheat Field with Cypresses"}},
	}
	broken := stubReader{err: errors.New("connection reset")}

	tests := []struct {
		name       string
		reader     stubReader
		target     string
		wantStatus int
		wantCode   string
	}{
		{"departments", healthy, "/departments", http.StatusOK, ""},
		{"departments_upstream_down", broken, "/departments", http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"artwork", healthy, "/artworks/436535", http.StatusOK, ""},
		{"artwork_missing", healthy, "/artworks/1", http.StatusNotFound, "NOT_FOUND"},
		{"artwork_bad_id", healthy, "/artworks/abc", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"artwork_upstream_down", broken, "/artworks/436535", http.StatusBadGateway, "UPSTREAM_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := collection.NewHandler(tt.reader).Routes()
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantStatus, recorder.Code)

			var body struct {
				Data json.RawMessage `json:"data"`
				Code string          `json:"code"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			if tt.wantStatus == http.StatusOK {
				assert.NotEmpty(t, body.Data)
			}
		})
	}
}
