// Copyright (c) 2026 ArtScope. All rights reserved.

package collection

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jenna9192/artscope/internal/platform/apperr"
	requestutil "github.com/jenna9192/artscope/internal/platform/request"
	"github.com/jenna9192/artscope/internal/platform/respond"
)

// Reader is the read-only view of the collection used by the HTTP layer.
type Reader interface {
	Departments(ctx context.Context) ([]Department, error)
	Object(ctx context.Context, id int) (*Artwork, error)
}

// Handler exposes upstream records through the API.
type Handler struct {
	reader Reader
}

// NewHandler constructs a new collection [Handler].
func NewHandler(reader Reader) *Handler {
	return &Handler{reader: reader}
}

// Routes returns a [chi.Router] with the department and artwork endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/departments", handler.listDepartments)
	router.Get("/artworks/{id}", handler.getArtwork)
	return router
}

/*
GET /api/v1/departments.

Description: Returns the upstream department directory.

Response:
  - 200: []Department
  - 502: UPSTREAM_ERROR
*/
func (handler *Handler) listDepartments(writer http.ResponseWriter, request *http.Request) {
	departments, err := handler.reader.Departments(request.Context())
	if err != nil {
		respond.Error(writer, request, apperr.Upstream(err))
		return
	}
	respond.OK(writer, departments)
}

/*
GET /api/v1/artworks/{id}.

Description: Returns the full record of a single artwork.

Response:
  - 200: Artwork
  - 400: VALIDATION_ERROR: id is not a positive integer
  - 404: NOT_FOUND
  - 502: UPSTREAM_ERROR
*/
func (handler *Handler) getArtwork(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.reader.Object(request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(writer, request, apperr.NotFound("Artwork"))
			return
		}
		respond.Error(writer, request, apperr.Upstream(err))
		return
	}

	respond.OK(writer, artwork)
}
