// Copyright (c) 2026 ArtScope. All rights reserved.

package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jenna9192/artscope/internal/platform/apperr"
	requestutil "github.com/jenna9192/artscope/internal/platform/request"
	"github.com/jenna9192/artscope/internal/platform/respond"
	"github.com/jenna9192/artscope/internal/platform/validate"
)

// Handler serves the static hierarchies and their resolver functions.
type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{kind}", handler.getTree)
	router.Get("/{kind}/leaves", handler.getLeaves)
	return router
}

// leavesResponse carries either a leaf set (categories) or a range (periods).
type leavesResponse struct {
	Kind   Kind       `json:"kind"`
	Path   Path       `json:"path"`
	Leaves Set        `json:"leaves,omitempty"`
	Range  *YearRange `json:"range,omitempty"`
}

/*
GET /api/v1/taxonomies/{kind}.

Description: Returns the hierarchy as an unselected tree view.

Response:
  - 200: TreeView
  - 400: VALIDATION_ERROR: unknown kind
*/
func (handler *Handler) getTree(writer http.ResponseWriter, request *http.Request) {
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.catalog.View(kind, nil, nil, nil))
}

/*
GET /api/v1/taxonomies/{kind}/leaves?group=&subgroup=.

Description: Resolves an interior node. Categories answer with the leaf set,
periods with the aggregate year range.

Response:
  - 200: leavesResponse
  - 400: VALIDATION_ERROR: unknown kind or missing group
  - 404: NOT_FOUND: no such node
*/
func (handler *Handler) getLeaves(writer http.ResponseWriter, request *http.Request) {
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query()
	path := Path{Group: query.Get("group"), Subgroup: query.Get("subgroup")}
	if err := (&validate.Validator{}).Required("group", path.Group).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	response := leavesResponse{Kind: kind, Path: path}
	if categories, ok := handler.catalog.Categories(kind); ok {
		response.Leaves = LeavesOf(categories, path)
		if response.Leaves.Len() == 0 {
			respond.Error(writer, request, apperr.NotFound("Taxonomy node"))
			return
		}
	} else {
		yearRange, ok := RangeOf(handler.catalog.Periods, path)
		if !ok {
			respond.Error(writer, request, apperr.NotFound("Taxonomy node"))
			return
		}
		response.Range = &yearRange
	}

	respond.OK(writer, response)
}

func kindParam(request *http.Request) (Kind, error) {
	raw := requestutil.Param(request, "kind")
	if err := (&validate.Validator{}).OneOf("kind", raw, Kinds()...).Err(); err != nil {
		return "", err
	}
	return Kind(raw), nil
}
