// Copyright (c) 2026 ArtScope. All rights reserved.

package browse

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jenna9192/artscope/internal/platform/apperr"
	"github.com/jenna9192/artscope/internal/platform/constants"
	"github.com/jenna9192/artscope/internal/platform/ctxutil"
	requestutil "github.com/jenna9192/artscope/internal/platform/request"
	"github.com/jenna9192/artscope/internal/platform/respond"
	"github.com/jenna9192/artscope/internal/platform/validate"
	"github.com/jenna9192/artscope/internal/taxonomy"
)

// # Handler

// Handler exposes browsing sessions over HTTP.
type Handler struct {
	registry *Registry
	catalog  taxonomy.Catalog
}

// NewHandler constructs a new browse [Handler].
func NewHandler(registry *Registry, catalog taxonomy.Catalog) *Handler {
	return &Handler{registry: registry, catalog: catalog}
}

// Routes returns a [chi.Router] with all session endpoints. The event stream is
// long-lived and stays outside the request timeout.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{id}/events", handler.streamEvents)

	router.Group(func(timed chi.Router) {
		timed.Use(chimw.Timeout(constants.GlobalRequestTimeout))

		timed.Post("/", handler.createSession)
		timed.Get("/{id}", handler.getSession)
		timed.Delete("/{id}", handler.deleteSession)
		timed.Get("/{id}/taxonomies/{kind}", handler.getTaxonomy)
		timed.Post("/{id}/filters/{kind}/toggle", handler.toggleFilter)
		timed.Delete("/{id}/filters", handler.clearFilters)
		timed.Post("/{id}/search", handler.search)
		timed.Delete("/{id}/search", handler.clearSearch)
		timed.Post("/{id}/refresh", handler.refresh)
	})

	return router
}

// # Request Payloads

type toggleRequest struct {
	Group    string `json:"group"`
	Subgroup string `json:"subgroup"`
	Leaf     string `json:"leaf"`
}

func (req toggleRequest) path() taxonomy.Path {
	return taxonomy.Path{Group: req.Group, Subgroup: req.Subgroup, Leaf: req.Leaf}
}

type searchRequest struct {
	Query string `json:"query"`
}

// # Session Lifecycle

/*
POST /api/v1/sessions.

Description: Opens a browsing context with an empty filter.

Response:
  - 201: Snapshot plus the session id
*/
func (handler *Handler) createSession(writer http.ResponseWriter, request *http.Request) {
	session := handler.registry.Create()
	respond.Created(writer, sessionResponse{ID: session.ID, Snapshot: session.Controller.Snapshot()})
}

type sessionResponse struct {
	ID string `json:"id"`
	Snapshot
}

// GET /api/v1/sessions/{id}.
func (handler *Handler) getSession(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.session(writer, request)
	if !ok {
		return
	}
	respond.OK(writer, sessionResponse{ID: session.ID, Snapshot: session.Controller.Snapshot()})
}

// DELETE /api/v1/sessions/{id}.
func (handler *Handler) deleteSession(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	if err := (&validate.Validator{}).UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !handler.registry.Delete(id) {
		respond.Error(writer, request, apperr.NotFound("Session"))
		return
	}
	respond.NoContent(writer)
}

// # Filters

/*
GET /api/v1/sessions/{id}/taxonomies/{kind}.

Description: Returns the hierarchy with this session's checked and
indeterminate flags.
*/
func (handler *Handler) getTaxonomy(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.session(writer, request)
	if !ok {
		return
	}
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := session.Controller.Filter()
	respond.OK(writer, handler.catalog.View(kind, filter.Departments, filter.Mediums, filter.Period))
}

/*
POST /api/v1/sessions/{id}/filters/{kind}/toggle.

Description: Toggles a leaf when "leaf" is set, otherwise the group or subgroup
named by "group" and "subgroup". For periods the node's range is selected
exclusively.

Request Body:
  - group, subgroup, leaf: the node path

Response:
  - 200: Snapshot
  - 400: VALIDATION_ERROR: unknown kind or empty path
  - 404: NOT_FOUND: session or node does not exist
*/
func (handler *Handler) toggleFilter(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.session(writer, request)
	if !ok {
		return
	}
	kind, err := kindParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body toggleRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	path := body.path()
	validator := &validate.Validator{}
	validator.Custom("group", path.Group == "" && path.Leaf == "", "Either group or leaf is required")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !handler.nodeExists(kind, path) {
		respond.Error(writer, request, apperr.NotFound("Taxonomy node"))
		return
	}

	var snapshot Snapshot
	switch {
	case kind == taxonomy.KindPeriods:
		snapshot = session.Controller.SelectPeriod(path)
	case path.IsLeaf():
		snapshot = session.Controller.ToggleLeaf(kind, path.Leaf)
	default:
		snapshot = session.Controller.ToggleGroup(kind, path)
	}

	ctxutil.Logger(request.Context()).Debug("filter_toggled",
		slog.String("session_id", session.ID),
		slog.String("kind", string(kind)),
		slog.Int("active_filters", snapshot.ActiveFilters),
	)
	respond.OK(writer, snapshot)
}

func (handler *Handler) nodeExists(kind taxonomy.Kind, path taxonomy.Path) bool {
	if kind == taxonomy.KindPeriods {
		_, ok := taxonomy.ResolvePeriod(handler.catalog.Periods, path)
		return ok
	}
	hierarchy, ok := handler.catalog.Categories(kind)
	if !ok {
		return false
	}
	return taxonomy.LeavesOf(hierarchy, path).Len() > 0
}

// DELETE /api/v1/sessions/{id}/filters.
func (handler *Handler) clearFilters(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.session(writer, request)
	if !ok {
		return
	}
	respond.OK(writer, session.Controller.ClearFilters())
}

// # Search

/*
POST /api/v1/sessions/{id}/search.

Description: Runs a free-text search. A blank query returns to filter browsing.

Request Body:
  - query: string (max 200 chars)
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	var body searchRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if err := (&validate.Validator{}).MaxLen("query", body.Query, 200).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session.Controller.Search(body.Query))
}

// DELETE /api/v1/sessions/{id}/search.
func (handler *Handler) clearSearch(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.session(writer, request)
	if !ok {
		return
	}
	respond.OK(writer, session.Controller.ClearSearch())
}

// POST /api/v1/sessions/{id}/refresh.
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.session(writer, request)
	if !ok {
		return
	}
	respond.OK(writer, session.Controller.Refresh())
}

// # Event Stream

/*
GET /api/v1/sessions/{id}/events.

Description: Server-sent events. Each "snapshot" event carries the JSON
snapshot; intermediate states may be skipped when the client lags behind.
Comment lines keep idle connections open.
*/
func (handler *Handler) streamEvents(writer http.ResponseWriter, request *http.Request) {
	session, ok := handler.session(writer, request)
	if !ok {
		return
	}

	stream, err := respond.OpenStream(writer)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	logger := ctxutil.Logger(request.Context()).With(slog.String("session_id", session.ID))
	logger.Debug("event_stream_opened")
	defer logger.Debug("event_stream_closed")

	updates := session.Controller.Subscribe(request.Context())
	keepAlive := time.NewTicker(constants.EventKeepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-request.Context().Done():
			return
		case snapshot, open := <-updates:
			if !open {
				return
			}
			if err := stream.Event("snapshot", snapshot.Generation, snapshot); err != nil {
				logger.Debug("event_write_failed", slog.Any("error", err))
				return
			}
			handler.registry.Touch(session)
		case <-keepAlive.C:
			if err := stream.Comment("keep-alive"); err != nil {
				return
			}
			handler.registry.Touch(session)
		}
	}
}

// # Helpers

// session resolves the {id} parameter, writing the error response on failure.
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) (*Session, bool) {
	id := requestutil.ID(request, "id")
	if err := (&validate.Validator{}).UUID("id", id).Err(); err != nil {
		respond.Error(writer, request, err)
		return nil, false
	}

	session, ok := handler.registry.Get(id)
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Session"))
		return nil, false
	}
	return session, true
}

func kindParam(request *http.Request) (taxonomy.Kind, error) {
	raw := requestutil.Param(request, "kind")
	if err := (&validate.Validator{}).OneOf("kind", raw, taxonomy.Kinds()...).Err(); err != nil {
		return "", err
	}
	return taxonomy.Kind(raw), nil
}
