package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/tomazk/holdings/internal/schema"
)

// storeFuncs bundles one resource's owner-scoped persistence operations.
// get looks a row up by id AND owner, so a row owned by someone else is
// indistinguishable from a missing one.
type storeFuncs[T any] struct {
	list   func(context.Context, *sql.DB, string) ([]T, error)
	create func(context.Context, *sql.DB, string, schema.Record) (*T, error)
	get    func(context.Context, *sql.DB, string, string) (*T, error)
	update func(context.Context, *sql.DB, string, schema.Record) error
	remove func(context.Context, *sql.DB, string) error
}

// resourceHandler serves the list/create/update/delete endpoints for one
// holding type. One handler shape, instantiated per resource, instead of
// seven copies of the same four functions.
type resourceHandler[T any] struct {
	db     *sql.DB
	name   string
	schema *schema.Schema
	store  storeFuncs[T]
}

// List handles GET /api/<resource>.
func (h *resourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	rows, err := h.store.list(r.Context(), h.db, claims.UserID)
	if err != nil {
		slog.Error("listing resource", "resource", h.name, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if rows == nil {
		rows = []T{}
	}
	jsonResponse(w, http.StatusOK, rows)
}

// Create handles POST /api/<resource>. The owner always comes from the
// authenticated claims, never from the request body.
func (h *resourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var raw map[string]any
	if err := decodeJSON(r, &raw); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, errs := h.schema.Validate(raw)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}

	row, err := h.store.create(r.Context(), h.db, claims.UserID, rec)
	if err != nil {
		slog.Error("creating resource", "resource", h.name, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	jsonResponse(w, http.StatusCreated, row)
}

// Update handles PUT /api/<resource>?id=. The body is re-validated in full,
// and the ownership lookup happens before any write.
func (h *resourceHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		jsonError(w, http.StatusBadRequest, "id required")
		return
	}

	var raw map[string]any
	if err := decodeJSON(r, &raw); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, errs := h.schema.Validate(raw)
	if errs != nil {
		jsonValidationError(w, errs)
		return
	}

	existing, err := h.store.get(r.Context(), h.db, id, claims.UserID)
	if err != nil {
		slog.Error("checking resource ownership", "resource", h.name, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, h.name+" not found")
		return
	}

	if err := h.store.update(r.Context(), h.db, id, rec); err != nil {
		slog.Error("updating resource", "resource", h.name, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	row, err := h.store.get(r.Context(), h.db, id, claims.UserID)
	if err != nil {
		slog.Error("rereading resource", "resource", h.name, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	jsonResponse(w, http.StatusOK, row)
}

// Delete handles DELETE /api/<resource>?id= with the same ownership lookup
// as Update.
func (h *resourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		jsonError(w, http.StatusBadRequest, "id required")
		return
	}

	existing, err := h.store.get(r.Context(), h.db, id, claims.UserID)
	if err != nil {
		slog.Error("checking resource ownership", "resource", h.name, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, h.name+" not found")
		return
	}

	if err := h.store.remove(r.Context(), h.db, id); err != nil {
		slog.Error("deleting resource", "resource", h.name, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": h.name + " deleted"})
}
