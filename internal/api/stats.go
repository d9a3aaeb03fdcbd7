package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/tomazk/holdings/internal/store"
)

// StatsHandler serves per-resource row counts.
type StatsHandler struct {
	DB *sql.DB
}

type statsResponse struct {
	Lands        int `json:"lands"`
	Labours      int `json:"labours"`
	Capitals     int `json:"capitals"`
	Technologies int `json:"technologies"`
	Information  int `json:"information"`
	Businesses   int `json:"businesses"`
	Content      int `json:"content"`
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	userID := claims.UserID

	var stats statsResponse
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		stats.Lands, err = store.CountLand(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		stats.Labours, err = store.CountLabour(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		stats.Capitals, err = store.CountCapital(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		stats.Technologies, err = store.CountTechnology(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		stats.Information, err = store.CountInformation(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		stats.Businesses, err = store.CountBusinesses(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		stats.Content, err = store.CountContent(ctx, h.DB, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("counting resources for stats", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	jsonResponse(w, http.StatusOK, stats)
}
