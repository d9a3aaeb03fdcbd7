package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomazk/holdings/internal/analytics"
	"github.com/tomazk/holdings/internal/store"
)

// AnalyticsHandler serves the aggregated portfolio report.
type AnalyticsHandler struct {
	DB *sql.DB
}

// Get handles GET /api/analytics. The seven collection fetches run
// concurrently and are awaited jointly; if any fails, the whole request
// fails. The reduction itself is pure and re-runs on every call.
func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	userID := claims.UserID

	var p analytics.Portfolio
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		p.Lands, err = store.ListLand(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Labours, err = store.ListLabour(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Capitals, err = store.ListCapital(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Technologies, err = store.ListTechnology(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Information, err = store.ListInformation(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Businesses, err = store.ListBusinesses(ctx, h.DB, userID)
		return err
	})
	g.Go(func() (err error) {
		p.Contents, err = store.ListContent(ctx, h.DB, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("fetching portfolio for analytics", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	jsonResponse(w, http.StatusOK, analytics.Compute(p, time.Now()))
}
