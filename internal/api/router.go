package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	analyticsHandler := &AnalyticsHandler{DB: db}
	statsHandler := &StatsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: account creation and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated session management.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Holdings, one CRUD set per resource type.
	registerResource(mux, authMW, "/api/land", newLandHandler(db))
	registerResource(mux, authMW, "/api/labour", newLabourHandler(db))
	registerResource(mux, authMW, "/api/capital", newCapitalHandler(db))
	registerResource(mux, authMW, "/api/technology", newTechnologyHandler(db))
	registerResource(mux, authMW, "/api/information", newInformationHandler(db))
	registerResource(mux, authMW, "/api/businesses", newBusinessHandler(db))
	registerResource(mux, authMW, "/api/content", newContentHandler(db))

	// Reporting.
	mux.Handle("GET /api/stats", authMW(http.HandlerFunc(statsHandler.Get)))
	mux.Handle("GET /api/analytics", authMW(http.HandlerFunc(analyticsHandler.Get)))

	return mux
}

// registerResource mounts the four CRUD methods for one resource path.
func registerResource[T any](mux *http.ServeMux, authMW func(http.Handler) http.Handler, path string, h *resourceHandler[T]) {
	mux.Handle("GET "+path, authMW(http.HandlerFunc(h.List)))
	mux.Handle("POST "+path, authMW(http.HandlerFunc(h.Create)))
	mux.Handle("PUT "+path, authMW(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE "+path, authMW(http.HandlerFunc(h.Delete)))
}
