package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"slices"

	// `chi` is a lightweight, idiomatic and composable router for building HTTP services in Go.
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	// `chi/cors` provides CORS (Cross-Origin Resource Sharing) middleware.
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/visiontest-go/apperror"
	"github.com/user/visiontest-go/auth"
	"github.com/user/visiontest-go/config"
	_ "github.com/user/visiontest-go/docs" // Swagger docs registration
	"github.com/user/visiontest-go/profiles"
	"github.com/user/visiontest-go/users"
)

// routerDeps is everything newRouter needs. `ping` backs /healthz.
type routerDeps struct {
	server   *config.ServerConfig
	ping     func(ctx context.Context) error
	resolver *auth.Resolver
	users    *users.UserHandlers
	profiles *profiles.ProfileHandlers
}

// newRouter builds the chi router with global middleware and every route.
// IMPORTANT: Chi requires all middleware to be registered before any routes.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID) // Add request ID to context
	r.Use(middleware.RealIP)    // Get real IP from proxy headers
	r.Use(middleware.Logger)    // Log all requests
	r.Use(middleware.Recoverer) // Recover from panics

	r.Use(cors.Handler(corsOptions(deps.server.CORSAllowedOrigins)))

	// Panics inside handlers become a JSON 500 instead of chi's plain-text body.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					log.Printf("Panic: %+v", rvr)
					writeError(w, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/", serveIndex(deps.server.IndexHTMLPath))
	r.Get("/healthz", handleHealth(deps.ping))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/register-user", deps.users.HandleRegisterUser())

	// Authenticated routes. The middleware resolves the bearer token before any
	// body is read, so an unauthenticated call never reaches validation.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(deps.resolver))

		r.Get("/me", deps.users.HandleGetMe())
		r.Post("/profile", deps.profiles.HandleUpsertProfile())
		r.Get("/profile", deps.profiles.HandleGetProfile())
	})

	return r
}

// corsOptions allows credentialed requests from the configured origins.
// Browsers refuse `Access-Control-Allow-Origin: *` on credentialed requests, so a
// wildcard is expressed as an origin func and the request origin is echoed back.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if slices.Contains(origins, "*") {
		opts.AllowOriginFunc = func(*http.Request, string) bool { return true }
	} else {
		opts.AllowedOrigins = origins
	}
	return opts
}

// serveIndex serves the static landing page, or a 404 JSON error when it is missing.
func serveIndex(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			writeError(w, apperror.NewNotFoundError("index.html not found", err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		http.ServeFile(w, r, path)
	}
}

// handleHealth godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} apperror.ErrorResponse "Database unreachable"
// @Router /healthz [get]
func handleHealth(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ping(r.Context()); err != nil {
			log.Printf("[%s] health check failed: %v", middleware.GetReqID(r.Context()), err)
			auth.WriteJSON(w, http.StatusServiceUnavailable, apperror.ErrorResponse{Error: "database unavailable"})
			return
		}
		auth.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// writeError is a local helper for the panic recovery middleware and the static routes,
// which have no handler package of their own.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
