package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the page, the game API and the diagnostics endpoints. metrics may be nil.
func NewRouter(logger *slog.Logger, cookie SessionCookie, manager gameManager, metrics http.Handler) http.Handler {
	h := newHandlers(logger, manager, cookie)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(10 * time.Second))

	r.Get("/ping", pingHandler)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.With(cookie.ensureSession).Get("/", h.Index)

	r.Route("/api", func(r chi.Router) {
		r.Use(cookie.requireSession)

		r.Post("/move", h.MakeMove)
		r.Post("/new-game", h.NewGame)
		r.Get("/game-state", h.GameState)
		r.Post("/set-game-mode", h.SetGameMode)
		r.Delete("/session", h.EndSession)
	})

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("component", "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debug("request",
				"request_id", chimw.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
