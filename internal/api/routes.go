package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes assembles the router with the standard middleware chain.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(s.logger))
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware(s.logger))
	r.Use(CORSMiddleware())

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/day/today", s.handleToday)
		r.Get("/day/{date}", s.handleDay)
		r.Get("/range", s.handleRange)
		r.Get("/year/{year}", s.handleYear)
		r.Get("/year/{year}/days", s.handleYearDays)
		r.Get("/lunar/{date}", s.handleLunar)
		r.Get("/vigil/{date}", s.handleVigil)
		r.Get("/readings/{date}", s.handleReadings)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(s.cfg, s.logger))
			r.Post("/admin/cache/purge", s.handleCachePurge)
		})
	})

	r.Get("/calendar/{year}.ics", s.handleICS)

	return r
}
