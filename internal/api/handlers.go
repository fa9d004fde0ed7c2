// Package api exposes the liturgical calendar over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vntruongson/phungvu-api/internal/calendar"
	"github.com/vntruongson/phungvu-api/internal/config"
	"github.com/vntruongson/phungvu-api/internal/database"
	"github.com/vntruongson/phungvu-api/internal/ics"
	"github.com/vntruongson/phungvu-api/internal/liturgy"
)

// dayCacheVersion tags persisted day payloads; bump it when the
// response shape changes so stale rows read as misses.
const dayCacheVersion = "v1"

// dayCacheTTL bounds how long a persisted day payload is served.
const dayCacheTTL = 30 * 24 * time.Hour

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *database.DB
	svc    *liturgy.Service
	feed   *ics.Generator
}

// NewServer builds the API server. db may be nil; readings then report
// not found and the persistent cache is skipped.
func NewServer(cfg *config.Config, logger *slog.Logger, db *database.DB, svc *liturgy.Service) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger,
		db:     db,
		svc:    svc,
		feed:   ics.NewGenerator(svc),
	}
}

// dayResponse is a resolved day plus its lectionary pointer, when one
// is stored.
type dayResponse struct {
	*liturgy.DayInfo
	Readings *database.ReadingRef `json:"readings,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		if err := s.db.Health(r.Context()); err != nil {
			s.logger.Error("health check failed", slog.Any("error", err))
			WriteError(w, http.StatusServiceUnavailable, "database unavailable", "UNHEALTHY")
			return
		}
		status["database"] = "ok"
	}
	WriteSuccess(w, status)
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	d, err := calendar.ParseDateString(chi.URLParam(r, "date"))
	if err != nil {
		WriteBadRequest(w, "date must be YYYY-MM-DD")
		return
	}
	s.writeDay(w, r, d)
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	s.writeDay(w, r, time.Now())
}

func (s *Server) writeDay(w http.ResponseWriter, r *http.Request, d time.Time) {
	ctx := r.Context()
	key := "day:" + calendar.FormatDate(calendar.Normalize(d))

	if s.db != nil {
		if payload, ok := s.db.CacheGet(ctx, key, dayCacheVersion); ok {
			WriteSuccess(w, json.RawMessage(payload))
			return
		}
	}

	resp := dayResponse{DayInfo: s.svc.Day(d)}
	if s.db != nil {
		ref, err := s.db.GetReadingRef(ctx, resp.Code, cycleFor(resp.DayInfo))
		switch {
		case err == nil:
			resp.Readings = ref
		case !database.IsNotFound(err):
			s.logger.Warn("reading lookup failed",
				slog.String("code", resp.Code),
				slog.Any("error", err),
			)
		}
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("marshal day", slog.Any("error", err))
		WriteInternalError(w, "Internal server error")
		return
	}
	if s.db != nil {
		s.db.CachePut(ctx, key, dayCacheVersion, payload, dayCacheTTL)
	}
	WriteSuccess(w, json.RawMessage(payload))
}

// cycleFor picks the lectionary cycle key: A/B/C on Sundays, 1/2 on
// weekdays.
func cycleFor(info *liturgy.DayInfo) string {
	d, err := calendar.ParseDateString(info.Date)
	if err == nil && d.Weekday() == time.Sunday {
		return string(info.SundayCycle)
	}
	return strconv.Itoa(info.WeekdayCycle)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	from, err := calendar.ParseDateString(r.URL.Query().Get("from"))
	if err != nil {
		WriteBadRequest(w, "from must be YYYY-MM-DD")
		return
	}
	to, err := calendar.ParseDateString(r.URL.Query().Get("to"))
	if err != nil {
		WriteBadRequest(w, "to must be YYYY-MM-DD")
		return
	}
	if to.Before(from) {
		WriteBadRequest(w, "to must not precede from")
		return
	}
	if to.Sub(from) > 366*24*time.Hour {
		WriteBadRequest(w, "range is limited to one year")
		return
	}
	WriteSuccess(w, s.svc.Range(from, to))
}

func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, s.svc.Feasts(year))
}

func (s *Server) handleYearDays(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, s.svc.YearDays(year))
}

func (s *Server) handleLunar(w http.ResponseWriter, r *http.Request) {
	d, err := calendar.ParseDateString(chi.URLParam(r, "date"))
	if err != nil {
		WriteBadRequest(w, "date must be YYYY-MM-DD")
		return
	}
	ld := s.svc.Lunar(d)
	WriteSuccess(w, map[string]any{
		"date":  calendar.FormatDate(calendar.Normalize(d)),
		"lunar": ld,
		"label": ld.String(),
	})
}

func (s *Server) handleVigil(w http.ResponseWriter, r *http.Request) {
	d, err := calendar.ParseDateString(chi.URLParam(r, "date"))
	if err != nil {
		WriteBadRequest(w, "date must be YYYY-MM-DD")
		return
	}
	v := s.svc.Vigil(d)
	if v == nil {
		WriteNotFound(w, "no vigil on this date")
		return
	}
	WriteSuccess(w, v)
}

func (s *Server) handleReadings(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		WriteNotFound(w, "no readings database configured")
		return
	}
	d, err := calendar.ParseDateString(chi.URLParam(r, "date"))
	if err != nil {
		WriteBadRequest(w, "date must be YYYY-MM-DD")
		return
	}
	info := s.svc.Day(d)
	ref, err := s.db.GetReadingRef(r.Context(), info.Code, cycleFor(info))
	switch {
	case database.IsNotFound(err):
		WriteNotFound(w, "no readings for this date")
	case err != nil:
		s.logger.Error("reading lookup failed", slog.Any("error", err))
		WriteInternalError(w, "Internal server error")
	default:
		WriteSuccess(w, ref)
	}
}

func (s *Server) handleICS(w http.ResponseWriter, r *http.Request) {
	year, ok := parseYear(w, r)
	if !ok {
		return
	}
	data, err := s.feed.Year(year)
	if err != nil {
		s.logger.Error("ics generation failed", slog.Int("year", year), slog.Any("error", err))
		WriteInternalError(w, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Write(data)
}

// handleCachePurge drops the in-memory day cache and expired persisted
// entries. Authenticated; used after importing new reading data.
func (s *Server) handleCachePurge(w http.ResponseWriter, r *http.Request) {
	s.svc.InvalidateDays()
	var purged int64
	if s.db != nil {
		n, err := s.db.PurgeExpiredCache(r.Context())
		if err != nil {
			s.logger.Error("cache purge failed", slog.Any("error", err))
			WriteInternalError(w, "Internal server error")
			return
		}
		purged = n
	}
	WriteSuccess(w, map[string]any{"purged": purged})
}

func parseYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1600 || year > 3000 {
		WriteBadRequest(w, "year must be a number between 1600 and 3000")
		return 0, false
	}
	return year, true
}
