package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vntruongson/phungvu-api/internal/config"
	"github.com/vntruongson/phungvu-api/internal/database"
	"github.com/vntruongson/phungvu-api/internal/liturgy"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	db, err := database.Open(database.DefaultConfig(":memory:"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	_, err = db.Migrate(ctx)
	require.NoError(t, err)

	err = db.WithTx(ctx, func(tx *database.Tx) error {
		return tx.UpsertReadingRef(ctx, database.ReadingRef{
			DayCode: "5101", Cycle: "1",
			FirstReading: "2 Cr 1:1-7", Psalm: "Tv 33", Gospel: "Mt 5:1-12",
		})
	})
	require.NoError(t, err)

	svc, err := liturgy.New(liturgy.Options{})
	require.NoError(t, err)

	cfg := &config.Config{
		Port: 8080, Env: config.EnvDevelopment,
		DatabasePath: ":memory:", APIKey: "secret",
		LogLevel: "info", LogFormat: "text",
		LunarTZOffset: 7, DefaultLang: "vi",
		YearCacheSize: 4, DayCacheSize: 64, LunarCacheSize: 64,
	}
	return NewServer(cfg, slog.Default(), db, svc)
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func TestHandleHealth(t *testing.T) {
	h := testServer(t).Routes()
	rec := get(t, h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)

	var data map[string]string
	decodeData(t, rec, &data)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "ok", data["database"])
}

func TestHandleDay(t *testing.T) {
	h := testServer(t).Routes()

	rec := get(t, h, "/v1/day/2025-06-09")
	require.Equal(t, http.StatusOK, rec.Code)

	var day struct {
		Code     string `json:"code"`
		Season   string `json:"season"`
		Readings *struct {
			Gospel string `json:"gospel"`
		} `json:"readings"`
	}
	decodeData(t, rec, &day)
	assert.Equal(t, "5101", day.Code)
	assert.Equal(t, "ordinary", day.Season)
	require.NotNil(t, day.Readings)
	assert.Equal(t, "Mt 5:1-12", day.Readings.Gospel)

	// Second request is served from the persistent cache with the
	// same payload.
	rec2 := get(t, h, "/v1/day/2025-06-09")
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.JSONEq(t, rec.Body.String(), rec2.Body.String())
}

func TestHandleDay_BadDate(t *testing.T) {
	h := testServer(t).Routes()
	rec := get(t, h, "/v1/day/09-06-2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRange(t *testing.T) {
	h := testServer(t).Routes()

	rec := get(t, h, "/v1/range?from=2025-04-18&to=2025-04-21")
	require.Equal(t, http.StatusOK, rec.Code)
	var days []struct {
		Date string `json:"date"`
	}
	decodeData(t, rec, &days)
	require.Len(t, days, 4)
	assert.Equal(t, "2025-04-18", days[0].Date)

	rec = get(t, h, "/v1/range?from=2025-04-21&to=2025-04-18")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, h, "/v1/range?from=2024-01-01&to=2026-01-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleYear(t *testing.T) {
	h := testServer(t).Routes()
	rec := get(t, h, "/v1/year/2025")
	require.Equal(t, http.StatusOK, rec.Code)

	var feasts struct {
		Easter string `json:"easter"`
	}
	decodeData(t, rec, &feasts)
	assert.Contains(t, feasts.Easter, "2025-04-20")

	rec = get(t, h, "/v1/year/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLunar(t *testing.T) {
	h := testServer(t).Routes()
	rec := get(t, h, "/v1/lunar/2024-02-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Lunar struct {
			Day   int `json:"day"`
			Month int `json:"month"`
		} `json:"lunar"`
		Label string `json:"label"`
	}
	decodeData(t, rec, &data)
	assert.Equal(t, 1, data.Lunar.Day)
	assert.Equal(t, 1, data.Lunar.Month)
	assert.Contains(t, data.Label, "Giáp Thìn")
}

func TestHandleVigil(t *testing.T) {
	h := testServer(t).Routes()

	rec := get(t, h, "/v1/vigil/2025-12-24")
	require.Equal(t, http.StatusOK, rec.Code)
	var v struct {
		VigilName string `json:"vigil_name"`
	}
	decodeData(t, rec, &v)
	assert.Equal(t, "Lễ Vọng Giáng Sinh", v.VigilName)

	rec = get(t, h, "/v1/vigil/2025-06-09")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleReadings(t *testing.T) {
	h := testServer(t).Routes()

	rec := get(t, h, "/v1/readings/2025-06-09")
	require.Equal(t, http.StatusOK, rec.Code)
	var ref struct {
		DayCode string `json:"day_code"`
	}
	decodeData(t, rec, &ref)
	assert.Equal(t, "5101", ref.DayCode)

	rec = get(t, h, "/v1/readings/2025-06-10")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleICS(t *testing.T) {
	h := testServer(t).Routes()
	rec := get(t, h, "/calendar/2025.ics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

func TestHandleCachePurge_Auth(t *testing.T) {
	h := testServer(t).Routes()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/cache/purge", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/admin/cache/purge", nil)
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
