package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// =============================================================================
// Reading References
// =============================================================================

// GetReadingRef fetches the lectionary pointer for a day code and
// cycle. Rows stored with an empty cycle apply to every cycle, so a
// cycle-specific miss falls back to the generic row before reporting
// ErrNotFound.
func (db *DB) GetReadingRef(ctx context.Context, dayCode, cycle string) (*ReadingRef, error) {
	const q = `
		SELECT id, day_code, cycle, first_reading, psalm, second_reading, alleluia, gospel
		FROM reading_refs
		WHERE day_code = ? AND cycle = ?
	`

	for _, c := range []string{cycle, ""} {
		var r ReadingRef
		err := db.QueryRowContext(ctx, q, dayCode, c).Scan(
			&r.ID, &r.DayCode, &r.Cycle,
			&r.FirstReading, &r.Psalm, &r.SecondReading, &r.Alleluia, &r.Gospel,
		)
		switch {
		case err == nil:
			return &r, nil
		case errors.Is(err, sql.ErrNoRows):
			if c == "" {
				return nil, ErrNotFound
			}
		default:
			return nil, fmt.Errorf("get reading ref %s/%s: %w", dayCode, c, err)
		}
	}
	return nil, ErrNotFound
}

// UpsertReadingRef inserts or replaces a reading reference inside a
// transaction.
func (tx *Tx) UpsertReadingRef(ctx context.Context, r ReadingRef) error {
	const q = `
		INSERT INTO reading_refs (day_code, cycle, first_reading, psalm, second_reading, alleluia, gospel)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(day_code, cycle) DO UPDATE SET
			first_reading = excluded.first_reading,
			psalm = excluded.psalm,
			second_reading = excluded.second_reading,
			alleluia = excluded.alleluia,
			gospel = excluded.gospel
	`
	if _, err := tx.ExecContext(ctx, q,
		r.DayCode, r.Cycle, r.FirstReading, r.Psalm, r.SecondReading, r.Alleluia, r.Gospel,
	); err != nil {
		return fmt.Errorf("upsert reading ref %s/%s: %w", r.DayCode, r.Cycle, err)
	}
	return nil
}

// CountReadingRefs returns the number of stored reading references.
func (db *DB) CountReadingRefs(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reading_refs").Scan(&n); err != nil {
		return 0, fmt.Errorf("count reading refs: %w", err)
	}
	return n, nil
}

// =============================================================================
// Saints Overrides
// =============================================================================

// ListSaints returns all imported sanctoral overrides ordered by date.
func (db *DB) ListSaints(ctx context.Context) ([]SaintRow, error) {
	const q = `
		SELECT id, month, day, name, rank, color
		FROM saints
		ORDER BY month, day
	`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list saints: %w", err)
	}
	defer rows.Close()

	var saints []SaintRow
	for rows.Next() {
		var s SaintRow
		if err := rows.Scan(&s.ID, &s.Month, &s.Day, &s.Name, &s.Rank, &s.Color); err != nil {
			return nil, fmt.Errorf("scan saint: %w", err)
		}
		saints = append(saints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saints: %w", err)
	}
	return saints, nil
}

// UpsertSaint inserts or replaces a sanctoral override inside a
// transaction.
func (tx *Tx) UpsertSaint(ctx context.Context, s SaintRow) error {
	const q = `
		INSERT INTO saints (month, day, name, rank, color)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(month, day) DO UPDATE SET
			name = excluded.name,
			rank = excluded.rank,
			color = excluded.color
	`
	if _, err := tx.ExecContext(ctx, q, s.Month, s.Day, s.Name, s.Rank, s.Color); err != nil {
		return fmt.Errorf("upsert saint %d-%d: %w", s.Month, s.Day, err)
	}
	return nil
}

// =============================================================================
// Key-Value Cache
// =============================================================================

// CacheGet reads a cache entry. Missing, expired or version-mismatched
// entries are a miss, never an error; stale rows are purged on the way
// out. Read failures are logged and treated as a miss too, since the
// cache is purely best-effort.
func (db *DB) CacheGet(ctx context.Context, key, version string) ([]byte, bool) {
	var (
		gotVersion string
		expiresAt  int64
		payload    string
	)
	err := db.QueryRowContext(ctx,
		"SELECT version, expires_at, payload FROM kv_cache WHERE key = ?", key,
	).Scan(&gotVersion, &expiresAt, &payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false
	case err != nil:
		db.logger.Warn("cache read failed, treating as miss",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return nil, false
	}

	if gotVersion != version || expiresAt <= time.Now().UnixMilli() {
		db.cacheDelete(ctx, key)
		return nil, false
	}
	return []byte(payload), true
}

// CachePut stores a cache entry with a version tag and time-to-live.
// Failures are logged and swallowed.
func (db *DB) CachePut(ctx context.Context, key, version string, payload []byte, ttl time.Duration) {
	expiresAt := time.Now().Add(ttl).UnixMilli()
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv_cache (key, version, expires_at, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			expires_at = excluded.expires_at,
			payload = excluded.payload
	`, key, version, expiresAt, string(payload))
	if err != nil {
		db.logger.Warn("cache write failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// PurgeExpiredCache removes every expired entry and returns the number
// deleted.
func (db *DB) PurgeExpiredCache(ctx context.Context) (int64, error) {
	res, err := db.ExecContext(ctx,
		"DELETE FROM kv_cache WHERE expires_at <= ?", time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (db *DB) cacheDelete(ctx context.Context, key string) {
	if _, err := db.ExecContext(ctx, "DELETE FROM kv_cache WHERE key = ?", key); err != nil {
		db.logger.Warn("cache delete failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
