package database

// migrationsSQL holds the forward-only schema, keyed by version.
// Versions already applied (recorded in schema_migrations) are skipped.
var migrationsSQL = map[int]string{
	1: `
		CREATE TABLE reading_refs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			day_code TEXT NOT NULL,
			cycle TEXT NOT NULL DEFAULT '',
			first_reading TEXT NOT NULL DEFAULT '',
			psalm TEXT NOT NULL DEFAULT '',
			second_reading TEXT NOT NULL DEFAULT '',
			alleluia TEXT NOT NULL DEFAULT '',
			gospel TEXT NOT NULL DEFAULT '',
			UNIQUE(day_code, cycle)
		);
		CREATE INDEX idx_reading_refs_code ON reading_refs(day_code);
	`,
	2: `
		CREATE TABLE kv_cache (
			key TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			payload TEXT NOT NULL
		);
	`,
	3: `
		CREATE TABLE saints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			month INTEGER NOT NULL,
			day INTEGER NOT NULL,
			name TEXT NOT NULL,
			rank TEXT NOT NULL,
			color TEXT NOT NULL,
			UNIQUE(month, day)
		);
	`,
}
