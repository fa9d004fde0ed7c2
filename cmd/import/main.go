// import loads reading references and sanctoral overrides from JSON
// files into the SQLite database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/vntruongson/phungvu-api/internal/config"
	"github.com/vntruongson/phungvu-api/internal/database"
	"github.com/vntruongson/phungvu-api/internal/logger"
)

func main() {
	var (
		readingsPath = flag.String("readings", "", "JSON file of reading references")
		saintsPath   = flag.String("saints", "", "JSON file of sanctoral overrides")
	)
	flag.Parse()

	if *readingsPath == "" && *saintsPath == "" {
		fmt.Fprintln(os.Stderr, "usage: import -readings refs.json [-saints saints.json]")
		os.Exit(2)
	}

	if err := run(*readingsPath, *saintsPath); err != nil {
		slog.Error("import failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(readingsPath, saintsPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.Setup(cfg)

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if readingsPath != "" {
		n, err := importReadings(ctx, db, readingsPath)
		if err != nil {
			return fmt.Errorf("import readings: %w", err)
		}
		log.Info("readings imported", slog.Int("count", n))
	}

	if saintsPath != "" {
		n, err := importSaints(ctx, db, saintsPath)
		if err != nil {
			return fmt.Errorf("import saints: %w", err)
		}
		log.Info("saints imported", slog.Int("count", n))
	}

	return nil
}

// importReadings loads a JSON array of reading references in one
// transaction, so a malformed file leaves the table untouched.
func importReadings(ctx context.Context, db *database.DB, path string) (int, error) {
	var refs []database.ReadingRef
	if err := decodeFile(path, &refs); err != nil {
		return 0, err
	}

	err := db.WithTx(ctx, func(tx *database.Tx) error {
		for _, r := range refs {
			if r.DayCode == "" {
				return fmt.Errorf("entry without day_code")
			}
			if err := tx.UpsertReadingRef(ctx, r); err != nil {
				return err
			}
		}
		return nil
	})
	return len(refs), err
}

func importSaints(ctx context.Context, db *database.DB, path string) (int, error) {
	var saints []database.SaintRow
	if err := decodeFile(path, &saints); err != nil {
		return 0, err
	}

	err := db.WithTx(ctx, func(tx *database.Tx) error {
		for _, s := range saints {
			if s.Month < 1 || s.Month > 12 || s.Day < 1 || s.Day > 31 || s.Name == "" {
				return fmt.Errorf("invalid saint entry %d-%d %q", s.Month, s.Day, s.Name)
			}
			if err := tx.UpsertSaint(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
	return len(saints), err
}

func decodeFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}
