package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a schema migration applied in version order
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the embedded schema history. Append only; never
// edit an applied entry.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_recognitions",
		SQL: `
			CREATE TABLE IF NOT EXISTS recognitions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id TEXT NOT NULL,
				batch_id TEXT,
				dominant_activity TEXT NOT NULL,
				segment_count INTEGER NOT NULL DEFAULT 0,
				pattern_count INTEGER NOT NULL DEFAULT 0,
				avg_intensity REAL NOT NULL DEFAULT 0,
				active_minutes REAL NOT NULL DEFAULT 0,
				total_duration REAL NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_recognitions_user ON recognitions(user_id, created_at);
		`,
	},
	{
		Version: 2,
		Name:    "create_recognition_segments",
		SQL: `
			CREATE TABLE IF NOT EXISTS recognition_segments (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				recognition_id INTEGER NOT NULL REFERENCES recognitions(id) ON DELETE CASCADE,
				activity_type TEXT NOT NULL,
				confidence REAL NOT NULL,
				start_time TIMESTAMP NOT NULL,
				end_time TIMESTAMP NOT NULL,
				avg_intensity REAL NOT NULL DEFAULT 0,
				peak_intensity REAL NOT NULL DEFAULT 0,
				movement_consistency REAL NOT NULL DEFAULT 0,
				active_minutes REAL NOT NULL DEFAULT 0,
				total_duration REAL NOT NULL DEFAULT 0
			);
			CREATE INDEX IF NOT EXISTS idx_recognition_segments_rec ON recognition_segments(recognition_id);
		`,
	},
}

// Migrate applies all pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		if err := applyMigration(db, m); err != nil {
			return err
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func applyMigration(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(m.SQL); err != nil {
		return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
