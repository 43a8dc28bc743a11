package export

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createTransformationsTable = `CREATE TABLE IF NOT EXISTS transformations (
	id integer PRIMARY KEY AUTOINCREMENT,
	input text NOT NULL,
	words text NOT NULL,
	culture text NOT NULL,
	created_at integer NOT NULL
)`

// writeSQLite appends results to the transformations table of the database
// at dbPath, creating both if needed.
func writeSQLite(dbPath string, results []Result, culture string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createTransformationsTable); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO transformations (input, words, culture, created_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, r := range results {
		if _, err := stmt.Exec(r.Raw, r.Words, culture, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert result %q: %w", r.Raw, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}

	return nil
}
