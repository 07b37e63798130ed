package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (or creates) the sqlite database at path and ensures the
// schema exists. Pass ":memory:" for an in-memory database, used by
// tests.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		// Connection parameters to better handle concurrency.
		dsn = path + "?_journal=WAL&_busy_timeout=10000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if path == ":memory:" {
		// Each sqlite connection gets its own in-memory database, so
		// the pool must stay at a single connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createSchema(db *sql.DB) error {
	createTransactionsTable := `
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		mcc TEXT NOT NULL,
		amount REAL NOT NULL,
		recorded_at DATETIME NOT NULL
	);
	`
	if _, err := db.Exec(createTransactionsTable); err != nil {
		return err
	}

	// Index the duplicate-detection key. Not a uniqueness constraint:
	// duplicate rejection is the processor's job.
	createDupIndex := `
	CREATE INDEX IF NOT EXISTS idx_transactions_name_amount
	ON transactions (name, amount);
	`
	if _, err := db.Exec(createDupIndex); err != nil {
		return err
	}

	return nil
}
