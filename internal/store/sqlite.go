package store

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

type DB struct {
	connection *sql.DB
}

// NewDB opens (or creates) the local state database at the given path.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Single local writer; SQLite handles concurrent readers itself.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the state database:", err)
	}
}

func (db *DB) Get(key string) ([]byte, bool, error) {
	var value []byte
	row := db.connection.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (db *DB) Set(key string, value []byte) error {
	query := `INSERT INTO app_state (key, value) VALUES (?, ?)
              ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	_, err := db.connection.Exec(query, key, value)
	return err
}
