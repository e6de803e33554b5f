package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath keeps the catalog in process memory.
const MemoryPath = ":memory:"

// Open opens sqlite with sensible defaults. An empty path means MemoryPath.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = MemoryPath
	}
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// one connection: an in-memory database lives and dies with it
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}
