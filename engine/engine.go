package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open opens a SQLite fixture database using the modernc.org/sqlite driver,
// with the knn_* scalar functions registered and a busy timeout set so
// concurrent fixture rebuilds wait instead of failing.
//
// For file-based databases, pass a path like "./fixtures.sqlite". An empty
// dsn (or ":memory:") opens an in-memory database.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	if err := RegisterDistanceFunctions(nil); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
