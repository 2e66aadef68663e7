package fixture

import "database/sql"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS point_sets (
    name   TEXT PRIMARY KEY,
    dim    INTEGER NOT NULL,
    n      INTEGER NOT NULL,
    points BLOB NOT NULL
);`,
	`CREATE TABLE IF NOT EXISTS neighbour_fixtures (
    set_name   TEXT NOT NULL,
    k          INTEGER NOT NULL,
    metric     TEXT NOT NULL,
    theiler    INTEGER NOT NULL DEFAULT 0,
    index_base INTEGER NOT NULL DEFAULT 0,
    cols       INTEGER NOT NULL,
    indices    BLOB NOT NULL,
    PRIMARY KEY(set_name, k, metric, theiler)
);`,
}

// EnsureSchema creates the fixture tables in the provided database if they
// do not already exist.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
