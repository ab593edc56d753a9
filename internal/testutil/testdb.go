package testutil

import (
	"database/sql"
	"testing"

	"appointment-prep-service/internal/adapters/repositories"
	"appointment-prep-service/internal/platform/db"
)

// NewTestDB creates an in-memory SQLite database with the schema applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	// An in-memory database exists per connection; keep the pool at one so
	// every statement sees the same schema.
	database.SetMaxOpenConns(1)

	if err := repositories.InitSchema(database); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})
	return database
}
