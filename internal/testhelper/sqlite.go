package testhelper

import (
	"database/sql"
	"testing"

	"github.com/database-playground/webhook-qualifier/internal/answer"
)

// NewMemoryDB creates a new in-memory SQLite database for testing.
func NewMemoryDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := answer.OpenMemoryDB()
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Fatalf("Failed to close database: %v", err)
		}
	})

	return db
}
