package cli

import (
	"context"
	"log/slog"

	"github.com/database-playground/webhook-qualifier/internal/answer"
)

// Answer returns the SQL submitted to the webhook.
func Answer() string {
	return answer.Compute()
}

// Verify runs the answer against the sample EMPLOYEE/DEPARTMENT data
// in a throwaway in-memory database.
func Verify(ctx context.Context) (answer.Result, error) {
	db, err := answer.OpenMemoryDB()
	if err != nil {
		return answer.Result{}, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	return answer.Verify(ctx, db)
}
