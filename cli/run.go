package cli

import (
	"context"
	"log/slog"

	"github.com/database-playground/webhook-qualifier/internal/metrics"
	"github.com/database-playground/webhook-qualifier/internal/qualifier"
)

// Run performs the webhook handshake and pushes the step metrics afterwards,
// whether or not the handshake succeeded.
func (c *Context) Run(ctx context.Context) (qualifier.Result, error) {
	result, runErr := c.qualifier.Run(ctx)

	if err := metrics.Push(ctx, c.cfg.Metrics); err != nil {
		slog.Warn("error pushing metrics", "error", err)
	}

	return result, runErr
}
