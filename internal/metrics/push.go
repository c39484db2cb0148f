package metrics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/database-playground/webhook-qualifier/internal/config"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends Registry to the configured Pushgateway. It does nothing
// when no Pushgateway is configured.
func Push(ctx context.Context, cfg config.MetricsConfig) error {
	if cfg.PushgatewayURL == "" {
		slog.Debug("no pushgateway configured, skipping metrics push")
		return nil
	}

	err := push.New(cfg.PushgatewayURL, cfg.Job).
		Gatherer(Registry).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}

	return nil
}
