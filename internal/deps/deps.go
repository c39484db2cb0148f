// Package deps contains the dependencies for the qualifier CLI.
package deps

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/database-playground/webhook-qualifier/internal/config"
	"github.com/database-playground/webhook-qualifier/internal/metrics"
	"github.com/database-playground/webhook-qualifier/internal/qualifier"
	"github.com/database-playground/webhook-qualifier/internal/webhook"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// Config loads the environment variables from the .env file and returns a config.Config.
func Config() (config.Config, error) {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("error creating config", "error", err)
		return config.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("error validating config", "error", err)
		return config.Config{}, err
	}

	return cfg, nil
}

// TracerProvider creates and installs the global tracer provider.
// Spans are exported to stdout when TRACE_STDOUT is set.
func TracerProvider(lifecycle fx.Lifecycle, cfg config.Config) (*sdktrace.TracerProvider, error) {
	var opts []sdktrace.TracerProviderOption

	if cfg.Trace.Stdout {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			slog.Error("error creating stdout trace exporter", "error", err)
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})

	return tp, nil
}

// Tracer creates the tracer for the qualifier spans.
func Tracer(tp *sdktrace.TracerProvider) trace.Tracer {
	return tp.Tracer(metrics.TracerName)
}

// HTTPClient creates the HTTP client used to talk to the hiring API.
func HTTPClient(cfg config.Config, tp *sdktrace.TracerProvider) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport, otelhttp.WithTracerProvider(tp)),
		Timeout:   cfg.API.Timeout,
	}
}

// WebhookClient creates a webhook.Client.
func WebhookClient(httpClient *http.Client) *webhook.Client {
	return webhook.NewClient(httpClient)
}

// Logger returns the default slog logger.
func Logger() *slog.Logger {
	return slog.Default()
}

// Qualifier creates a qualifier.Qualifier.
func Qualifier(client *webhook.Client, cfg config.Config, logger *slog.Logger, tracer trace.Tracer) *qualifier.Qualifier {
	return qualifier.NewQualifier(client, cfg, logger, tracer)
}

var FxCommonModule = fx.Module("common",
	fx.Provide(Config),
	fx.Provide(TracerProvider),
	fx.Provide(Tracer),
	fx.Provide(HTTPClient),
	fx.Provide(WebhookClient),
	fx.Provide(Logger),
	fx.Provide(Qualifier),
)
