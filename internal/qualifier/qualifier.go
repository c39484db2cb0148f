// Package qualifier runs the webhook handshake: request a webhook, then submit the answer to it.
package qualifier

import (
	"context"
	"time"

	"github.com/database-playground/webhook-qualifier/internal/answer"
	"github.com/database-playground/webhook-qualifier/internal/config"
	"github.com/database-playground/webhook-qualifier/internal/metrics"
	"github.com/database-playground/webhook-qualifier/internal/webhook"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tokenPreviewLength is how much of the access token is written to the logs.
const tokenPreviewLength = 20

// Logger is the logging surface the qualifier needs. *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

// Client is the hiring API the qualifier talks to.
type Client interface {
	GenerateWebhook(ctx context.Context, url string, registration webhook.RegistrationRequest) (webhook.Issuance, error)
	SubmitSolution(ctx context.Context, webhookURL, accessToken, query string) (webhook.SubmissionResult, error)
}

// Result is the outcome of a successful run.
type Result struct {
	Issuance   webhook.Issuance
	Query      string
	Submission webhook.SubmissionResult
}

type Qualifier struct {
	client Client
	cfg    config.Config
	logger Logger
	tracer trace.Tracer
}

func NewQualifier(client Client, cfg config.Config, logger Logger, tracer trace.Tracer) *Qualifier {
	return &Qualifier{
		client: client,
		cfg:    cfg,
		logger: logger,
		tracer: tracer,
	}
}

// Run performs the handshake once. The submission is only attempted
// when the webhook was issued.
func (q *Qualifier) Run(ctx context.Context) (Result, error) {
	q.logger.Info("starting webhook qualifier")

	q.logger.Info("generating webhook", "url", q.cfg.GenerateWebhookURL())
	issuance, err := q.generateWebhook(ctx)
	if err != nil {
		q.logger.Error("error generating webhook", "error", err)
		return Result{}, err
	}
	q.logger.Info("webhook generated",
		"webhook", issuance.Webhook,
		"access_token", lo.Substring(issuance.AccessToken, 0, tokenPreviewLength)+"...",
	)

	q.logger.Info("preparing answer", "reg_no", q.cfg.User.RegNo)
	query := answer.Compute()

	q.logger.Info("submitting solution", "webhook", issuance.Webhook)
	submission, err := q.submitSolution(ctx, issuance, query)
	if err != nil {
		q.logger.Error("error submitting solution", "error", err)
		return Result{}, err
	}
	q.logger.Info("solution submitted", "status", submission.StatusCode, "body", submission.Body)

	return Result{
		Issuance:   issuance,
		Query:      query,
		Submission: submission,
	}, nil
}

func (q *Qualifier) generateWebhook(ctx context.Context) (issuance webhook.Issuance, err error) {
	ctx, span := q.tracer.Start(ctx, webhook.StepGenerateWebhook)
	defer endSpan(span, &err)
	defer recordStep(webhook.StepGenerateWebhook, time.Now(), &err)

	return q.client.GenerateWebhook(ctx, q.cfg.GenerateWebhookURL(), q.cfg.Registration())
}

func (q *Qualifier) submitSolution(ctx context.Context, issuance webhook.Issuance, query string) (submission webhook.SubmissionResult, err error) {
	ctx, span := q.tracer.Start(ctx, webhook.StepSubmitSolution)
	defer endSpan(span, &err)
	defer recordStep(webhook.StepSubmitSolution, time.Now(), &err)

	submission, err = q.client.SubmitSolution(ctx, issuance.Webhook, issuance.AccessToken, query)
	if err == nil {
		span.SetAttributes(attribute.Int("http.response.status_code", submission.StatusCode))
	}

	return submission, err
}

func recordStep(step string, start time.Time, err *error) {
	metrics.RecordStep(step, *err, time.Since(start))
}

func endSpan(span trace.Span, err *error) {
	if *err != nil {
		span.RecordError(*err)
		span.SetStatus(codes.Error, (*err).Error())
	}
	span.End()
}
