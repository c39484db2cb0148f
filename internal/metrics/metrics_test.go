package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/database-playground/webhook-qualifier/internal/config"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordStep(t *testing.T) {
	StepTotal.Reset()
	StepDuration.Reset()

	RecordStep("generate_webhook", nil, 10*time.Millisecond)
	RecordStep("generate_webhook", errors.New("boom"), time.Millisecond)
	RecordStep("submit_solution", nil, time.Second)

	assert.InDelta(t, 1, testutil.ToFloat64(StepTotal.WithLabelValues("generate_webhook", StatusSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(StepTotal.WithLabelValues("generate_webhook", StatusFailed)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(StepTotal.WithLabelValues("submit_solution", StatusSuccess)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(StepTotal.WithLabelValues("submit_solution", StatusFailed)), 0)

	assert.Equal(t, 2, testutil.CollectAndCount(StepDuration))
}

func TestPush_NotConfigured(t *testing.T) {
	require.NoError(t, Push(context.Background(), config.MetricsConfig{}))
}

func TestPush(t *testing.T) {
	StepTotal.Reset()
	RecordStep("submit_solution", nil, time.Millisecond)

	var gotPath, gotMethod string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := Push(context.Background(), config.MetricsConfig{
		PushgatewayURL: srv.URL,
		Job:            "webhook_qualifier",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/metrics/job/webhook_qualifier", gotPath)
	assert.NotEmpty(t, gotBody)
}

func TestPush_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := Push(context.Background(), config.MetricsConfig{
		PushgatewayURL: srv.URL,
		Job:            "webhook_qualifier",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "push metrics")
}
