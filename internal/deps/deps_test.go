package deps_test

import (
	"context"
	"testing"
	"time"

	"github.com/database-playground/webhook-qualifier/internal/deps"
	"github.com/database-playground/webhook-qualifier/internal/qualifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("APP_USER_NAME", "John Doe")
	t.Setenv("APP_USER_REG_NO", "REG12347")
	t.Setenv("APP_USER_EMAIL", "john@example.com")
	t.Setenv("APP_API_BASE_URL", "https://api.example.com")
}

func TestConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_API_TIMEOUT", "5s")

	cfg, err := deps.Config()
	require.NoError(t, err)

	assert.Equal(t, "REG12347", cfg.User.RegNo)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "https://api.example.com/hiring/generateWebhook/JAVA", cfg.GenerateWebhookURL())
}

func TestConfig_Invalid(t *testing.T) {
	t.Setenv("APP_API_BASE_URL", "")

	_, err := deps.Config()
	require.Error(t, err)
}

func TestFxCommonModule(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_API_TIMEOUT", "3s")

	var q *qualifier.Qualifier
	app := fxtest.New(t,
		deps.FxCommonModule,
		fx.NopLogger,
		fx.Populate(&q),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, q)
}

func TestHTTPClient(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_API_TIMEOUT", "3s")

	cfg, err := deps.Config()
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	tp, err := deps.TracerProvider(lc, cfg)
	require.NoError(t, err)

	client := deps.HTTPClient(cfg, tp)
	assert.Equal(t, 3*time.Second, client.Timeout)
	assert.NotNil(t, client.Transport)

	lc.RequireStart()
	require.NoError(t, lc.Stop(context.Background()))
}
