package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/database-playground/webhook-qualifier/internal/webhook"
	"github.com/hashicorp/go-multierror"
)

type Config struct {
	User    UserConfig    `envPrefix:"APP_USER_"`
	API     APIConfig     `envPrefix:"APP_API_"`
	Metrics MetricsConfig `envPrefix:"METRICS_"`
	Trace   TraceConfig   `envPrefix:"TRACE_"`
}

func (c Config) Validate() error {
	var result *multierror.Error

	if err := c.User.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.API.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Registration builds the registration payload sent to the generate-webhook endpoint.
func (c Config) Registration() webhook.RegistrationRequest {
	return webhook.RegistrationRequest{
		Name:  c.User.Name,
		RegNo: c.User.RegNo,
		Email: c.User.Email,
	}
}

// GenerateWebhookURL returns the base URL joined with the generate-webhook path.
func (c Config) GenerateWebhookURL() string {
	return c.API.BaseURL + c.API.GenerateWebhook
}

type UserConfig struct {
	Name  string `env:"NAME"`
	RegNo string `env:"REG_NO"`
	Email string `env:"EMAIL"`
}

func (c UserConfig) Validate() error {
	var result *multierror.Error

	if c.Name == "" {
		result = multierror.Append(result, errors.New("APP_USER_NAME is required"))
	}
	if c.RegNo == "" {
		result = multierror.Append(result, errors.New("APP_USER_REG_NO is required"))
	}
	if c.Email == "" {
		result = multierror.Append(result, errors.New("APP_USER_EMAIL is required"))
	}

	return result.ErrorOrNil()
}

type APIConfig struct {
	BaseURL         string        `env:"BASE_URL"`
	GenerateWebhook string        `env:"GENERATE_WEBHOOK" envDefault:"/hiring/generateWebhook/JAVA"`
	TestWebhook     string        `env:"TEST_WEBHOOK" envDefault:"/hiring/testWebhook/JAVA"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"0s"`
}

func (c APIConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("APP_API_BASE_URL is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("APP_API_BASE_URL is invalid: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("APP_API_BASE_URL must be an http or https URL, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("APP_API_BASE_URL has no host: %q", c.BaseURL)
	}

	if c.Timeout < 0 {
		return errors.New("APP_API_TIMEOUT must not be negative")
	}

	return nil
}

type MetricsConfig struct {
	// PushgatewayURL is optional; metrics are not pushed when it is empty.
	PushgatewayURL string `env:"PUSHGATEWAY_URL"`
	Job            string `env:"JOB" envDefault:"webhook_qualifier"`
}

type TraceConfig struct {
	Stdout bool `env:"STDOUT" envDefault:"false"`
}
