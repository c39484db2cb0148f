// Package webhook talks to the hiring API: it requests a webhook and submits solutions to it.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

type Client struct {
	client *http.Client
}

func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}

	return &Client{
		client: client,
	}
}

// GenerateWebhook registers the user at url and returns the issued webhook and access token.
func (c *Client) GenerateWebhook(ctx context.Context, url string, registration RegistrationRequest) (Issuance, error) {
	resp, err := c.postJSON(ctx, url, registration, nil)
	if err != nil {
		return Issuance{}, err
	}
	defer closeBody(resp)

	if !isSuccess(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return Issuance{}, &StatusError{
			Step:       StepGenerateWebhook,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var issuance Issuance
	if err := json.NewDecoder(resp.Body).Decode(&issuance); err != nil {
		return Issuance{}, fmt.Errorf("%w: %w", ErrMalformedIssuance, err)
	}

	if issuance.Webhook == "" {
		return Issuance{}, fmt.Errorf("%w: missing webhook", ErrMalformedIssuance)
	}
	if issuance.AccessToken == "" {
		return Issuance{}, fmt.Errorf("%w: missing accessToken", ErrMalformedIssuance)
	}

	return issuance, nil
}

// SubmitSolution posts query to webhookURL. The access token is sent
// as the Authorization header as is, without any scheme.
func (c *Client) SubmitSolution(ctx context.Context, webhookURL, accessToken, query string) (SubmissionResult, error) {
	header := http.Header{}
	header.Set("Authorization", accessToken)

	resp, err := c.postJSON(ctx, webhookURL, SolutionSubmission{FinalQuery: query}, header)
	if err != nil {
		return SubmissionResult{}, err
	}
	defer closeBody(resp)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("read response: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		return SubmissionResult{}, &StatusError{
			Step:       StepSubmitSolution,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return SubmissionResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

func (c *Client) postJSON(ctx context.Context, url string, payload any, header http.Header) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	return resp, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		slog.Error("failed to close response body", "error", err)
	}
}
