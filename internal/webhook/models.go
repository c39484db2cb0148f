package webhook

import (
	"errors"
	"fmt"
)

// RegistrationRequest is the payload sent to the generate-webhook endpoint.
type RegistrationRequest struct {
	Name  string `json:"name"`
	RegNo string `json:"regNo"`
	Email string `json:"email"`
}

// Issuance is the response of the generate-webhook endpoint.
type Issuance struct {
	Webhook     string `json:"webhook"`
	AccessToken string `json:"accessToken"`
}

// SolutionSubmission is the payload sent to the issued webhook.
type SolutionSubmission struct {
	FinalQuery string `json:"finalQuery"`
}

// SubmissionResult is the raw response of the issued webhook.
type SubmissionResult struct {
	StatusCode int
	Body       string
}

const (
	StepGenerateWebhook = "generate_webhook"
	StepSubmitSolution  = "submit_solution"
)

// ErrMalformedIssuance is returned when the generate-webhook response
// is not an object with both a webhook URL and an access token.
var ErrMalformedIssuance = errors.New("malformed webhook issuance")

// StatusError is returned when an endpoint answers with a non-2xx status.
type StatusError struct {
	Step       string
	StatusCode int
	Body       string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Step, e.StatusCode, e.Body)
}
