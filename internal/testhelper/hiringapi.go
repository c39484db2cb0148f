package testhelper

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/database-playground/webhook-qualifier/internal/webhook"
)

const (
	GenerateWebhookPath = "/hiring/generateWebhook/JAVA"
	TestWebhookPath     = "/hiring/testWebhook/JAVA"
	AccessToken         = "tok123"
)

// Submission is a request received by the fake webhook.
type Submission struct {
	Authorization string
	ContentType   string
	Body          webhook.SolutionSubmission
	RawBody       string
}

// HiringAPI is a fake hiring API serving both the generate-webhook
// endpoint and the webhook it issues.
type HiringAPI struct {
	*httptest.Server

	// IssuanceStatus and IssuanceBody override the generate-webhook
	// response when set.
	IssuanceStatus int
	IssuanceBody   string

	mu            sync.Mutex
	registrations []webhook.RegistrationRequest
	submissions   []Submission
}

// NewHiringAPI starts a fake hiring API which is closed on test cleanup.
func NewHiringAPI(t *testing.T) *HiringAPI {
	t.Helper()

	api := &HiringAPI{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+GenerateWebhookPath, api.generateWebhook)
	mux.HandleFunc("POST "+TestWebhookPath, api.testWebhook)

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)

	return api
}

// WebhookURL is the webhook URL the API issues.
func (a *HiringAPI) WebhookURL() string {
	return a.URL + TestWebhookPath
}

func (a *HiringAPI) Registrations() []webhook.RegistrationRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]webhook.RegistrationRequest(nil), a.registrations...)
}

func (a *HiringAPI) Submissions() []Submission {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]Submission(nil), a.submissions...)
}

func (a *HiringAPI) generateWebhook(w http.ResponseWriter, r *http.Request) {
	var registration webhook.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.registrations = append(a.registrations, registration)
	a.mu.Unlock()

	status := a.IssuanceStatus
	if status == 0 {
		status = http.StatusOK
	}

	body := a.IssuanceBody
	if body == "" {
		encoded, _ := json.Marshal(webhook.Issuance{
			Webhook:     a.WebhookURL(),
			AccessToken: AccessToken,
		})
		body = string(encoded)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (a *HiringAPI) testWebhook(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	submission := Submission{
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		RawBody:       string(raw),
	}
	if err := json.Unmarshal(raw, &submission.Body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	a.submissions = append(a.submissions, submission)
	a.mu.Unlock()

	if submission.Authorization != AccessToken {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, `{"success":true,"message":"Webhook processed successfully"}`)
}
