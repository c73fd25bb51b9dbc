package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const workerTimeout = 10 * time.Second

// WorkerNotifier posts submissions to an external email-worker service
// that owns template rendering and delivery.
type WorkerNotifier struct {
	url    string
	apiKey string
	client *http.Client
}

// NewWorkerNotifier returns a notifier targeting the given worker URL.
func NewWorkerNotifier(url, apiKey string) *WorkerNotifier {
	return &WorkerNotifier{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: workerTimeout},
	}
}

// NotifyContact sends the submission as JSON, authenticated with the
// worker API key.
func (w *WorkerNotifier) NotifyContact(ctx context.Context, data ContactData) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", w.apiKey)

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email worker responded with %d: %s", resp.StatusCode, resp.Status)
	}

	return nil
}
