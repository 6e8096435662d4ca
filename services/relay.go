package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ContactRelay forwards contact-form submissions to an external form relay
// (Formspree). Forwarding is best-effort: the contact row is already
// persisted before the relay is attempted.
type ContactRelay struct {
	URL    string
	client *http.Client
}

func NewContactRelay(url string) *ContactRelay {
	return &ContactRelay{
		URL: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Forward posts the submission to the relay service.
func (r *ContactRelay) Forward(ctx context.Context, name, email, message string) error {
	if r.URL == "" {
		return fmt.Errorf("contact relay URL is not configured")
	}

	payload := map[string]string{
		"name":     name,
		"_replyto": email,
		"message":  message,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach contact relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("contact relay error: %s", string(text))
	}
	return nil
}
