package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const appriseTimeout = 10 * time.Second

// Apprise delivers notifications through an Apprise API gateway
// (POST <endpoint>/notify with the target service URLs in the payload).
type Apprise struct {
	endpoint string
	urls     string
	http     *http.Client
}

// NewApprise creates a channel posting to the given gateway endpoint.
// urls is the comma-separated list of Apprise service URLs to notify.
func NewApprise(endpoint, urls string) *Apprise {
	return &Apprise{
		endpoint: strings.TrimRight(endpoint, "/"),
		urls:     urls,
		http:     &http.Client{Timeout: appriseTimeout},
	}
}

type apprisePayload struct {
	URLs  string `json:"urls"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Type  string `json:"type"`
}

func (a *Apprise) Notify(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(apprisePayload{
		URLs:  a.urls,
		Title: n.Title,
		Body:  n.Body,
		Type:  string(n.Kind),
	})
	if err != nil {
		return fmt.Errorf("apprise: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint+"/notify", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("apprise: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("apprise: send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("apprise: gateway returned status %d", resp.StatusCode)
	}
	return nil
}
