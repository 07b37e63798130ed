package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finledger/models"
)

// MCCClient looks up merchant category codes on the remote MCC API.
type MCCClient struct {
	baseURL string
	client  *http.Client
}

// NewMCCClient creates a client for the MCC API at baseURL. The
// timeout bounds every lookup; the enrichment path must never block a
// request indefinitely.
func NewMCCClient(baseURL string, timeout time.Duration) *MCCClient {
	return &MCCClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Lookup checks whether code exists on the remote MCC API. A nil error
// means the code was found. Callers treat every failure the same, so
// network errors, non-2xx statuses and malformed bodies are all
// reported as plain errors.
func (c *MCCClient) Lookup(ctx context.Context, code string) error {
	url := fmt.Sprintf("%s/mcc/%s", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting mcc api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mcc api returned status %d: %s", resp.StatusCode, body)
	}

	var entry models.MCCEntry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		return fmt.Errorf("decoding mcc api response: %w", err)
	}

	return nil
}
