package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var _ EntityRecognizer = (*NERClient)(nil)

// NERClient calls a hosted named-entity recognition model. The service
// accepts raw text and returns the recognized spans with their labels.
type NERClient struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

func NewNERClient(endpoint, userAgent string) *NERClient {
	return &NERClient{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Ping probes the NER endpoint for reachability. Used at startup to decide
// whether entity recognition is available for the lifetime of the process;
// any HTTP response counts as reachable.
func (c *NERClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build NER probe: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("NER service unreachable: %w", err)
	}
	resp.Body.Close()

	return nil
}

type nerRequest struct {
	Text string `json:"text"`
}

type nerResponse struct {
	Entities []nerEntity `json:"entities"`
}

type nerEntity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

func (c *NERClient) Recognize(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(nerRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal NER request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build NER request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("NER inference failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NER inference returned status %d", resp.StatusCode)
	}

	var parsed nerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode NER response: %w", err)
	}

	entities := make([]Entity, 0, len(parsed.Entities))
	for _, e := range parsed.Entities {
		entities = append(entities, Entity{Text: e.Text, Label: e.Label})
	}

	return entities, nil
}
