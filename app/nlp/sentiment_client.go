package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var _ SentimentClassifier = (*SentimentClient)(nil)

// SentimentClient calls a hosted binary sentiment model. The endpoint
// follows the common text-classification inference contract: the request
// carries the raw input text, the response lists candidate labels with
// confidence scores.
type SentimentClient struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
}

func NewSentimentClient(endpoint, userAgent string) *SentimentClient {
	return &SentimentClient{
		endpoint:   endpoint,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type sentimentRequest struct {
	Inputs string `json:"inputs"`
}

type sentimentCandidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *SentimentClient) Classify(ctx context.Context, text string) (Prediction, error) {
	body, err := json.Marshal(sentimentRequest{Inputs: text})
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to marshal sentiment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("failed to build sentiment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("sentiment inference failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Prediction{}, fmt.Errorf("sentiment inference returned status %d", resp.StatusCode)
	}

	// One batch entry per input; each entry lists candidate labels.
	var parsed [][]sentimentCandidate
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Prediction{}, fmt.Errorf("failed to decode sentiment response: %w", err)
	}

	if len(parsed) == 0 || len(parsed[0]) == 0 {
		return Prediction{}, fmt.Errorf("sentiment response contains no predictions")
	}

	best := parsed[0][0]
	for _, candidate := range parsed[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return Prediction{Label: best.Label, Score: best.Score}, nil
}
