package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/utils"
)

type (
	// Client classifies an uploaded leaf image via the external model
	// endpoint. Classify never fails: any transport or decode problem
	// yields the fixed mock predictions so the caller always has a
	// ranked list to work with. The second return value reports whether
	// the mock fallback was used.
	Client interface {
		Classify(ctx context.Context, imageURL string) (domain.PredictionResponse, bool)
	}

	client struct {
		httpClient *http.Client
		apiURL     string
	}
)

func NewClient() Client {
	return &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiURL:     utils.GetConfig("PREDICTION_API_URL"),
	}
}

func (c *client) Classify(ctx context.Context, imageURL string) (domain.PredictionResponse, bool) {
	if c.apiURL == "" {
		// No endpoint configured: permanent mock mode for local
		// development and demos.
		return mockResponse(), true
	}

	payload, err := json.Marshal(map[string]string{"image_url": imageURL})
	if err != nil {
		log.Printf("prediction request encode failed, using mock predictions: %v", err)
		return mockResponse(), true
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("prediction request build failed, using mock predictions: %v", err)
		return mockResponse(), true
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("prediction API unreachable, using mock predictions: %v", err)
		return mockResponse(), true
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("prediction API error, using mock predictions: %s - %s", resp.Status, string(body))
		return mockResponse(), true
	}

	var result domain.PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("prediction response decode failed, using mock predictions: %v", err)
		return mockResponse(), true
	}

	return result, false
}

func mockResponse() domain.PredictionResponse {
	predictions := make([]domain.Prediction, len(domain.MockPredictions))
	copy(predictions, domain.MockPredictions)
	return domain.PredictionResponse{Predictions: predictions}
}
