package prediction

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
)

const testAPIURL = "http://prediction.test/predict"

func newTestClient(apiURL string) *client {
	httpClient := &http.Client{Timeout: 5 * time.Second}
	httpmock.ActivateNonDefault(httpClient)
	return &client{httpClient: httpClient, apiURL: apiURL}
}

func assertMockFallback(t *testing.T, result domain.PredictionResponse, usedFallback bool) {
	t.Helper()

	assert.True(t, usedFallback)
	require.Len(t, result.Predictions, 3)
	assert.Equal(t, "Healthy", result.Predictions[0].Name)
	assert.Equal(t, 0.85, result.Predictions[0].Confidence)
	assert.Equal(t, "Early Blight", result.Predictions[1].Name)
	assert.Equal(t, 0.10, result.Predictions[1].Confidence)
	assert.Equal(t, "Leaf Spot", result.Predictions[2].Name)
	assert.Equal(t, 0.05, result.Predictions[2].Confidence)
}

func TestClassifySuccess(t *testing.T) {
	c := newTestClient(testAPIURL)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testAPIURL,
		httpmock.NewStringResponder(http.StatusOK, `{
			"predictions": [
				{"disease_id": "d-17", "name": "Late Blight", "confidence": 0.72},
				{"disease_id": null, "name": "Healthy", "confidence": 0.21}
			]
		}`))

	result, usedFallback := c.Classify(context.Background(), "https://bucket/leaf.jpg")

	assert.False(t, usedFallback)
	require.Len(t, result.Predictions, 2)
	assert.Equal(t, "Late Blight", result.Predictions[0].Name)
	assert.Equal(t, 0.72, result.Predictions[0].Confidence)
	require.NotNil(t, result.Predictions[0].DiseaseID)
	assert.Equal(t, "d-17", *result.Predictions[0].DiseaseID)
	assert.Nil(t, result.Predictions[1].DiseaseID)
}

func TestClassifyServerErrorFallsBack(t *testing.T) {
	c := newTestClient(testAPIURL)
	defer httpmock.DeactivateAndReset()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad_request", http.StatusBadRequest},
		{"internal_server_error", http.StatusInternalServerError},
		{"service_unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder(http.MethodPost, testAPIURL,
				httpmock.NewStringResponder(tt.statusCode, `{"detail": "boom"}`))

			result, usedFallback := c.Classify(context.Background(), "https://bucket/leaf.jpg")
			assertMockFallback(t, result, usedFallback)
		})
	}
}

func TestClassifyNetworkErrorFallsBack(t *testing.T) {
	c := newTestClient(testAPIURL)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testAPIURL,
		httpmock.NewErrorResponder(assert.AnError))

	result, usedFallback := c.Classify(context.Background(), "https://bucket/leaf.jpg")
	assertMockFallback(t, result, usedFallback)
}

func TestClassifyInvalidJSONFallsBack(t *testing.T) {
	c := newTestClient(testAPIURL)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testAPIURL,
		httpmock.NewStringResponder(http.StatusOK, `not json`))

	result, usedFallback := c.Classify(context.Background(), "https://bucket/leaf.jpg")
	assertMockFallback(t, result, usedFallback)
}

func TestClassifyUnconfiguredUsesMock(t *testing.T) {
	c := &client{httpClient: &http.Client{}, apiURL: ""}

	result, usedFallback := c.Classify(context.Background(), "https://bucket/leaf.jpg")
	assertMockFallback(t, result, usedFallback)
}

func TestClassifyEmptyPredictionsNotTreatedAsFailure(t *testing.T) {
	c := newTestClient(testAPIURL)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testAPIURL,
		httpmock.NewStringResponder(http.StatusOK, `{"predictions": []}`))

	result, usedFallback := c.Classify(context.Background(), "https://bucket/leaf.jpg")

	// An empty but well-formed response is passed through; triage
	// rejects it explicitly.
	assert.False(t, usedFallback)
	assert.Empty(t, result.Predictions)
}

func TestClassifyFallbackIsACopy(t *testing.T) {
	c := &client{httpClient: &http.Client{}, apiURL: ""}

	first, _ := c.Classify(context.Background(), "url")
	first.Predictions[0].Confidence = 0.0

	second, _ := c.Classify(context.Background(), "url")
	assert.Equal(t, 0.85, second.Predictions[0].Confidence)
}
