package advisor

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

const testAdvisorURL = "http://advisor.test/chat"

func newTestService(apiURL string) *advisorService {
	httpClient := &http.Client{Timeout: 5 * time.Second}
	httpmock.ActivateNonDefault(httpClient)
	return &advisorService{httpClient: httpClient, apiURL: apiURL}
}

func chatRequest() domain.AdvisorChatRequest {
	return domain.AdvisorChatRequest{
		Messages: []domain.AdvisorMessage{
			{Role: "user", Content: "How do I treat early blight?"},
		},
		Context: domain.AdvisorContext{Crop: "Tomato", Season: "Kharif"},
	}
}

func TestChatSuccess(t *testing.T) {
	service := newTestService(testAdvisorURL)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testAdvisorURL,
		httpmock.NewStringResponder(http.StatusOK, `{"reply": "Apply copper-based fungicide weekly."}`))

	reply, err := service.Chat(context.Background(), chatRequest())

	require.NoError(t, err)
	assert.Equal(t, "assistant", reply.Role)
	assert.Equal(t, "Apply copper-based fungicide weekly.", reply.Content)
}

func TestChatServerErrorIsSurfaced(t *testing.T) {
	service := newTestService(testAdvisorURL)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testAdvisorURL,
		httpmock.NewStringResponder(http.StatusInternalServerError, `oops`))

	_, err := service.Chat(context.Background(), chatRequest())
	assert.ErrorIs(t, err, domain.ErrAdvisorUnavailable)
}

func TestChatNetworkErrorIsSurfaced(t *testing.T) {
	service := newTestService(testAdvisorURL)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testAdvisorURL,
		httpmock.NewErrorResponder(assert.AnError))

	_, err := service.Chat(context.Background(), chatRequest())
	assert.ErrorIs(t, err, domain.ErrAdvisorUnavailable)
}

func TestChatEmptyReplyGetsDefaultText(t *testing.T) {
	service := newTestService(testAdvisorURL)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testAdvisorURL,
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	reply, err := service.Chat(context.Background(), chatRequest())

	require.NoError(t, err)
	assert.Equal(t, "Sorry, I could not generate a response.", reply.Content)
}

func TestChatUnconfiguredReturnsCannedPlan(t *testing.T) {
	service := &advisorService{httpClient: &http.Client{}, apiURL: ""}

	reply, err := service.Chat(context.Background(), chatRequest())

	require.NoError(t, err)
	assert.Equal(t, "assistant", reply.Role)
	assert.Contains(t, reply.Content, "Tomato")
	assert.Contains(t, reply.Content, "Kharif")
}

func TestChatUnconfiguredDefaultsContext(t *testing.T) {
	service := &advisorService{httpClient: &http.Client{}, apiURL: ""}

	reply, err := service.Chat(context.Background(), domain.AdvisorChatRequest{
		Messages: []domain.AdvisorMessage{{Role: "user", Content: "hello"}},
	})

	require.NoError(t, err)
	assert.Contains(t, reply.Content, "your crop")
	assert.Contains(t, reply.Content, "upcoming season")
}
