package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/utils"
)

type (
	AdvisorService interface {
		Chat(ctx context.Context, req domain.AdvisorChatRequest) (domain.AdvisorMessage, error)
	}

	advisorService struct {
		httpClient *http.Client
		apiURL     string
	}
)

func NewAdvisorService() AdvisorService {
	return &advisorService{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiURL:     utils.GetConfig("AI_ADVISOR_API_URL"),
	}
}

// Chat forwards the conversation to the configured advisor endpoint.
// Without an endpoint it answers with a canned agronomy plan so the
// assistant screen keeps working in demos. Unlike the prediction
// client, a reachable but failing endpoint is reported as an error.
func (s *advisorService) Chat(ctx context.Context, req domain.AdvisorChatRequest) (domain.AdvisorMessage, error) {
	if s.apiURL == "" {
		return mockReply(req.Context), nil
	}

	payload, err := json.Marshal(map[string]any{
		"messages": req.Messages,
		"context":  req.Context,
	})
	if err != nil {
		return domain.AdvisorMessage{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return domain.AdvisorMessage{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return domain.AdvisorMessage{}, domain.ErrAdvisorUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.AdvisorMessage{}, domain.ErrAdvisorUnavailable
	}

	var result struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.AdvisorMessage{}, err
	}

	if result.Reply == "" {
		result.Reply = "Sorry, I could not generate a response."
	}

	return domain.AdvisorMessage{Role: "assistant", Content: result.Reply}, nil
}

func mockReply(advisorContext domain.AdvisorContext) domain.AdvisorMessage {
	crop := advisorContext.Crop
	if crop == "" {
		crop = "your crop"
	}
	season := advisorContext.Season
	if season == "" {
		season = "upcoming season"
	}

	content := fmt.Sprintf(`Here is a quick plan for %s in the %s:
1) Variety: Choose disease-tolerant, locally recommended seeds.
2) Soil prep: Add well-decomposed compost (2-3 t/acre), maintain pH 6-7.
3) Nursery: Treat seeds with Trichoderma; maintain hygiene.
4) Nutrition: Basal NPK, then split N; add micronutrients as per soil test.
5) Protection: Monitor weekly; use neem oil early; rotate actives if disease appears.
6) Water: Early morning drip/sprinkler; avoid leaf wetness at night.
7) Harvest: Staggered picking; grade and store in shade.

Ask me specific questions about spacing, dose, or local pests.`, crop, season)

	return domain.AdvisorMessage{Role: "assistant", Content: content}
}
