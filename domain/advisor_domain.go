package domain

import (
	"errors"
)

var (
	MessageSuccessAdvisorChat = "advisor reply generated successfully"
	MessageFailedAdvisorChat  = "failed to get advisor reply"

	ErrAdvisorUnavailable = errors.New("advisor service unavailable")
)

type (
	AdvisorMessage struct {
		Role    string `json:"role" validate:"required,oneof=user assistant system"`
		Content string `json:"content" validate:"required"`
	}

	AdvisorContext struct {
		Location string `json:"location,omitempty"`
		Crop     string `json:"crop,omitempty"`
		Season   string `json:"season,omitempty"`
	}

	AdvisorChatRequest struct {
		Messages []AdvisorMessage `json:"messages" validate:"required,min=1,dive"`
		Context  AdvisorContext   `json:"context"`
	}
)
