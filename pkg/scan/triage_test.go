package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
)

func TestTriageThreshold(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		wantLow    bool
	}{
		{"high_confidence", 0.85, false},
		{"exactly_at_threshold", 0.6, false},
		{"just_below_threshold", 0.59, true},
		{"low_confidence", 0.55, true},
		{"zero_confidence", 0.0, true},
		{"full_confidence", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictions := []domain.Prediction{
				{Name: "Early Blight", Confidence: tt.confidence},
				{Name: "Leaf Spot", Confidence: 0.01},
			}

			confidence, isLowConf, err := Triage(predictions)

			require.NoError(t, err)
			assert.Equal(t, tt.confidence, confidence)
			assert.Equal(t, tt.wantLow, isLowConf)
		})
	}
}

func TestTriageUsesTopPredictionOnly(t *testing.T) {
	predictions := []domain.Prediction{
		{Name: "Healthy", Confidence: 0.9},
		{Name: "Early Blight", Confidence: 0.05},
	}

	confidence, isLowConf, err := Triage(predictions)

	require.NoError(t, err)
	assert.Equal(t, 0.9, confidence)
	assert.False(t, isLowConf)
}

func TestTriageEmptyPredictions(t *testing.T) {
	_, _, err := Triage(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPredictions)

	_, _, err = Triage([]domain.Prediction{})
	assert.ErrorIs(t, err, domain.ErrEmptyPredictions)
}
