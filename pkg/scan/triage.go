package scan

import (
	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
)

// Triage derives the record's confidence from the top prediction and
// flags it when it falls below the threshold. Exactly at the threshold
// counts as confident. An empty list is an explicit error rather than
// an index panic.
func Triage(predictions []domain.Prediction) (float64, bool, error) {
	if len(predictions) == 0 {
		return 0, false, domain.ErrEmptyPredictions
	}

	confidence := predictions[0].Confidence
	return confidence, confidence < domain.ConfidenceThreshold, nil
}
