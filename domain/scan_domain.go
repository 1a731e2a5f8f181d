package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

// ConfidenceThreshold separates confident results from ones the result
// screen flags as unreliable. Frozen into the record at creation time.
const ConfidenceThreshold = 0.6

var (
	MessageSuccessSubmitScan     = "scan processed successfully"
	MessageSuccessGetScanHistory = "scan history retrieved successfully"
	MessageSuccessGetScanDetail  = "scan retrieved successfully"

	MessageFailedSubmitScan     = "failed to process scan"
	MessageFailedGetScanHistory = "failed to retrieve scan history"
	MessageFailedGetScanDetail  = "failed to retrieve scan"

	ErrUploadFailed     = errors.New("failed to upload scan image")
	ErrEmptyPredictions = errors.New("prediction response contained no predictions")
	ErrPersistScan      = errors.New("failed to save scan record")
	ErrScanNotFound     = errors.New("scan not found")
)

// MockPredictions is the fixed fallback result returned when the
// prediction endpoint is unreachable or not configured.
var MockPredictions = []Prediction{
	{DiseaseID: nil, Name: "Healthy", Confidence: 0.85},
	{DiseaseID: nil, Name: "Early Blight", Confidence: 0.10},
	{DiseaseID: nil, Name: "Leaf Spot", Confidence: 0.05},
}

// DefaultRemedyTips is the canned remedy text shown alongside every result.
var DefaultRemedyTips = []string{
	"Remove and destroy infected leaves",
	"Apply appropriate fungicide or treatment",
	"Improve air circulation around plants",
	"Avoid overhead watering",
	"Consult local agricultural expert if severe",
}

type (
	Prediction struct {
		DiseaseID  *string `json:"disease_id"`
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	}

	PredictionResponse struct {
		Predictions []Prediction `json:"predictions"`
	}

	SubmitScanRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
		Notes string                `json:"notes" form:"notes" validate:"omitempty,max=500"`
	}

	SubmitScanResponse struct {
		ScanID       string       `json:"scan_id"`
		ImageURL     string       `json:"image_url"`
		Predictions  []Prediction `json:"predictions"`
		Confidence   float64      `json:"confidence"`
		IsLowConf    bool         `json:"is_low_conf"`
		UsedFallback bool         `json:"used_fallback"`
		RemedyTips   []string     `json:"remedy_tips"`
	}

	ScanResponse struct {
		ID          string       `json:"id"`
		ImageURL    string       `json:"image_url"`
		Predictions []Prediction `json:"predictions"`
		Confidence  float64      `json:"confidence"`
		IsLowConf   bool         `json:"is_low_conf"`
		Notes       string       `json:"notes,omitempty"`
		RemedyTips  []string     `json:"remedy_tips,omitempty"`
		CreatedAt   time.Time    `json:"created_at"`
	}
)
