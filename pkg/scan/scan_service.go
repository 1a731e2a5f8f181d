package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
	"github.com/kiranchaudhary18/crop-disease-identifier/internal/utils/storage"
	"github.com/kiranchaudhary18/crop-disease-identifier/pkg/prediction"
)

type (
	ScanService interface {
		SubmitScan(ctx context.Context, req domain.SubmitScanRequest, userID string) (domain.SubmitScanResponse, error)
		GetScanHistory(ctx context.Context, userID string) ([]domain.ScanResponse, error)
		GetScanDetail(ctx context.Context, id string, userID string) (domain.ScanResponse, error)
	}

	scanService struct {
		scanRepository   ScanRepository
		s3               storage.AwsS3
		predictionClient prediction.Client
	}
)

func NewScanService(scanRepository ScanRepository, s3 storage.AwsS3, predictionClient prediction.Client) ScanService {
	return &scanService{
		scanRepository:   scanRepository,
		s3:               s3,
		predictionClient: predictionClient,
	}
}

// SubmitScan runs the full pipeline for one photographed leaf:
// upload, URL resolution, classification, triage, persistence.
// The steps are strictly sequential; a failed upload or save aborts
// the scan, while a failed prediction silently falls back to mock data.
func (s *scanService) SubmitScan(ctx context.Context, req domain.SubmitScanRequest, userID string) (domain.SubmitScanResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SubmitScanResponse{}, domain.ErrParseUUID
	}

	objectKey, err := s.s3.UploadScanImage(userID, req.Image)
	if err != nil {
		return domain.SubmitScanResponse{}, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	imageURL := s.s3.ResolveURL(ctx, objectKey)

	predictionResult, usedFallback := s.predictionClient.Classify(ctx, imageURL)

	confidence, isLowConf, err := Triage(predictionResult.Predictions)
	if err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.SubmitScanResponse{}, err
	}

	predictionsJSON, err := json.Marshal(predictionResult.Predictions)
	if err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.SubmitScanResponse{}, err
	}

	// Persist the stable object key. Signed links expire, so the
	// record keeps the key and read paths resolve it to a fresh URL.
	record := &entities.Scan{
		ID:          uuid.New(),
		UserID:      userUUID,
		ImageURL:    objectKey,
		Predictions: string(predictionsJSON),
		Confidence:  confidence,
		IsLowConf:   isLowConf,
		Notes:       req.Notes,
	}

	if err := s.scanRepository.CreateScan(ctx, record); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		log.Printf("failed to save scan record: %v", err)
		return domain.SubmitScanResponse{}, domain.ErrPersistScan
	}

	return domain.SubmitScanResponse{
		ScanID:       record.ID.String(),
		ImageURL:     imageURL,
		Predictions:  predictionResult.Predictions,
		Confidence:   confidence,
		IsLowConf:    isLowConf,
		UsedFallback: usedFallback,
		RemedyTips:   domain.DefaultRemedyTips,
	}, nil
}

func (s *scanService) GetScanHistory(ctx context.Context, userID string) ([]domain.ScanResponse, error) {
	scans, err := s.scanRepository.GetScansByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.ScanResponse
	for _, record := range scans {
		response = append(response, s.toScanResponse(ctx, record, false))
	}

	return response, nil
}

func (s *scanService) GetScanDetail(ctx context.Context, id string, userID string) (domain.ScanResponse, error) {
	record, err := s.scanRepository.GetScanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ScanResponse{}, domain.ErrScanNotFound
		}
		return domain.ScanResponse{}, err
	}

	if record.UserID.String() != userID {
		return domain.ScanResponse{}, domain.ErrUnauthorizedAccess
	}

	return s.toScanResponse(ctx, record, true), nil
}

func (s *scanService) toScanResponse(ctx context.Context, record *entities.Scan, withRemedies bool) domain.ScanResponse {
	var predictions []domain.Prediction
	if err := json.Unmarshal([]byte(record.Predictions), &predictions); err != nil {
		log.Printf("failed to decode stored predictions for scan %s: %v", record.ID, err)
	}

	response := domain.ScanResponse{
		ID:          record.ID.String(),
		ImageURL:    s.s3.ResolveURL(ctx, record.ImageURL),
		Predictions: predictions,
		Confidence:  record.Confidence,
		IsLowConf:   record.IsLowConf,
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt,
	}
	if withRemedies {
		response.RemedyTips = domain.DefaultRemedyTips
	}

	return response
}
