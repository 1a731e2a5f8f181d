package scan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
)

type stubRepository struct {
	created   []*entities.Scan
	createErr error
	scans     []*entities.Scan
	listErr   error
	scan      *entities.Scan
	getErr    error
}

func (s *stubRepository) CreateScan(ctx context.Context, scan *entities.Scan) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, scan)
	return nil
}

func (s *stubRepository) GetScansByUser(ctx context.Context, userID string) ([]*entities.Scan, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.scans, nil
}

func (s *stubRepository) GetScanByID(ctx context.Context, id string) (*entities.Scan, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.scan, nil
}

type stubStorage struct {
	uploadKey  string
	uploadErr  error
	deletedKey string
	resolves   int
}

func (s *stubStorage) UploadScanImage(userID string, file *multipart.FileHeader) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	return s.uploadKey, nil
}

// ResolveURL mimics presigning: object keys get a short-lived signed
// link that differs on every call, absolute URLs pass through.
func (s *stubStorage) ResolveURL(ctx context.Context, ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	s.resolves++
	return fmt.Sprintf("https://bucket.s3.region.amazonaws.com/%s?X-Amz-Signature=%d", ref, s.resolves)
}

func (s *stubStorage) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func (s *stubStorage) DeleteFile(objectKey string) error {
	s.deletedKey = objectKey
	return nil
}

type stubPredictionClient struct {
	response     domain.PredictionResponse
	usedFallback bool
}

func (s *stubPredictionClient) Classify(ctx context.Context, imageURL string) (domain.PredictionResponse, bool) {
	return s.response, s.usedFallback
}

func testUserID(t *testing.T) string {
	t.Helper()
	return uuid.New().String()
}

func TestSubmitScanWithFallbackPredictions(t *testing.T) {
	repo := &stubRepository{}
	store := &stubStorage{uploadKey: "user-1/123-abcd.jpg"}
	predictor := &stubPredictionClient{
		response:     domain.PredictionResponse{Predictions: domain.MockPredictions},
		usedFallback: true,
	}
	service := NewScanService(repo, store, predictor)

	res, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{}, testUserID(t))

	require.NoError(t, err)
	assert.Equal(t, 0.85, res.Confidence)
	assert.False(t, res.IsLowConf)
	assert.True(t, res.UsedFallback)
	assert.Equal(t, domain.DefaultRemedyTips, res.RemedyTips)

	require.Len(t, repo.created, 1)
	record := repo.created[0]
	assert.Equal(t, 0.85, record.Confidence)
	assert.False(t, record.IsLowConf)

	var stored []domain.Prediction
	require.NoError(t, json.Unmarshal([]byte(record.Predictions), &stored))
	assert.Equal(t, domain.MockPredictions, stored)
}

func TestSubmitScanPersistsObjectKeyNotSignedURL(t *testing.T) {
	repo := &stubRepository{}
	store := &stubStorage{uploadKey: "user-1/123-abcd.jpg"}
	predictor := &stubPredictionClient{
		response: domain.PredictionResponse{Predictions: domain.MockPredictions},
	}
	service := NewScanService(repo, store, predictor)
	userID := testUserID(t)

	res, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{}, userID)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	record := repo.created[0]
	assert.Equal(t, "user-1/123-abcd.jpg", record.ImageURL)
	assert.Contains(t, res.ImageURL, "X-Amz-Signature")

	// Reading the scan back signs the stored key again instead of
	// serving the submit-time link.
	repo.scan = record
	detail, err := service.GetScanDetail(context.Background(), record.ID.String(), userID)
	require.NoError(t, err)
	assert.Contains(t, detail.ImageURL, "user-1/123-abcd.jpg")
	assert.NotEqual(t, res.ImageURL, detail.ImageURL)
}

func TestSubmitScanLowConfidence(t *testing.T) {
	repo := &stubRepository{}
	store := &stubStorage{uploadKey: "user-1/123-abcd.jpg"}
	predictor := &stubPredictionClient{
		response: domain.PredictionResponse{Predictions: []domain.Prediction{
			{Name: "Early Blight", Confidence: 0.55},
			{Name: "Healthy", Confidence: 0.40},
		}},
	}
	service := NewScanService(repo, store, predictor)

	res, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{}, testUserID(t))

	require.NoError(t, err)
	assert.Equal(t, 0.55, res.Confidence)
	assert.True(t, res.IsLowConf)
	assert.False(t, res.UsedFallback)

	require.Len(t, repo.created, 1)
	assert.True(t, repo.created[0].IsLowConf)
}

func TestSubmitScanInvalidUserID(t *testing.T) {
	service := NewScanService(&stubRepository{}, &stubStorage{}, &stubPredictionClient{})

	_, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestSubmitScanUploadFailure(t *testing.T) {
	repo := &stubRepository{}
	store := &stubStorage{uploadErr: errors.New("bucket unavailable")}
	service := NewScanService(repo, store, &stubPredictionClient{})

	_, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{}, testUserID(t))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Empty(t, repo.created)
}

func TestSubmitScanEmptyPredictions(t *testing.T) {
	repo := &stubRepository{}
	store := &stubStorage{uploadKey: "user-1/123-abcd.jpg"}
	predictor := &stubPredictionClient{response: domain.PredictionResponse{}}
	service := NewScanService(repo, store, predictor)

	_, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{}, testUserID(t))

	assert.ErrorIs(t, err, domain.ErrEmptyPredictions)
	assert.Empty(t, repo.created)
	assert.Equal(t, "user-1/123-abcd.jpg", store.deletedKey)
}

func TestSubmitScanPersistFailureRollsBackUpload(t *testing.T) {
	repo := &stubRepository{createErr: errors.New("connection refused")}
	store := &stubStorage{uploadKey: "user-1/123-abcd.jpg"}
	predictor := &stubPredictionClient{
		response: domain.PredictionResponse{Predictions: domain.MockPredictions},
	}
	service := NewScanService(repo, store, predictor)

	_, err := service.SubmitScan(context.Background(), domain.SubmitScanRequest{}, testUserID(t))

	assert.ErrorIs(t, err, domain.ErrPersistScan)
	assert.Equal(t, "user-1/123-abcd.jpg", store.deletedKey)
}

func TestGetScanDetail(t *testing.T) {
	userID := uuid.New()
	predictions, _ := json.Marshal(domain.MockPredictions)
	record := &entities.Scan{
		ID:          uuid.New(),
		UserID:      userID,
		ImageURL:    "https://bucket.s3.region.amazonaws.com/leaf.jpg",
		Predictions: string(predictions),
		Confidence:  0.85,
	}
	repo := &stubRepository{scan: record}
	service := NewScanService(repo, &stubStorage{}, &stubPredictionClient{})

	res, err := service.GetScanDetail(context.Background(), record.ID.String(), userID.String())

	require.NoError(t, err)
	assert.Equal(t, record.ID.String(), res.ID)
	assert.Equal(t, record.ImageURL, res.ImageURL)
	assert.Equal(t, domain.MockPredictions, res.Predictions)
	assert.Equal(t, domain.DefaultRemedyTips, res.RemedyTips)
}

func TestGetScanDetailNotFound(t *testing.T) {
	repo := &stubRepository{getErr: gorm.ErrRecordNotFound}
	service := NewScanService(repo, &stubStorage{}, &stubPredictionClient{})

	_, err := service.GetScanDetail(context.Background(), uuid.New().String(), testUserID(t))
	assert.ErrorIs(t, err, domain.ErrScanNotFound)
}

func TestGetScanDetailWrongOwner(t *testing.T) {
	record := &entities.Scan{ID: uuid.New(), UserID: uuid.New(), Predictions: "[]"}
	repo := &stubRepository{scan: record}
	service := NewScanService(repo, &stubStorage{}, &stubPredictionClient{})

	_, err := service.GetScanDetail(context.Background(), record.ID.String(), testUserID(t))
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}
