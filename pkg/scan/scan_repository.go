package scan

import (
	"context"

	"gorm.io/gorm"

	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
)

type (
	ScanRepository interface {
		CreateScan(ctx context.Context, scan *entities.Scan) error
		GetScansByUser(ctx context.Context, userID string) ([]*entities.Scan, error)
		GetScanByID(ctx context.Context, id string) (*entities.Scan, error)
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) CreateScan(ctx context.Context, scan *entities.Scan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanRepository) GetScansByUser(ctx context.Context, userID string) ([]*entities.Scan, error) {
	var scans []*entities.Scan

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&scans).Error; err != nil {
		return nil, err
	}

	return scans, nil
}

func (r *scanRepository) GetScanByID(ctx context.Context, id string) (*entities.Scan, error) {
	var scan entities.Scan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}
