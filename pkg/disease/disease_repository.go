package disease

import (
	"context"

	"gorm.io/gorm"

	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
)

const searchLimit = 25

type (
	DiseaseRepository interface {
		SearchSolutions(ctx context.Context, query string) ([]*entities.DiseaseSolution, error)
	}

	diseaseRepository struct {
		db *gorm.DB
	}
)

func NewDiseaseRepository(db *gorm.DB) DiseaseRepository {
	return &diseaseRepository{db: db}
}

func (r *diseaseRepository) SearchSolutions(ctx context.Context, query string) ([]*entities.DiseaseSolution, error) {
	var solutions []*entities.DiseaseSolution

	pattern := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Limit(searchLimit).
		Find(&solutions).Error; err != nil {
		return nil, err
	}

	return solutions, nil
}
