package product

import (
	"context"

	"gorm.io/gorm"

	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
)

const listLimit = 50

type (
	ProductRepository interface {
		GetProducts(ctx context.Context, query, category, disease string) ([]*entities.Product, error)
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProducts(ctx context.Context, query, category, disease string) ([]*entities.Product, error) {
	var products []*entities.Product

	q := r.db.WithContext(ctx).Model(&entities.Product{})

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if category != "" {
		q = q.Where("category = ?", category)
	}

	if disease != "" {
		// target_diseases holds a JSON-encoded list; match the quoted entry.
		q = q.Where("target_diseases LIKE ?", "%\""+disease+"\"%")
	}

	if err := q.Order("created_at desc").Limit(listLimit).Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
