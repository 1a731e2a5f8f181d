package product

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context, params domain.ListProductsQuery) ([]domain.ProductResponse, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) GetProducts(ctx context.Context, params domain.ListProductsQuery) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx, params.Query, params.Category, params.Disease)
	if err != nil {
		return nil, err
	}

	var response []domain.ProductResponse
	for _, item := range products {
		response = append(response, toProductResponse(item))
	}

	return response, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func toProductResponse(product *entities.Product) domain.ProductResponse {
	var targetDiseases []string
	if product.TargetDiseases != "" {
		if err := json.Unmarshal([]byte(product.TargetDiseases), &targetDiseases); err != nil {
			log.Printf("failed to decode target diseases for product %s: %v", product.ID, err)
		}
	}

	return domain.ProductResponse{
		ID:             product.ID.String(),
		Name:           product.Name,
		Category:       product.Category,
		TargetDiseases: targetDiseases,
		Description:    product.Description,
		Price:          product.Price,
		ImageURL:       product.ImageURL,
		CreatedAt:      product.CreatedAt,
	}
}
