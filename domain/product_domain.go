package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetProducts = "products retrieved successfully"
	MessageSuccessGetProduct  = "product retrieved successfully"
	MessageFailedGetProducts  = "failed to retrieve products"
	MessageFailedGetProduct   = "failed to retrieve product"

	ErrProductNotFound = errors.New("product not found")
)

type (
	ListProductsQuery struct {
		Query    string `query:"query"`
		Category string `query:"category" validate:"omitempty,oneof=organic inorganic"`
		Disease  string `query:"disease"`
	}

	ProductResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Category       string    `json:"category"`
		TargetDiseases []string  `json:"target_diseases,omitempty"`
		Description    string    `json:"description,omitempty"`
		Price          float64   `json:"price,omitempty"`
		ImageURL       string    `json:"image_url,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
