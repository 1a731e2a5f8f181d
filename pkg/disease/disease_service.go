package disease

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/kiranchaudhary18/crop-disease-identifier/domain"
	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
)

type (
	DiseaseService interface {
		SearchSolutions(ctx context.Context, query string) ([]domain.DiseaseSolutionResponse, error)
	}

	diseaseService struct {
		diseaseRepository DiseaseRepository
	}
)

func NewDiseaseService(diseaseRepository DiseaseRepository) DiseaseService {
	return &diseaseService{diseaseRepository: diseaseRepository}
}

func (s *diseaseService) SearchSolutions(ctx context.Context, query string) ([]domain.DiseaseSolutionResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.DiseaseSolutionResponse{}, nil
	}

	solutions, err := s.diseaseRepository.SearchSolutions(ctx, query)
	if err != nil {
		return nil, err
	}

	var response []domain.DiseaseSolutionResponse
	for _, item := range solutions {
		response = append(response, toSolutionResponse(item))
	}

	return response, nil
}

func toSolutionResponse(solution *entities.DiseaseSolution) domain.DiseaseSolutionResponse {
	return domain.DiseaseSolutionResponse{
		ID:          solution.ID.String(),
		Name:        solution.Name,
		CommonNames: decodeList(solution.ID.String(), "common_names", solution.CommonNames),
		Description: solution.Description,
		Solutions:   decodeList(solution.ID.String(), "solutions", solution.Solutions),
	}
}

func decodeList(id, field, encoded string) []string {
	if encoded == "" {
		return nil
	}

	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		log.Printf("failed to decode %s for disease solution %s: %v", field, id, err)
		return nil
	}
	return values
}
