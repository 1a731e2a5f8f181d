package disease

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kiranchaudhary18/crop-disease-identifier/entities"
)

type stubDiseaseRepository struct {
	solutions []*entities.DiseaseSolution
	queries   []string
	err       error
}

func (r *stubDiseaseRepository) SearchSolutions(ctx context.Context, query string) ([]*entities.DiseaseSolution, error) {
	r.queries = append(r.queries, query)
	if r.err != nil {
		return nil, r.err
	}
	return r.solutions, nil
}

func TestSearchSolutionsDecodesJSONColumns(t *testing.T) {
	repo := &stubDiseaseRepository{solutions: []*entities.DiseaseSolution{
		{
			ID:          uuid.New(),
			Name:        "Early Blight",
			CommonNames: `["target spot","alternaria blight"]`,
			Description: "Dark concentric lesions on lower leaves.",
			Solutions:   `["Remove affected leaves","Apply copper fungicide"]`,
		},
	}}
	svc := NewDiseaseService(repo)

	res, err := svc.SearchSolutions(context.Background(), "blight")

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Early Blight", res[0].Name)
	assert.Equal(t, []string{"target spot", "alternaria blight"}, res[0].CommonNames)
	assert.Equal(t, []string{"Remove affected leaves", "Apply copper fungicide"}, res[0].Solutions)
}

func TestSearchSolutionsTrimsQuery(t *testing.T) {
	repo := &stubDiseaseRepository{}
	svc := NewDiseaseService(repo)

	_, err := svc.SearchSolutions(context.Background(), "  leaf spot  ")

	assert.NoError(t, err)
	assert.Equal(t, []string{"leaf spot"}, repo.queries)
}

func TestSearchSolutionsBlankQuerySkipsLookup(t *testing.T) {
	repo := &stubDiseaseRepository{}
	svc := NewDiseaseService(repo)

	res, err := svc.SearchSolutions(context.Background(), "   ")

	assert.NoError(t, err)
	assert.Empty(t, res)
	assert.Empty(t, repo.queries)
}

func TestSearchSolutionsMalformedListLogsAndSkips(t *testing.T) {
	repo := &stubDiseaseRepository{solutions: []*entities.DiseaseSolution{
		{
			ID:        uuid.New(),
			Name:      "Leaf Spot",
			Solutions: `not-json`,
		},
	}}
	svc := NewDiseaseService(repo)

	res, err := svc.SearchSolutions(context.Background(), "spot")

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Nil(t, res[0].Solutions)
}

func TestSearchSolutionsRepositoryError(t *testing.T) {
	repo := &stubDiseaseRepository{err: assert.AnError}
	svc := NewDiseaseService(repo)

	_, err := svc.SearchSolutions(context.Background(), "rust")

	assert.ErrorIs(t, err, assert.AnError)
}
