package domain

var (
	MessageSuccessSearchSolutions = "disease solutions retrieved successfully"
	MessageFailedSearchSolutions  = "failed to search disease solutions"
)

type DiseaseSolutionResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CommonNames []string `json:"common_names,omitempty"`
	Description string   `json:"description,omitempty"`
	Solutions   []string `json:"solutions,omitempty"`
}
