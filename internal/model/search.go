package model

// SearchResult is the paginated course list for search endpoints, with
// pre-pagination filter counts the UI uses to render facet summaries.
type SearchResult struct {
	Courses []AggregatedCourse `json:"courses"`

	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PerPage     int `json:"perPage"`

	ModalityCounts map[string]int `json:"modalityCounts"`
	ShiftCounts    map[string]int `json:"shiftCounts"`
}
