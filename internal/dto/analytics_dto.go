// FILE: internal/dto/analytics_dto.go
package dto

// Analytics DTOs

type AnalyticsSnapshot struct {
	TotalSearches   int64            `json:"total_searches"`
	ByParsingMethod map[string]int64 `json:"by_parsing_method"`
	ByProduct       map[string]int64 `json:"by_product"`
	ByUseCase       map[string]int64 `json:"by_use_case"`
	ByRegion        map[string]int64 `json:"by_region"`
	AvgConfidence   float64          `json:"avg_confidence"`
	ZeroResultCount int64            `json:"zero_result_count"`
	GeneratedAt     string           `json:"generated_at"`
}

// SearchEvent is published on the in-process bus after every search.
type SearchEvent struct {
	EventID       string  `json:"event_id"`
	Query         string  `json:"query"`
	ParsingMethod string  `json:"parsing_method"`
	Product       string  `json:"product,omitempty"`
	UseCase       string  `json:"use_case"`
	Region        string  `json:"region"`
	Confidence    float64 `json:"confidence"`
	ResultCount   int     `json:"result_count"`
	Timestamp     string  `json:"timestamp"`
}
