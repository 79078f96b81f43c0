package common

type Pagination struct {
	Total int64 `json:"total"`
}

// VerificationCounts summarize a history result set for list screens.
type VerificationCounts struct {
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Denied   int64 `json:"denied"`
}

type SearchResponse struct {
	Data       interface{}        `json:"data"`
	Pagination Pagination         `json:"pagination"`
	Counts     VerificationCounts `json:"counts"`
}

func NewSearchResponse(data interface{}, total int64, counts VerificationCounts) *SearchResponse {
	return &SearchResponse{
		Data:       data,
		Pagination: Pagination{Total: total},
		Counts:     counts,
	}
}
