package search

type SearchRequest struct {
	Query string `form:"q"`
}

type SearchResponse struct {
	Matches []string `json:"matches"`
}
