package vaultsdk

// SearchResponse lists vault-relative paths of matching files.
type SearchResponse struct {
	Matches []string `json:"matches"`
}
