package vaultsdk

// DailyNoteResponse is today's note and its vault-relative path.
type DailyNoteResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
