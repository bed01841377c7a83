package daily

type DailyNoteResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}
