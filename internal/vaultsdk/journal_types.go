package vaultsdk

// JournalListParams filters the revision listing.
type JournalListParams struct {
	Path  string
	Limit int
}

// Revision is one recorded mutation of a vault file.
type Revision struct {
	ID          string `json:"id"`
	Path        string `json:"path"`
	Op          string `json:"op"`
	Fingerprint string `json:"fingerprint"`
	Size        int64  `json:"size"`
	CreatedAt   string `json:"createdAt"`
}

// JournalListResponse lists revisions, newest first.
type JournalListResponse struct {
	Revisions []*Revision `json:"revisions"`
}
