package journal

import (
	journalsvc "github.com/vaultmd/vaultd/internal/server/journal"
)

type ListRequest struct {
	Path  string `form:"path"`
	Limit int    `form:"limit"`
}

type ListResponse struct {
	Revisions []*journalsvc.Entry `json:"revisions"`
}
