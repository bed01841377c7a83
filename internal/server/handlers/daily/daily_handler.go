// Package daily exposes the get-or-create endpoint for today's note.
package daily

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaultmd/vaultd/internal/dailynote"
	"github.com/vaultmd/vaultd/internal/server/handlers/api"
)

type DailyHandler struct {
	notes *dailynote.Service
}

func New(notes *dailynote.Service) *DailyHandler {
	return &DailyHandler{notes: notes}
}

// Get returns today's note, creating it on first access. The note
// location and template come from the vault settings, so failures here
// are configuration problems, not client errors.
func (h *DailyHandler) Get(ctx *gin.Context) {
	note, err := h.notes.Today()
	if err != nil {
		api.AbortWithError(ctx, api.Internal(err))
		return
	}

	ctx.PureJSON(http.StatusOK, &DailyNoteResponse{
		Path:    note.Path,
		Content: note.Content,
	})
}
