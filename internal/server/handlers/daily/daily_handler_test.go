package daily

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultmd/vaultd/internal/dailynote"
	"github.com/vaultmd/vaultd/internal/server/middlewares"
	"github.com/vaultmd/vaultd/internal/vault"
)

func newTestServer(t *testing.T) (*vault.Vault, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	v, err := vault.Open(t.TempDir())
	require.NoError(t, err)

	h := New(dailynote.NewService(v))
	r := gin.New()
	r.Use(middlewares.ErrorHandler())
	r.GET("/api/v1/daily-note", h.Get)
	return v, r
}

func todayRelPath() string {
	now := time.Now()
	return fmt.Sprintf("daily/%s/%s.md", now.Format("2006"), now.Format("2006-01-02"))
}

func TestGetCreatesTodaysNote(t *testing.T) {
	v, r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/daily-note", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp DailyNoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, todayRelPath(), resp.Path)
	assert.Empty(t, resp.Content)
	assert.FileExists(t, filepath.Join(v.Root(), filepath.FromSlash(resp.Path)))
}

func TestGetReturnsExistingNote(t *testing.T) {
	v, r := newTestServer(t)

	abs := filepath.Join(v.Root(), filepath.FromSlash(todayRelPath()))
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte("# agenda\n"), 0o644))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/daily-note", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp DailyNoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "# agenda\n", resp.Content)
}
