package journal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultmd/vaultd/internal/db"
	"github.com/vaultmd/vaultd/internal/server/middlewares"
	journalsvc "github.com/vaultmd/vaultd/internal/server/journal"
)

func newTestServer(t *testing.T) (*journalsvc.Service, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.NewSqliteDB()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	svc, err := journalsvc.NewService(database)
	require.NoError(t, err)

	h := New(svc)
	r := gin.New()
	r.Use(middlewares.ErrorHandler())
	r.GET("/api/v1/journal", h.List)
	return svc, r
}

func TestListRevisions(t *testing.T) {
	svc, r := newTestServer(t)

	_, err := svc.Record("a.md", journalsvc.OpCreate, "f1", 10)
	require.NoError(t, err)
	_, err = svc.Record("a.md", journalsvc.OpPatch, "f2", 12)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/journal?path=a.md", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Revisions, 2)
	assert.Equal(t, "f2", resp.Revisions[0].Fingerprint)
	assert.Equal(t, journalsvc.OpPatch, resp.Revisions[0].Op)
}

func TestListEmpty(t *testing.T) {
	_, r := newTestServer(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/journal", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Revisions)
}
