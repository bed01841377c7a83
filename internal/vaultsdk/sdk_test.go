package vaultsdk_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultmd/vaultd/internal/server"
	"github.com/vaultmd/vaultd/internal/vault"
	"github.com/vaultmd/vaultd/internal/vaultsdk"
)

// newTestSDK starts the real route stack on an httptest server and
// returns a client pointed at it.
func newTestSDK(t *testing.T) *vaultsdk.VaultSDK {
	t.Helper()

	config := &server.Config{
		HTTP:  server.HTTPConfig{Addr: server.DefaultAddr},
		Vault: server.VaultConfig{Location: t.TempDir()},
	}
	require.NoError(t, config.Validate())

	svc, err := server.NewServices(config)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	handler, err := server.SetupRoutes(svc, config)
	require.NoError(t, err)

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	sdk, err := vaultsdk.New(ts.URL)
	require.NoError(t, err)
	t.Cleanup(sdk.Close)
	return sdk
}

func TestNewRequiresServerURL(t *testing.T) {
	_, err := vaultsdk.New("")
	assert.ErrorIs(t, err, vaultsdk.ErrNoServerURL)
}

func TestFilesRoundTrip(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	created, err := sdk.Files.Create(ctx, &vaultsdk.CreateFileParams{
		Path:    "notes/round trip.md",
		Content: "line1\nline2\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", created.Message)
	assert.Equal(t, vault.Fingerprint([]byte("line1\nline2\n")), created.Fingerprint)

	got, err := sdk.Files.Get(ctx, "notes/round trip.md")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", got.Content)
	assert.Equal(t, created.Fingerprint, got.Fingerprint)

	patched, err := sdk.Files.Patch(ctx, &vaultsdk.PatchFileParams{
		Path: "notes/round trip.md",
		Diff: "  line1\n  line2\n+ line3 added\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "patched", patched.Message)

	got, err = sdk.Files.Get(ctx, "notes/round trip.md")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\nline3 added\n", got.Content)
	assert.Equal(t, patched.Fingerprint, got.Fingerprint)

	replaced, err := sdk.Files.Replace(ctx, &vaultsdk.ReplaceFileParams{
		Path:    "notes/round trip.md",
		Content: "rewritten\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "replaced", replaced.Message)
}

func TestGetNotFound(t *testing.T) {
	sdk := newTestSDK(t)

	_, err := sdk.Files.Get(context.Background(), "missing.md")
	require.Error(t, err)

	var apiErr *vaultsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, vaultsdk.CodeNotFound, apiErr.Code)
}

func TestPatchConflict(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	_, err := sdk.Files.Create(ctx, &vaultsdk.CreateFileParams{
		Path:    "guarded.md",
		Content: "original\n",
	})
	require.NoError(t, err)

	_, err = sdk.Files.Patch(ctx, &vaultsdk.PatchFileParams{
		Path:                "guarded.md",
		Content:             "new content\n",
		ExpectedFingerprint: vault.Fingerprint([]byte("someone else's content\n")),
	})
	require.Error(t, err)
	assert.True(t, vaultsdk.IsConflict(err))

	// file untouched
	got, err := sdk.Files.Get(ctx, "guarded.md")
	require.NoError(t, err)
	assert.Equal(t, "original\n", got.Content)
}

func TestPatchRequiresDelta(t *testing.T) {
	sdk := newTestSDK(t)

	_, err := sdk.Files.Patch(context.Background(), &vaultsdk.PatchFileParams{Path: "x.md"})
	assert.ErrorIs(t, err, vaultsdk.ErrEmptyDelta)
}

func TestSearch(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	_, err := sdk.Files.Create(ctx, &vaultsdk.CreateFileParams{
		Path:    "findable.md",
		Content: "needle content\n",
	})
	require.NoError(t, err)

	resp, err := sdk.Search.Content(ctx, "needle")
	require.NoError(t, err)
	assert.Equal(t, []string{"findable.md"}, resp.Matches)

	resp, err = sdk.Search.Filename(ctx, "findable")
	require.NoError(t, err)
	assert.Equal(t, []string{"findable.md"}, resp.Matches)

	_, err = sdk.Search.Content(ctx, "")
	assert.ErrorIs(t, err, vaultsdk.ErrEmptyQuery)
}

func TestDailyNote(t *testing.T) {
	sdk := newTestSDK(t)

	resp, err := sdk.Daily.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Path, "daily/"), "got %q", resp.Path)
}

func TestJournalList(t *testing.T) {
	sdk := newTestSDK(t)
	ctx := context.Background()

	_, err := sdk.Files.Create(ctx, &vaultsdk.CreateFileParams{
		Path:    "tracked.md",
		Content: "v1\n",
	})
	require.NoError(t, err)

	_, err = sdk.Files.Replace(ctx, &vaultsdk.ReplaceFileParams{
		Path:    "tracked.md",
		Content: "v2\n",
	})
	require.NoError(t, err)

	resp, err := sdk.Journal.List(ctx, &vaultsdk.JournalListParams{Path: "tracked.md"})
	require.NoError(t, err)
	require.Len(t, resp.Revisions, 2)
	assert.Equal(t, "replace", resp.Revisions[0].Op)
	assert.Equal(t, "create", resp.Revisions[1].Op)

	// APIError round trip for bad input; the metadata dir is reserved
	_, err = sdk.Files.Get(ctx, ".vaultd/journal.db")
	var apiErr *vaultsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, vaultsdk.CodeInvalidPath, apiErr.Code)
}
