package vaultsdk

import (
	"context"
	"net/url"

	"github.com/imroc/req/v3"
)

const v1Files = "/api/v1/files"

type FilesAPI struct {
	client *req.Client
}

func newFilesAPI(client *req.Client) *FilesAPI {
	return &FilesAPI{
		client: client,
	}
}

// Get reads a file. The content arrives as plain text, the fingerprint
// in the ETag header.
func (f *FilesAPI) Get(ctx context.Context, path string) (*FileContent, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(fileURL(path))

	if err := handleAPIError(resp, err, "file get"); err != nil {
		return nil, err
	}

	return &FileContent{
		Path:        path,
		Content:     resp.String(),
		Fingerprint: resp.Header.Get(HeaderETag),
	}, nil
}

// Create creates a new file. The server rejects paths that already exist.
func (f *FilesAPI) Create(ctx context.Context, params *CreateFileParams) (apiResp *MutationResponse, err error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&apiResp).
		Post(v1Files)

	if err := handleAPIError(resp, err, "file create"); err != nil {
		return nil, err
	}

	return apiResp, nil
}

// Replace overwrites an existing file with new content.
func (f *FilesAPI) Replace(ctx context.Context, params *ReplaceFileParams) (apiResp *MutationResponse, err error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(params).
		SetSuccessResult(&apiResp).
		Put(v1Files)

	if err := handleAPIError(resp, err, "file replace"); err != nil {
		return nil, err
	}

	return apiResp, nil
}

// Patch applies a delta to an existing file. Retries are disabled: a
// replayed patch is not idempotent.
func (f *FilesAPI) Patch(ctx context.Context, params *PatchFileParams) (apiResp *MutationResponse, err error) {
	if params.Diff == "" && params.Content == "" {
		return nil, ErrEmptyDelta
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetRetryCount(0).
		SetBody(params).
		SetSuccessResult(&apiResp).
		Patch(v1Files)

	if err := handleAPIError(resp, err, "file patch"); err != nil {
		return nil, err
	}

	return apiResp, nil
}

// fileURL escapes a vault-relative path into the files route, keeping
// path separators intact.
func fileURL(relPath string) string {
	u := url.URL{Path: v1Files + "/" + relPath}
	return u.EscapedPath()
}
