package vaultsdk

import (
	"context"
	"strconv"

	"github.com/imroc/req/v3"
)

const v1Journal = "/api/v1/journal"

type JournalAPI struct {
	client *req.Client
}

func newJournalAPI(client *req.Client) *JournalAPI {
	return &JournalAPI{
		client: client,
	}
}

// List returns recorded revisions, newest first. An empty path lists
// revisions across the whole vault.
func (j *JournalAPI) List(ctx context.Context, params *JournalListParams) (apiResp *JournalListResponse, err error) {
	r := j.client.R().
		SetContext(ctx).
		SetSuccessResult(&apiResp)

	if params != nil {
		if params.Path != "" {
			r.SetQueryParam("path", params.Path)
		}
		if params.Limit > 0 {
			r.SetQueryParam("limit", strconv.Itoa(params.Limit))
		}
	}

	resp, err := r.Get(v1Journal)

	if err := handleAPIError(resp, err, "journal list"); err != nil {
		return nil, err
	}

	return apiResp, nil
}
