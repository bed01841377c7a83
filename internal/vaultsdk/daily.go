package vaultsdk

import (
	"context"

	"github.com/imroc/req/v3"
)

const v1DailyNote = "/api/v1/daily-note"

type DailyAPI struct {
	client *req.Client
}

func newDailyAPI(client *req.Client) *DailyAPI {
	return &DailyAPI{
		client: client,
	}
}

// Get returns today's daily note, creating it on the server if needed.
func (d *DailyAPI) Get(ctx context.Context) (apiResp *DailyNoteResponse, err error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetSuccessResult(&apiResp).
		Get(v1DailyNote)

	if err := handleAPIError(resp, err, "daily note"); err != nil {
		return nil, err
	}

	return apiResp, nil
}
