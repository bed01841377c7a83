package vaultsdk

import (
	"context"

	"github.com/imroc/req/v3"
)

const (
	v1SearchContent  = "/api/v1/search/content"
	v1SearchFilename = "/api/v1/search/filename"
)

type SearchAPI struct {
	client *req.Client
}

func newSearchAPI(client *req.Client) *SearchAPI {
	return &SearchAPI{
		client: client,
	}
}

// Content searches file contents for a substring.
func (s *SearchAPI) Content(ctx context.Context, query string) (*SearchResponse, error) {
	return s.search(ctx, v1SearchContent, query, "search content")
}

// Filename searches file names for a substring.
func (s *SearchAPI) Filename(ctx context.Context, query string) (*SearchResponse, error) {
	return s.search(ctx, v1SearchFilename, query, "search filename")
}

func (s *SearchAPI) search(ctx context.Context, route, query, operation string) (apiResp *SearchResponse, err error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetSuccessResult(&apiResp).
		Get(route)

	if err := handleAPIError(resp, err, operation); err != nil {
		return nil, err
	}

	return apiResp, nil
}
