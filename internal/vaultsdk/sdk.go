// Package vaultsdk is the HTTP client for the vaultd API. The CLI client
// subcommands are built on it, but it is usable standalone.
package vaultsdk

import (
	"net/url"
	"time"

	"github.com/imroc/req/v3"
)

// VaultSDK is the main client for interacting with the vaultd API.
type VaultSDK struct {
	client  *req.Client
	baseURL string

	Files   *FilesAPI
	Search  *SearchAPI
	Daily   *DailyAPI
	Journal *JournalAPI
}

// New creates a new VaultSDK client against a server base URL.
func New(baseURL string) (*VaultSDK, error) {
	if baseURL == "" {
		return nil, ErrNoServerURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, ErrNoServerURL
	}

	client := req.C().
		SetBaseURL(baseURL).
		SetCommonRetryCount(3).
		SetCommonRetryFixedInterval(1*time.Second).
		SetUserAgent(UserAgent).
		SetCommonHeader(HeaderVaultdVersion, versionHeaderValue).
		SetCommonErrorResult(&APIError{}).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)

	return &VaultSDK{
		client:  client,
		baseURL: baseURL,
		Files:   newFilesAPI(client),
		Search:  newSearchAPI(client),
		Daily:   newDailyAPI(client),
		Journal: newJournalAPI(client),
	}, nil
}

// Close releases idle connections held by the client.
func (s *VaultSDK) Close() {
	s.client.GetTransport().CloseIdleConnections()
}
