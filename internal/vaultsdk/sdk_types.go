package vaultsdk

import (
	"fmt"
	"runtime"

	"github.com/vaultmd/vaultd/internal/version"
)

const (
	HeaderUserAgent     = "User-Agent"
	HeaderVaultdVersion = "X-Vaultd-Version"
	HeaderIfMatch       = "If-Match"
	HeaderETag          = "ETag"
)

var UserAgent = fmt.Sprintf("Vaultd/%s (%s; %s; %s)", version.Version, version.Revision, runtime.GOOS, runtime.GOARCH)

var versionHeaderValue = version.Version
