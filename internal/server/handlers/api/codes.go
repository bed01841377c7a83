package api

const (
	// Generic request/server errors
	CodeInvalidRequest = "E_INVALID_REQUEST" // malformed request body or query
	CodeRateLimited    = "E_RATE_LIMITED"    // rate limit exceeded
	CodeInternalError  = "E_INTERNAL_ERROR"  // internal server error

	// Vault file errors
	CodeInvalidPath   = "E_INVALID_PATH"   // path is empty, malformed, or escapes the vault
	CodeNotFound      = "E_NOT_FOUND"      // the file does not exist
	CodeAlreadyExists = "E_ALREADY_EXISTS" // create target already exists
	CodeEmptyInput    = "E_EMPTY_INPUT"    // empty content or delta where one is required

	// Patch errors
	CodeMalformedDelta = "E_MALFORMED_DELTA" // delta failed to parse or apply
	CodeConflict       = "E_CONFLICT"        // expected fingerprint does not match current content
)
