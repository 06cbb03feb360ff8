package apperrors

import "errors"

// Upstream errors represent failures talking to the market data vendor.
// These are recovered inside the stock service (stale cache or synthetic
// fallback) and never surface to HTTP callers.
var (
	// ErrUpstreamUnavailable indicates the upstream request failed outright:
	// transport error, non-2xx status, or no API key configured.
	ErrUpstreamUnavailable = errors.New("upstream market data unavailable")

	// ErrUpstreamTimeout indicates the upstream call exceeded its deadline.
	ErrUpstreamTimeout = errors.New("upstream market data request timed out")

	// ErrMalformedPayload indicates the upstream response could not be parsed
	// into the expected shape.
	ErrMalformedPayload = errors.New("malformed upstream payload")

	// ErrRateLimited indicates the vendor rejected the call for quota reasons,
	// or the local rate governor refused to issue one.
	ErrRateLimited = errors.New("market data rate limit reached")
)

// Validation errors represent bad caller input. ErrQueryTooShort is the one
// error class this subsystem surfaces to HTTP callers as a 400.
var (
	// ErrQueryTooShort indicates a search query shorter than the minimum length.
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")

	// ErrInvalidSymbol indicates a ticker symbol that is empty or contains
	// characters outside the allowed set.
	ErrInvalidSymbol = errors.New("invalid ticker symbol")

	// ErrInvalidTimeframe indicates a chart timeframe outside the supported set.
	ErrInvalidTimeframe = errors.New("invalid chart timeframe")

	// ErrEmptyCredential indicates an attempt to store a blank API key.
	ErrEmptyCredential = errors.New("API key cannot be empty")
)

// Lookup and storage errors.
var (
	// ErrSymbolNotFound indicates a symbol absent from both the local catalog
	// and the upstream vendor. Handled by seeding synthetic data from a
	// placeholder record rather than failing.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrSnapshotNotFound indicates no persisted snapshot exists for a symbol.
	ErrSnapshotNotFound = errors.New("quote snapshot not found")

	// ErrSettingNotFound indicates a settings key has never been stored.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrEncryptionUnavailable indicates no fernet secret is configured, so
	// credentials cannot be stored at rest.
	ErrEncryptionUnavailable = errors.New("credential encryption not configured")
)
