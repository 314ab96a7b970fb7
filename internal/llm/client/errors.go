package client

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the comparison pipeline. Callers match with errors.Is
// so the UI can route authentication failures to the settings screen instead
// of a generic banner.
var (
	ErrAPIKeyMissing     = errors.New("no API key configured")
	ErrAPIKeyRejected    = errors.New("provider rejected the API key")
	ErrQuotaExceeded     = errors.New("provider quota or rate limit exceeded")
	ErrMalformedResponse = errors.New("provider response is not valid JSON")
	ErrProviderCall      = errors.New("provider call failed")
)

// classifyProviderError maps a raw provider/transport error onto one of the
// sentinels. Providers disagree on error shapes, so this falls back to
// status-code and message-substring inspection.
func classifyProviderError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401"),
		strings.Contains(msg, "403"),
		strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "permission"),
		strings.Contains(msg, "api key"),
		strings.Contains(msg, "api_key"):
		return fmt.Errorf("%w: %v", ErrAPIKeyRejected, err)
	case strings.Contains(msg, "429"),
		strings.Contains(msg, "quota"),
		strings.Contains(msg, "rate limit"),
		strings.Contains(msg, "resource_exhausted"):
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	default:
		return fmt.Errorf("%w: %v", ErrProviderCall, err)
	}
}

// IsAuthError reports whether err should send the user to key configuration.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAPIKeyMissing) || errors.Is(err, ErrAPIKeyRejected)
}
