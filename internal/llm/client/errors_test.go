package client

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyProviderError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"http 401", fmt.Errorf("request failed with status 401"), ErrAPIKeyRejected},
		{"http 403", fmt.Errorf("403 PERMISSION_DENIED"), ErrAPIKeyRejected},
		{"bad key message", fmt.Errorf("API key not valid. Please pass a valid API key."), ErrAPIKeyRejected},
		{"rate limited", fmt.Errorf("429 too many requests, rate limit reached"), ErrQuotaExceeded},
		{"quota message", fmt.Errorf("RESOURCE_EXHAUSTED: quota exceeded for this project"), ErrQuotaExceeded},
		{"transport", fmt.Errorf("dial tcp: connection refused"), ErrProviderCall},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyProviderError(tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("classify(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassifyProviderError_Nil(t *testing.T) {
	if got := classifyProviderError(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestIsAuthError(t *testing.T) {
	if !IsAuthError(fmt.Errorf("wrapped: %w", ErrAPIKeyMissing)) {
		t.Fatalf("missing key should be an auth error")
	}
	if !IsAuthError(fmt.Errorf("wrapped: %w", ErrAPIKeyRejected)) {
		t.Fatalf("rejected key should be an auth error")
	}
	if IsAuthError(ErrQuotaExceeded) {
		t.Fatalf("quota should not be an auth error")
	}
}
