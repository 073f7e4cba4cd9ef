package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The mobile client only branches on 400 vs 401/403/404/500, so business
// rejections that other APIs would report as 409 are surfaced as 400.
func TestSentinelHTTPCodes(t *testing.T) {
	testCases := []struct {
		name     string
		err      *BaseError
		wantHTTP int
		wantCode string
	}{
		{
			name:     "duplicate registration is a bad request",
			err:      ErrUserAlreadyExists,
			wantHTTP: http.StatusBadRequest,
			wantCode: "USER_ALREADY_EXISTS",
		},
		{
			name:     "inactive service is a bad request",
			err:      ErrServiceUnavailable,
			wantHTTP: http.StatusBadRequest,
			wantCode: "SERVICE_UNAVAILABLE",
		},
		{
			name:     "missing user is not found",
			err:      ErrUserNotFound,
			wantHTTP: http.StatusNotFound,
			wantCode: "USER_NOT_FOUND",
		},
		{
			name:     "validation failure is a bad request",
			err:      ErrValidationFailed,
			wantHTTP: http.StatusBadRequest,
			wantCode: "VALIDATION_FAILED",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantHTTP, tc.err.HTTPCode())
			assert.Equal(t, tc.wantCode, tc.err.ErrorCode())
		})
	}
}
