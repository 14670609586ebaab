package common

import "errors"

// Auth lifecycle errors. Callers should use errors.Is to match these.
var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAuthExchangeFailed = errors.New("authorization code exchange failed")
	ErrTokenRefreshFailed = errors.New("access token refresh failed")
)
