package client

import "errors"

var (
	ErrUnavailable    = errors.New("image service unavailable")
	ErrBadResponse    = errors.New("malformed response from image service")
	ErrNoAccessToken  = errors.New("token endpoint returned no access token")
	ErrNoRefreshToken = errors.New("token endpoint returned no refresh token")
)
