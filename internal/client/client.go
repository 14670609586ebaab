package client

import (
	"context"
)

// TokenGrant is the result of a token-endpoint call. RefreshToken and
// AccountUsername are only populated by the authorization-code exchange;
// a refresh grant carries just the new access token.
type TokenGrant struct {
	AccessToken     string
	RefreshToken    string
	AccountUsername string
}

// Client describes the remote image-service operations used by the uploader.
type Client interface {
	// ExchangeCode trades a one-time authorization code (PIN) for an access
	// token, refresh token and account username.
	ExchangeCode(ctx context.Context, code string) (*TokenGrant, error)

	// RefreshAccessToken obtains a fresh access token from a persisted
	// refresh token.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenGrant, error)

	// UploadImage posts one image. accessToken may be empty, in which case
	// the upload is anonymous (Client-ID authorization). On success the
	// returned link always uses the https scheme.
	UploadImage(ctx context.Context, image []byte, sourcePath string, description string, accessToken string) (string, error)
}

// AllowedFileTypes lists the image extensions the service accepts. The list
// is advisory; enforcement is up to the caller.
var AllowedFileTypes = []string{"jpg", "jpeg", "gif", "png", "apng", "tiff", "bmp", "pdf", "xcf"}

// FileTypeAllowed reports whether ext (without the leading dot, any case
// handled by the caller) is in AllowedFileTypes.
func FileTypeAllowed(ext string) bool {
	for _, t := range AllowedFileTypes {
		if t == ext {
			return true
		}
	}
	return false
}
