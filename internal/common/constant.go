// Package common contains shared constants and sentinel errors used across
// the imgurshot components.
package common

import "time"

// Credential store keys. The access token is deliberately absent: it is
// session-only and never persisted.
const (
	KeyUsername     = "ImgurUsername"
	KeyRefreshToken = "RefreshToken"
)

// AccessTokenTTL is the fixed lifetime of an access token, counted from the
// moment the token is received. The API reports its own expiry but the
// original client always assumed one hour, and so do we.
const AccessTokenTTL = time.Hour

// DefaultUploadDescription is sent when a request carries no description.
const DefaultUploadDescription = "Uploaded by mac2imgur! (https://mileswd.com/mac2imgur)"
