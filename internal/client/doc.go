// Package client talks to the imgur REST API: the OAuth-style token endpoint
// (authorization-code exchange and refresh-token grants) and the multipart
// image upload endpoint. It also initializes the local SQLite database the
// rest of the application stores credentials and history in.
//
// The package exposes a Client interface so services can be tested against a
// fake; HTTPClient is the production implementation.
package client
