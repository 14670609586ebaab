// Package models contains the data types passed between the watcher, the
// upload queue, and the local history store.
package models

import "time"

// UploadRequest is one pending image upload. The queue mutates it exactly
// once after the HTTP response: either Link (success) or Err (failure) is
// set, then Done is invoked with the mutated request.
type UploadRequest struct {
	SourcePath  string
	Image       []byte
	Description string

	Link string
	Err  error

	// Done receives the completed request. Invoked exactly once per request,
	// regardless of outcome. May be nil.
	Done func(*UploadRequest)
}

// Failed reports whether the request completed with an error.
func (r *UploadRequest) Failed() bool {
	return r.Err != nil
}

// UploadRecord is a row in the local upload history.
type UploadRecord struct {
	ID         string
	SourcePath string
	Link       string
	Error      string
	CreatedAt  time.Time
}

// Succeeded reports whether the recorded upload produced a link.
func (r *UploadRecord) Succeeded() bool {
	return r.Error == "" && r.Link != ""
}
