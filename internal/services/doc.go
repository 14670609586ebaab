// Package services implements the application service behind the uploader:
// credential lifecycle (authorization-code exchange, access-token refresh,
// logout) and the FIFO upload queue that gates draining on a valid access
// token.
//
// Concurrency contract:
//   - Enqueue never blocks the caller; uploads complete asynchronously and
//     report through the request's Done callback, exactly once per request.
//   - At most one token refresh is in flight at a time; requests enqueued
//     while a refresh is pending are drained by that refresh's completion.
//   - The queue is snapshotted-and-cleared atomically before a drain pass,
//     so a concurrently enqueued request is never lost: it simply starts the
//     next drain.
package services
