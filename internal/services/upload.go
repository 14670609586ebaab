package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/imgurshot/internal/models"
	"github.com/dmitrijs2005/imgurshot/internal/repositories/uploads"
)

func (s *Service) historyRepo() uploads.Repository {
	return uploads.NewSQLiteRepository(s.db)
}

// Enqueue appends req to the pending queue and returns immediately.
//
// If the account is authenticated but the cached access token is absent or
// expired, exactly one refresh is started; its completion drains the whole
// queue once. Requests enqueued while that refresh is pending are picked up
// by the same drain. Anonymous uploads (or a still-valid token) drain right
// away.
func (s *Service) Enqueue(ctx context.Context, req *models.UploadRequest) {
	authenticated := s.IsAuthenticated(ctx)

	s.mu.Lock()
	s.queue = append(s.queue, req)

	if authenticated && !s.tokenValidLocked() {
		if s.refreshInFlight {
			// The pending refresh's drain will pick this request up.
			s.mu.Unlock()
			return
		}
		s.refreshInFlight = true
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			err := s.RequestAccessToken(ctx)

			s.mu.Lock()
			s.refreshInFlight = false
			s.mu.Unlock()

			s.drain(ctx, err)
		}()
		return
	}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.drain(ctx, nil)
	}()
}

// drain atomically swaps the queue for an empty one and processes the
// snapshot in FIFO order. A request enqueued concurrently with the swap is
// not lost: it lands in the fresh queue and triggers its own drain.
//
// refreshErr carries the outcome of the refresh that scheduled this drain.
// When the refresh failed and no usable token remains, the snapshot is
// failed explicitly through each request's callback rather than silently
// retried.
func (s *Service) drain(ctx context.Context, refreshErr error) {
	s.mu.Lock()
	batch := s.queue
	s.queue = nil
	token := ""
	if s.tokenValidLocked() {
		token = s.accessToken
	}
	s.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	s.log.Debug(ctx, "draining upload queue", "count", len(batch))

	for _, req := range batch {
		if refreshErr != nil && token == "" {
			req.Err = refreshErr
			s.finish(ctx, req)
			continue
		}
		s.attemptUpload(ctx, req, token)
	}
}

// attemptUpload performs one HTTP upload and completes the request with
// either a link or an error.
func (s *Service) attemptUpload(ctx context.Context, req *models.UploadRequest, token string) {
	link, err := s.client.UploadImage(ctx, req.Image, req.SourcePath, req.Description, token)
	if err != nil {
		req.Err = err
	} else {
		req.Link = link
	}
	s.finish(ctx, req)
}

// finish records the outcome in the local history and invokes the request's
// callback. Called exactly once per request.
func (s *Service) finish(ctx context.Context, req *models.UploadRequest) {
	rec := &models.UploadRecord{
		ID:         uuid.NewString(),
		SourcePath: req.SourcePath,
		Link:       req.Link,
		CreatedAt:  s.now(),
	}
	if req.Err != nil {
		rec.Error = req.Err.Error()
	}
	if err := s.historyRepo().Add(ctx, rec); err != nil {
		s.log.Warn(ctx, "failed to record upload history", "error", err)
	}

	if req.Failed() {
		s.log.Error(ctx, "upload failed", "path", req.SourcePath, "error", req.Err)
	} else {
		s.log.Info(ctx, "upload finished", "path", req.SourcePath, "link", req.Link)
	}

	if req.Done != nil {
		req.Done(req)
	}
}

// History returns up to limit most recent upload records.
func (s *Service) History(ctx context.Context, limit int) ([]models.UploadRecord, error) {
	return s.historyRepo().List(ctx, limit)
}
