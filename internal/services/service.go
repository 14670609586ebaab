package services

import (
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/imgurshot/internal/client"
	"github.com/dmitrijs2005/imgurshot/internal/logging"
	"github.com/dmitrijs2005/imgurshot/internal/models"
)

// Service owns authentication state and the pending-upload queue.
type Service struct {
	client  client.Client
	db      *sql.DB
	sealKey []byte
	log     logging.Logger

	// now is a test seam; defaults to time.Now.
	now func() time.Time

	mu                sync.Mutex
	queue             []*models.UploadRequest
	accessToken       string
	accessTokenExpiry time.Time
	refreshInFlight   bool

	wg sync.WaitGroup
}

// NewService constructs a Service bound to the given API client, local
// database and sealing key. The access token cache starts empty; the
// refresh token (if any) stays sealed in the database until needed.
func NewService(c client.Client, db *sql.DB, sealKey []byte, log logging.Logger) *Service {
	return &Service{
		client:  c,
		db:      db,
		sealKey: sealKey,
		log:     log,
		now:     time.Now,
	}
}

// Wait blocks until all in-flight refreshes and queue drains have finished.
// Intended for orderly shutdown.
func (s *Service) Wait() {
	s.wg.Wait()
}
