package uploads

import (
	"context"

	"github.com/dmitrijs2005/imgurshot/internal/models"
)

// Repository persists the local upload history.
type Repository interface {
	// Add inserts one completed upload attempt (successful or failed).
	Add(ctx context.Context, rec *models.UploadRecord) error

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]models.UploadRecord, error)
}
