package uploads

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/imgurshot/internal/dbx"
	"github.com/dmitrijs2005/imgurshot/internal/models"
)

// SQLiteRepository implements Repository over a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, rec *models.UploadRecord) error {
	query := `INSERT INTO uploads (id, source_path, link, error, created_at)
			values (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.SourcePath, rec.Link, rec.Error, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert upload record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]models.UploadRecord, error) {
	query := `select id, source_path, link, error, created_at from uploads
			order by created_at desc, id limit ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select upload records: %w", err)
	}
	defer rows.Close()

	var result []models.UploadRecord
	for rows.Next() {
		var item models.UploadRecord
		if err := rows.Scan(&item.ID, &item.SourcePath, &item.Link, &item.Error, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
