package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/imgurshot/internal/client"
	"github.com/dmitrijs2005/imgurshot/internal/filex"
	"github.com/dmitrijs2005/imgurshot/internal/models"
)

// handleScreenshot is the watcher callback. Files with an unsupported
// extension are skipped quietly; everything else is queued for upload.
func (a *App) handleScreenshot(ctx context.Context, path string) {
	if !client.FileTypeAllowed(filex.Ext(path)) {
		a.log.Debug(ctx, "skipping unsupported file", "path", path)
		return
	}
	if err := a.enqueuePath(ctx, path); err != nil {
		a.log.Error(ctx, "failed to queue screenshot", "path", path, "error", err)
	}
}

// uploadFile queues a single file chosen by the user. Unlike the watcher
// path, an unsupported extension is reported as an error.
func (a *App) uploadFile(ctx context.Context, path string) error {
	if ext := filex.Ext(path); !client.FileTypeAllowed(ext) {
		return fmt.Errorf("unsupported file type %q (supported: %s)",
			ext, strings.Join(client.AllowedFileTypes, ", "))
	}
	return a.enqueuePath(ctx, path)
}

// enqueuePath reads the file and hands it to the upload service. The outcome
// is reported asynchronously through the request callback.
func (a *App) enqueuePath(ctx context.Context, path string) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	a.service.Enqueue(ctx, &models.UploadRequest{
		SourcePath: path,
		Image:      image,
		Done: func(r *models.UploadRequest) {
			if r.Failed() {
				fmt.Fprintf(a.out, "Upload failed for %s: %s\n", r.SourcePath, r.Err.Error())
			} else {
				fmt.Fprintf(a.out, "Uploaded %s: %s\n", r.SourcePath, r.Link)
			}
		},
	})
	return nil
}

// history prints up to limit most recent upload records, newest first.
func (a *App) history(ctx context.Context, limit int) error {
	recs, err := a.service.History(ctx, limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No uploads yet")
		return nil
	}
	for _, rec := range recs {
		if rec.Succeeded() {
			fmt.Fprintf(a.out, "%s  %s  %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.SourcePath, rec.Link)
		} else {
			fmt.Fprintf(a.out, "%s  %s  FAILED: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.SourcePath, rec.Error)
		}
	}
	return nil
}
