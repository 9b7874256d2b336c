// Package report delivers test attachments to where humans and tools read them.
package report

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/phuslu/log"

	"github.com/swaglabs/loginsuite/internal/models"
)

// Sink consumes attachments. Implementations must be safe for concurrent use.
type Sink interface {
	Attach(ctx context.Context, attachment *models.Attachment) error
}

// FileSink writes each attachment as a file under <root>/<run id>/
type FileSink struct {
	dir string
}

func NewFileSink(root, runID string) *FileSink {
	return &FileSink{dir: filepath.Join(root, runID)}
}

// Dir is the directory attachments of this run land in
func (s *FileSink) Dir() string {
	return s.dir
}

func (s *FileSink) Attach(_ context.Context, attachment *models.Attachment) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifacts dir: %w", err)
	}

	path := filepath.Join(s.dir, FileName(attachment))
	if err := os.WriteFile(path, attachment.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}

	log.Info().Str("case", attachment.CaseID).Str("label", attachment.Label).Str("path", path).Msg("attachment written")
	return nil
}

// FileName derives a stable, filesystem safe name for an attachment
func FileName(attachment *models.Attachment) string {
	ext := ".bin"
	if exts, _ := mime.ExtensionsByType(attachment.ContentType); len(exts) > 0 {
		ext = exts[0]
	}
	if attachment.ContentType == models.ContentTypePNG {
		ext = ".png"
	}

	id := attachment.ID
	if len(id) > 8 {
		id = id[:8]
	}

	parts := []string{slug(attachment.CaseID), slug(attachment.Label), id}
	return strings.Join(parts, "_") + ext
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}

// AttachmentStore is the persistence side of DBSink
type AttachmentStore interface {
	SaveAttachment(ctx context.Context, attachment *models.Attachment) error
}

// DBSink stores attachments in the results database
type DBSink struct {
	store AttachmentStore
}

func NewDBSink(store AttachmentStore) *DBSink {
	return &DBSink{store: store}
}

func (s *DBSink) Attach(ctx context.Context, attachment *models.Attachment) error {
	return s.store.SaveAttachment(ctx, attachment)
}

// MultiSink fans an attachment out to every sink and joins their errors
type MultiSink []Sink

func (m MultiSink) Attach(ctx context.Context, attachment *models.Attachment) error {
	var errs []error
	for _, s := range m {
		if err := s.Attach(ctx, attachment); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every attachment
var Discard Sink = discard{}

type discard struct{}

func (discard) Attach(context.Context, *models.Attachment) error { return nil }
