package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaglabs/loginsuite/internal/models"
)

func newScreenshot(t *testing.T) *models.Attachment {
	t.Helper()
	attempt, err := models.NewAttempt("run-1", "TC-2", 3)
	require.NoError(t, err)
	a, err := models.NewAttachment(attempt, models.FailureScreenshotLabel, models.ContentTypePNG, []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	return a
}

func TestFileSink_Attach(t *testing.T) {
	// GIVEN a file sink rooted in a temp dir
	root := t.TempDir()
	sink := NewFileSink(root, "run-1")
	a := newScreenshot(t)

	// WHEN attaching a screenshot
	err := sink.Attach(context.Background(), a)

	// THEN the bytes land under <root>/<run id>/
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(root, "run-1", FileName(a)))
	require.NoError(t, err)
	assert.Equal(t, a.Data, data)
	assert.Equal(t, filepath.Join(root, "run-1"), sink.Dir())
}

func TestFileName(t *testing.T) {
	a := &models.Attachment{
		ID:          "0123456789abcdef",
		CaseID:      "TC-5",
		Label:       models.FailureScreenshotLabel,
		ContentType: models.ContentTypePNG,
	}
	assert.Equal(t, "tc-5_failed-test-case-screenshot_01234567.png", FileName(a))

	a.ContentType = "application/x-unknown-thing"
	assert.Equal(t, "tc-5_failed-test-case-screenshot_01234567.bin", FileName(a))
}

type recordingSink struct {
	got []*models.Attachment
	err error
}

func (s *recordingSink) Attach(_ context.Context, a *models.Attachment) error {
	s.got = append(s.got, a)
	return s.err
}

func (s *recordingSink) SaveAttachment(ctx context.Context, a *models.Attachment) error {
	return s.Attach(ctx, a)
}

func TestMultiSink_DeliversToAllAndJoinsErrors(t *testing.T) {
	failing := &recordingSink{err: errors.New("disk full")}
	ok := &recordingSink{}
	a := newScreenshot(t)

	err := MultiSink{failing, ok}.Attach(context.Background(), a)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Len(t, failing.got, 1)
	assert.Len(t, ok.got, 1)
}

func TestDBSink_DelegatesToStore(t *testing.T) {
	store := &recordingSink{}
	a := newScreenshot(t)

	require.NoError(t, NewDBSink(store).Attach(context.Background(), a))
	assert.Same(t, a, store.got[0])
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Attach(context.Background(), newScreenshot(t)))
}
