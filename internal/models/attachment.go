package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Attachment labels and content types used by the suite
const (
	FailureScreenshotLabel = "Failed Test Case Screenshot"
	ContentTypePNG         = "image/png"
)

// Attachment is a named diagnostic blob attached to a test attempt
type Attachment struct {
	ID          string
	AttemptID   string
	CaseID      string
	Label       string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

var (
	ErrEmptyAttachment = errors.New("attachment data cannot be empty")
	ErrMissingLabel    = errors.New("attachment label cannot be empty")
)

// NewAttachment creates an attachment for the given attempt
func NewAttachment(attempt *Attempt, label, contentType string, data []byte) (*Attachment, error) {
	if label == "" {
		return nil, ErrMissingLabel
	}
	if len(data) == 0 {
		return nil, ErrEmptyAttachment
	}

	a := &Attachment{
		ID:          uuid.New().String(),
		Label:       label,
		ContentType: contentType,
		Data:        data,
		CreatedAt:   time.Now(),
	}
	if attempt != nil {
		a.AttemptID = attempt.ID
		a.CaseID = attempt.CaseID
	}
	return a, nil
}
