package form

import (
	"context"
	"io"
	"strings"
)

// MaxUploadBytes is the upload size ceiling enforced before any collaborator
// call (5 MiB).
const MaxUploadBytes = 5 * 1024 * 1024

// File describes a user-selected file presented to the upload adapter. The
// guards run against the declared content type and size only; Body is passed
// through to the collaborator untouched.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageUploader is the external upload collaborator.
type ImageUploader interface {
	UploadImage(ctx context.Context, f File) (string, error)
}

// UploadPhase tags the adapter's in-flight state.
type UploadPhase string

const (
	UploadIdle     UploadPhase = "IDLE"
	UploadInFlight UploadPhase = "UPLOADING"
)

// UploadState is the explicit single-flight marker: either idle, or uploading
// into exactly one named field. Starting a second upload while one is in
// flight reassigns the marker to the new field; the per-field draft writes
// remain correct, only the loading indicator follows the latest upload.
type UploadState struct {
	Phase UploadPhase `json:"phase"`
	Field string      `json:"field,omitempty"`
}

// fieldWriter is the slice of the form controller the adapter needs: writing
// the stored URL back into the draft.
type fieldWriter interface {
	SetField(name, value string) error
	Notices() *NoticeCenter
}

// UploadAdapter turns a selected file into a stored URL on one draft field.
// It owns the pre-flight guards and the in-flight marker; the actual transfer
// is delegated to the ImageUploader collaborator.
type UploadAdapter struct {
	uploader ImageUploader
	form     fieldWriter
	state    UploadState
}

// NewUploadAdapter creates an adapter bound to one form controller.
func NewUploadAdapter(uploader ImageUploader, form fieldWriter) *UploadAdapter {
	return &UploadAdapter{
		uploader: uploader,
		form:     form,
		state:    UploadState{Phase: UploadIdle},
	}
}

// State returns the current in-flight marker.
func (a *UploadAdapter) State() UploadState { return a.state }

// Upload validates the file, delegates to the collaborator and writes the
// resulting URL into targetField. Guard failures and collaborator errors
// surface as transient banners; the in-flight marker is cleared on every exit
// path. Returns true when the URL was stored.
func (a *UploadAdapter) Upload(ctx context.Context, f File, targetField string) (ok bool) {
	if !strings.HasPrefix(f.ContentType, "image/") {
		a.form.Notices().Error("Only image files can be uploaded")
		return false
	}
	if f.Size > MaxUploadBytes {
		a.form.Notices().Error("Image must be 5 MB or smaller")
		return false
	}

	a.state = UploadState{Phase: UploadInFlight, Field: targetField}
	a.form.Notices().Clear()
	defer func() {
		a.state = UploadState{Phase: UploadIdle}
	}()

	url, err := a.uploader.UploadImage(ctx, f)
	if err != nil {
		a.form.Notices().Error("Image upload failed. Check storage permissions and try again.")
		return false
	}

	if err := a.form.SetField(targetField, url); err != nil {
		a.form.Notices().Error("Image upload failed. Check storage permissions and try again.")
		return false
	}
	a.form.Notices().Success("Image uploaded")
	return true
}
