package form

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func readyProjectForm(t *testing.T, store *MockProjectStore) *ProjectForm {
	t.Helper()
	if store == nil {
		store = &MockProjectStore{}
	}
	f := NewProjectForm(store, syncOptions(nil))
	f.Load(context.Background(), 1)
	if f.State() != StateReady {
		t.Fatalf("fixture load failed, state %s", f.State())
	}
	return f
}

func TestUploadAdapter_RejectsNonImage(t *testing.T) {
	f := readyProjectForm(t, nil)
	up := &MockUploader{}
	a := NewUploadAdapter(up, f)

	ok := a.Upload(context.Background(), File{
		Name:        "notes.txt",
		ContentType: "text/plain",
		Size:        120,
		Body:        strings.NewReader("hello"),
	}, FieldThumbnailImage)

	if ok {
		t.Fatal("non-image file must be rejected")
	}
	if up.Calls != 0 {
		t.Errorf("collaborator called %d times, want 0", up.Calls)
	}
	n := f.Notices().Active()
	if n == nil || n.Message != "Only image files can be uploaded" {
		t.Errorf("unexpected banner %+v", n)
	}
	if a.State().Phase != UploadIdle {
		t.Errorf("marker must stay idle, got %+v", a.State())
	}
	if f.Draft().ThumbnailImage != "" {
		t.Error("draft field must be untouched")
	}
}

func TestUploadAdapter_RejectsOversizedImage(t *testing.T) {
	f := readyProjectForm(t, nil)
	up := &MockUploader{}
	a := NewUploadAdapter(up, f)

	ok := a.Upload(context.Background(), File{
		Name:        "hero.png",
		ContentType: "image/png",
		Size:        6 * 1024 * 1024,
		Body:        strings.NewReader(""),
	}, FieldThumbnailImage)

	if ok {
		t.Fatal("oversized file must be rejected")
	}
	if up.Calls != 0 {
		t.Errorf("collaborator called %d times, want 0", up.Calls)
	}
	n := f.Notices().Active()
	if n == nil || n.Message != "Image must be 5 MB or smaller" {
		t.Errorf("unexpected banner %+v", n)
	}
}

func TestUploadAdapter_AcceptsImageAtExactLimit(t *testing.T) {
	f := readyProjectForm(t, nil)
	a := NewUploadAdapter(&MockUploader{}, f)

	ok := a.Upload(context.Background(), File{
		Name:        "og.jpg",
		ContentType: "image/jpeg",
		Size:        MaxUploadBytes,
		Body:        strings.NewReader(""),
	}, FieldOGImage)

	if !ok {
		t.Fatal("a file at exactly the limit must pass")
	}
	if f.Draft().OGImage != "https://cdn.example.com/uploaded.png" {
		t.Errorf("stored URL not written to draft, got %q", f.Draft().OGImage)
	}
	n := f.Notices().Active()
	if n == nil || n.Kind != NoticeSuccess {
		t.Errorf("expected a success banner, got %+v", n)
	}
}

func TestUploadAdapter_MarkerDuringUpload(t *testing.T) {
	f := readyProjectForm(t, nil)
	var during UploadState
	var a *UploadAdapter
	up := &MockUploader{
		UploadImageFunc: func(ctx context.Context, file File) (string, error) {
			during = a.State()
			return "https://cdn.example.com/x.png", nil
		},
	}
	a = NewUploadAdapter(up, f)

	a.Upload(context.Background(), File{
		Name:        "x.png",
		ContentType: "image/png",
		Size:        100,
		Body:        strings.NewReader(""),
	}, FieldThumbnailImage)

	if during.Phase != UploadInFlight || during.Field != FieldThumbnailImage {
		t.Errorf("in-flight marker wrong: %+v", during)
	}
	if a.State().Phase != UploadIdle {
		t.Errorf("marker must reset after upload, got %+v", a.State())
	}
}

func TestUploadAdapter_CollaboratorFailure(t *testing.T) {
	f := readyProjectForm(t, nil)
	up := &MockUploader{
		UploadImageFunc: func(ctx context.Context, file File) (string, error) {
			return "", errors.New("access denied")
		},
	}
	a := NewUploadAdapter(up, f)

	ok := a.Upload(context.Background(), File{
		Name:        "x.png",
		ContentType: "image/png",
		Size:        100,
		Body:        strings.NewReader(""),
	}, FieldThumbnailImage)

	if ok {
		t.Fatal("collaborator failure must be reported")
	}
	n := f.Notices().Active()
	if n == nil || n.Message != "Image upload failed. Check storage permissions and try again." {
		t.Errorf("unexpected banner %+v", n)
	}
	if a.State().Phase != UploadIdle {
		t.Errorf("marker must reset after a failed upload, got %+v", a.State())
	}
	if f.Draft().ThumbnailImage != "" {
		t.Error("draft field must be untouched after failure")
	}
}

func TestUploadAdapter_SecondUploadReassignsMarker(t *testing.T) {
	f := readyProjectForm(t, nil)
	var a *UploadAdapter
	var nested UploadState
	up := &MockUploader{}
	up.UploadImageFunc = func(ctx context.Context, file File) (string, error) {
		// first upload kicks off a second one mid-flight
		if up.Calls == 1 {
			a.Upload(ctx, File{
				Name:        "og.png",
				ContentType: "image/png",
				Size:        50,
				Body:        strings.NewReader(""),
			}, FieldOGImage)
			nested = a.State()
		}
		return "https://cdn.example.com/" + file.Name, nil
	}
	a = NewUploadAdapter(up, f)

	a.Upload(context.Background(), File{
		Name:        "thumb.png",
		ContentType: "image/png",
		Size:        50,
		Body:        strings.NewReader(""),
	}, FieldThumbnailImage)

	// the nested upload completed and reset the shared marker
	if nested.Phase != UploadIdle {
		t.Errorf("marker after nested upload: %+v", nested)
	}
	// both field writes landed despite the single marker
	if f.Draft().ThumbnailImage != "https://cdn.example.com/thumb.png" {
		t.Errorf("thumbnail write lost: %q", f.Draft().ThumbnailImage)
	}
	if f.Draft().OGImage != "https://cdn.example.com/og.png" {
		t.Errorf("og write lost: %q", f.Draft().OGImage)
	}
}
