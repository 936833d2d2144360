package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/crewdeck-dev/crewdeck/internal/models"
)

func TestUploadLifecycle(t *testing.T) {
	r, s := newTestServer(t)

	w := doUpload(t, r, "dev", "report.pdf", "application/pdf", 2048)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var upload models.Upload
	decodeBody(t, w, &upload)

	if upload.ID == "" {
		t.Error("expected a generated id")
	}
	if upload.OriginalName != "report.pdf" {
		t.Errorf("expected original name report.pdf, got %q", upload.OriginalName)
	}
	if upload.Filename == "" || upload.Filename == "report.pdf" {
		t.Errorf("stored filename must be system-generated, got %q", upload.Filename)
	}
	if upload.FileSize != 2048 {
		t.Errorf("expected size 2048, got %d", upload.FileSize)
	}
	if upload.UploadedAt.IsZero() {
		t.Error("expected uploadedAt to be stamped")
	}

	// Download streams the stored bytes under the original name.
	w = doJSON(t, r, http.MethodGet, "/api/uploads/"+upload.ID+"/download", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on download, got %d: %s", w.Code, w.Body.String())
	}
	if got := int64(w.Body.Len()); got != upload.FileSize {
		t.Errorf("downloaded %d bytes, want %d", got, upload.FileSize)
	}

	// Delete, then the download endpoint must 404.
	w = doJSON(t, r, http.MethodDelete, "/api/uploads/"+upload.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/uploads/"+upload.ID+"/download", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/uploads/"+upload.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", w.Code)
	}

	uploads, err := s.ListUploads(context.Background())
	if err != nil {
		t.Fatalf("ListUploads failed: %v", err)
	}
	if len(uploads) != 0 {
		t.Errorf("expected no upload records left, got %d", len(uploads))
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	r, s := newTestServer(t)

	w := doUpload(t, r, "dev", "big.pdf", "application/pdf", 11_000_000)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized file, got %d: %s", w.Code, w.Body.String())
	}

	uploads, err := s.ListUploads(context.Background())
	if err != nil {
		t.Fatalf("ListUploads failed: %v", err)
	}
	if len(uploads) != 0 {
		t.Errorf("oversized upload still created %d record(s)", len(uploads))
	}
}

func TestUploadRejectsWrongType(t *testing.T) {
	r, s := newTestServer(t)

	w := doUpload(t, r, "dev", "image.png", "image/png", 1024)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong type, got %d: %s", w.Code, w.Body.String())
	}

	uploads, err := s.ListUploads(context.Background())
	if err != nil {
		t.Fatalf("ListUploads failed: %v", err)
	}
	if len(uploads) != 0 {
		t.Errorf("rejected upload still created %d record(s)", len(uploads))
	}
}

func TestUploadRequiresMemberName(t *testing.T) {
	r, _ := newTestServer(t)

	w := doUpload(t, r, "", "report.pdf", "application/pdf", 1024)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without memberName, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadRequiresFile(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/uploads", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without file, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUploadAcceptsLegacyDoc(t *testing.T) {
	r, _ := newTestServer(t)

	w := doUpload(t, r, "dev", "old.doc", "application/msword", 512)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for .doc, got %d: %s", w.Code, w.Body.String())
	}
}
