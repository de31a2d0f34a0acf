package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/course-tools/thinkific-downloader/internal/client"
	"github.com/course-tools/thinkific-downloader/internal/pkg/logger"
)

func newTestFetcher(t *testing.T) *Fetcher {
	t.Helper()
	log := logger.New(t.TempDir() + "/test.log")
	return NewFetcher(client.NewNoParseResponse(logger.DiscardLogger{}), log)
}

func TestFetchMedia_SkipsExistingNonEmptyFile(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "01_-_ Lesson.mp4"), []byte("old bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	f := newTestFetcher(t)
	primaryCalled := false
	f.primary = func(ctx context.Context, url, destPath string) error {
		primaryCalled = true
		return nil
	}

	if err := f.FetchMedia(context.Background(), srv.URL, dir, "01_-_ Lesson"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primaryCalled {
		t.Fatal("primary downloader invoked for an existing file")
	}
	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Fatalf("network call issued for an existing file, hits=%d", got)
	}
}

func TestFetchMedia_FallbackOnPrimaryFailure(t *testing.T) {
	payload := []byte("binary video payload")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := newTestFetcher(t)
	f.primary = func(ctx context.Context, url, destPath string) error {
		return errors.New("unsupported url shape")
	}

	if err := f.FetchMedia(context.Background(), srv.URL, dir, "02_-_ Lesson"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "02_-_ Lesson.mp4"))
	if err != nil {
		t.Fatalf("fallback did not write destination: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("content mismatch: %q", got)
	}
}

func TestFetchMedia_ForcesMediaExtension(t *testing.T) {
	dir := t.TempDir()
	f := newTestFetcher(t)
	var gotDest string
	f.primary = func(ctx context.Context, url, destPath string) error {
		gotDest = destPath
		return os.WriteFile(destPath, []byte("x"), 0644)
	}

	if err := f.FetchMedia(context.Background(), "http://unused", dir, "03_-_ Lesson"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(gotDest) != "03_-_ Lesson.mp4" {
		t.Fatalf("extension not forced, got %s", gotDest)
	}

	// already carrying the extension, must not double it
	f.primary = func(ctx context.Context, url, destPath string) error {
		gotDest = destPath
		return os.WriteFile(destPath, []byte("x"), 0644)
	}
	if err := f.FetchMedia(context.Background(), "http://unused", dir, "04_-_ Lesson.MP4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(gotDest) != "04_-_ Lesson.MP4" {
		t.Fatalf("extension doubled, got %s", gotDest)
	}
}

func TestFetchFile_CleanupOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// declare more bytes than sent so the client read fails mid-stream
		w.Header().Set("Content-Length", "4096")
		_, _ = w.Write([]byte("short"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := newTestFetcher(t)

	err := f.FetchFile(context.Background(), srv.URL, dir, "notes.pdf")
	if err == nil {
		t.Fatal("want error on truncated stream")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "notes.pdf")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("partial file left behind after failed download")
	}
}

func TestFetchFile_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "expired signature")
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := newTestFetcher(t)

	if err := f.FetchFile(context.Background(), srv.URL, dir, "notes.pdf"); err == nil {
		t.Fatal("want error on 403")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "notes.pdf")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("file created despite bad status")
	}
}
