package wistia

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/course-tools/thinkific-downloader/internal/client"
	"github.com/course-tools/thinkific-downloader/internal/pkg/logger"
)

func TestExtractMediaID_StrictPatternWins(t *testing.T) {
	body := `<script src="https://fast.wistia.com/embed/medias/abc123XYZ.jsonp"></script>
	<div class="other">/embed/medias/shouldnotwin</div>`
	id, ok := ExtractMediaID(body)
	if !ok || id != "abc123XYZ" {
		t.Fatalf("want abc123XYZ, got %q ok=%v", id, ok)
	}
}

func TestExtractMediaID_LooseFallback(t *testing.T) {
	body := `<iframe src="https://player.example.com/embed/medias/deadbeef42"></iframe>`
	id, ok := ExtractMediaID(body)
	if !ok || id != "deadbeef42" {
		t.Fatalf("want deadbeef42, got %q ok=%v", id, ok)
	}
}

func TestExtractMediaID_NoMatch(t *testing.T) {
	if id, ok := ExtractMediaID("<html><body>nothing here</body></html>"); ok {
		t.Fatalf("want no match, got %q", id)
	}
}

func TestIsLoginWall(t *testing.T) {
	if !IsLoginWall(`<h1>Log In</h1><input type="password">`) {
		t.Fatal("want login wall detected")
	}
	if IsLoginWall(`<h1>Log In to win</h1>`) {
		t.Fatal("password marker missing, should not be a login wall")
	}
}

func TestPickAsset_ExactMatch(t *testing.T) {
	assets := []Asset{
		{DisplayName: "480p", URL: "u480"},
		{DisplayName: "1080p", URL: "u1080"},
	}
	a, ok := PickAsset(assets, "1080p")
	if !ok || a.URL != "u1080" {
		t.Fatalf("want u1080, got %+v ok=%v", a, ok)
	}
}

func TestPickAsset_FallbackQuality(t *testing.T) {
	assets := []Asset{
		{DisplayName: "480p", URL: "u480"},
		{DisplayName: "720p", URL: "u720"},
	}
	a, ok := PickAsset(assets, "4k")
	if !ok || a.DisplayName != "720p" {
		t.Fatalf("want 720p fallback, got %+v ok=%v", a, ok)
	}
}

func TestPickAsset_NeitherPresent(t *testing.T) {
	assets := []Asset{
		{DisplayName: "480p", URL: "u480"},
		{DisplayName: "1080p", URL: "u1080"},
	}
	if a, ok := PickAsset(assets, "540p"); ok {
		t.Fatalf("want no asset, got %+v", a)
	}
}

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	log := logger.New(t.TempDir() + "/test.log")
	return NewResolver(client.New(logger.DiscardLogger{}), client.New(logger.DiscardLogger{}), log)
}

func TestResolveAsset(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/player", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<script src="https://fast.wistia.net/embed/medias/vid42abc.jsonp"></script>`)
	})
	mux.HandleFunc("/embed/medias/vid42abc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"media": {"assets": [
			{"display_name": "540p", "url": "https://cdn/540.bin"},
			{"display_name": "720p", "url": "https://cdn/720.bin"}
		]}}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r := newTestResolver(t)
	r.ManifestBaseURL = srv.URL

	binURL, quality := r.ResolveAsset(srv.URL+"/player", "540p")
	if binURL != "https://cdn/540.bin" || quality != "540p" {
		t.Fatalf("want 540p asset, got %q %q", binURL, quality)
	}

	// desired absent, fallback applies
	binURL, quality = r.ResolveAsset(srv.URL+"/player", "1080p")
	if binURL != "https://cdn/720.bin" || quality != "720p" {
		t.Fatalf("want 720p fallback asset, got %q %q", binURL, quality)
	}
}

func TestResolveAsset_LoginWall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<h1>Log In</h1><input type="password">`)
	}))
	defer srv.Close()

	r := newTestResolver(t)
	if binURL, quality := r.ResolveAsset(srv.URL, "720p"); binURL != "" || quality != "" {
		t.Fatalf("want empty result on login wall, got %q %q", binURL, quality)
	}
}

func TestResolveAsset_ManifestFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/player", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `/embed/medias/vid42abc`)
	})
	mux.HandleFunc("/embed/medias/vid42abc.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r := newTestResolver(t)
	r.ManifestBaseURL = srv.URL

	if binURL, quality := r.ResolveAsset(srv.URL+"/player", "720p"); binURL != "" || quality != "" {
		t.Fatalf("want empty result on manifest failure, got %q %q", binURL, quality)
	}
}
