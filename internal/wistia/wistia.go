package wistia

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultManifestBaseURL is the public asset manifest host
	DefaultManifestBaseURL = "https://fast.wistia.com"
	// ManifestPath keyed by scraped media id
	ManifestPath = "/embed/medias/%s.json"
	// FallbackQuality is tried when the desired quality is absent from the manifest
	FallbackQuality = "720p"
)

var (
	// strict embed pattern requiring the canonical host, matched first
	strictEmbedPattern = regexp.MustCompile(`fast\.wistia\.(?:com|net)/embed/medias/([a-zA-Z0-9]+)\.`)
	// loose generic pattern, fallback
	looseEmbedPattern = regexp.MustCompile(`/embed/medias/([a-zA-Z0-9]+)`)
)

// Asset is one encoded variant of a media id.
type Asset struct {
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
}

type manifestResponse struct {
	Media struct {
		Assets []Asset `json:"assets"`
	} `json:"media"`
}

// Resolver turns a lesson player page URL into a downloadable binary asset URL.
// The page is fetched with the session client (it lives on the platform host);
// the manifest is public and fetched without platform headers.
type Resolver struct {
	pageClient     *resty.Client
	manifestClient *resty.Client

	// ManifestBaseURL is overridable for tests
	ManifestBaseURL string

	log *logrus.Logger
}

// NewResolver ...
func NewResolver(pageClient, manifestClient *resty.Client, log *logrus.Logger) *Resolver {
	return &Resolver{
		pageClient:      pageClient,
		manifestClient:  manifestClient,
		ManifestBaseURL: DefaultManifestBaseURL,
		log:             log,
	}
}

// ResolveAsset resolves the player page to a (binaryURL, actualQuality) pair.
// Every failure is logged and yields empty strings; one lesson's missing video
// must not abort the run.
func (r *Resolver) ResolveAsset(playerPageURL, desiredQuality string) (string, string) {
	mediaID := r.scrapeMediaID(playerPageURL)
	if mediaID == "" {
		return "", ""
	}
	return r.lookupBinURL(mediaID, desiredQuality)
}

// scrapeMediaID fetches the player page and extracts the embedded media id.
func (r *Resolver) scrapeMediaID(pageURL string) string {
	r.log.Debugf("Scraping player page: %s", pageURL)
	resp, err := r.pageClient.R().Get(pageURL)
	if err != nil {
		r.log.Errorf("Error scraping page %s: %v", pageURL, err)
		return ""
	}
	if resp.StatusCode() != http.StatusOK {
		r.log.Errorf("Error scraping page %s: status code %d", pageURL, resp.StatusCode())
		return ""
	}

	body := string(resp.Body())
	if IsLoginWall(body) {
		r.log.Errorf("Login page detected. Cookie likely expired.")
		return ""
	}

	id, ok := ExtractMediaID(body)
	if !ok {
		return ""
	}
	return id
}

// lookupBinURL fetches the JSON asset manifest and selects a matching asset.
func (r *Resolver) lookupBinURL(mediaID, desiredQuality string) (string, string) {
	manifestURL := r.ManifestBaseURL + fmt.Sprintf(ManifestPath, mediaID)
	r.log.Debugf("Fetching asset manifest: %s", manifestURL)

	var manifest manifestResponse
	resp, err := r.manifestClient.R().SetResult(&manifest).Get(manifestURL)
	if err != nil {
		r.log.Errorf("Error fetching manifest for media id %s: %v", mediaID, err)
		return "", ""
	}
	if resp.StatusCode() != http.StatusOK {
		r.log.Errorf("Error fetching manifest for media id %s: status code %d", mediaID, resp.StatusCode())
		return "", ""
	}

	asset, ok := PickAsset(manifest.Media.Assets, desiredQuality)
	if !ok {
		return "", ""
	}
	return asset.URL, asset.DisplayName
}

// ExtractMediaID extracts the media id from player page markup,
// strict embed-domain pattern first, then the loose generic one.
func ExtractMediaID(body string) (string, bool) {
	if m := strictEmbedPattern.FindStringSubmatch(body); m != nil {
		return m[1], true
	}
	if m := looseEmbedPattern.FindStringSubmatch(body); m != nil {
		return m[1], true
	}
	return "", false
}

// IsLoginWall reports whether the page body is a login redirect
// rather than the actual player page.
func IsLoginWall(body string) bool {
	return strings.Contains(body, "Log In") && strings.Contains(body, "password")
}

// PickAsset selects the asset whose quality label exactly equals desiredQuality,
// falling back to FallbackQuality when absent.
func PickAsset(assets []Asset, desiredQuality string) (Asset, bool) {
	for _, a := range assets {
		if a.DisplayName == desiredQuality {
			return a, true
		}
	}
	for _, a := range assets {
		if a.DisplayName == FallbackQuality {
			return a, true
		}
	}
	return Asset{}, false
}
