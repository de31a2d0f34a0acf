package course

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"

	"github.com/course-tools/thinkific-downloader/internal/config"
	"github.com/course-tools/thinkific-downloader/internal/media"
	"github.com/course-tools/thinkific-downloader/internal/pkg/filenamify"
	"github.com/course-tools/thinkific-downloader/internal/pkg/files"
	"github.com/course-tools/thinkific-downloader/internal/quiz"
	"github.com/course-tools/thinkific-downloader/internal/thinkific"
	"github.com/course-tools/thinkific-downloader/internal/thinkific/response"
	"github.com/course-tools/thinkific-downloader/internal/wistia"
)

// Downloader walks the chapter tree and drives the resolver, fetcher and
// quiz materializer per content item. Each item reaches a terminal state
// (Downloaded, Skipped, Failed) before the next one starts; nothing runs
// concurrently by design, the platform rate-limits aggressive clients.
type Downloader struct {
	ctx      context.Context
	cfg      *config.AppConfig
	client   *thinkific.Client
	resolver *wistia.Resolver
	fetcher  *media.Fetcher
	quizzes  *quiz.Materializer
	log      *logrus.Logger

	loadingSpinner *spinner.Spinner
	interItemDelay time.Duration
}

// NewDownloader ...
func NewDownloader(
	ctx context.Context,
	cfg *config.AppConfig,
	client *thinkific.Client,
	resolver *wistia.Resolver,
	fetcher *media.Fetcher,
	quizzes *quiz.Materializer,
	log *logrus.Logger,
) *Downloader {
	return &Downloader{
		ctx:            ctx,
		cfg:            cfg,
		client:         client,
		resolver:       resolver,
		fetcher:        fetcher,
		quizzes:        quizzes,
		log:            log,
		loadingSpinner: spinner.New(spinner.CharSets[4], 100*time.Millisecond),
		interItemDelay: time.Duration(cfg.IntervalSeconds) * time.Second,
	}
}

// Run fetches the syllabus once, lets selectChapters narrow the chapter set
// and downloads the selection. A session expiry aborts the whole run.
func (d *Downloader) Run(selectChapters func([]Chapter) ([]int, error)) error {
	d.log.Infof("Fetching course syllabus from: %s", d.cfg.CourseLink)
	d.loadingSpinner.Prefix = "[ Fetching course syllabus... ]"
	d.loadingSpinner.Start()
	res, err := d.client.Syllabus(d.cfg.CourseLink)
	d.loadingSpinner.Stop()
	if err != nil {
		d.log.Error("Check your COOKIE_DATA and CLIENT_DATE settings")
		return err
	}

	c := FromSyllabus(res)
	d.log.Infof("=== %s ===", c.Name)

	selected, err := selectChapters(c.Chapters)
	if err != nil {
		return err
	}
	return d.DownloadChapters(c, selected)
}

// DownloadChapters processes the chapters whose 1-based ordinals appear in
// selected, in syllabus order. Unselected chapter directories are never created.
func (d *Downloader) DownloadChapters(c Course, selected []int) error {
	baseDir := filepath.Join(d.cfg.DownloadFolder, filenamify.Filenamify(c.Name))
	if err := files.MkDirAll(baseDir); err != nil {
		return err
	}

	selectedSet := make(map[int]bool, len(selected))
	for _, ordinal := range selected {
		selectedSet[ordinal] = true
	}

	for _, ch := range c.Chapters {
		if !selectedSet[ch.Ordinal] {
			continue
		}

		chapterDir := filepath.Join(baseDir,
			fmt.Sprintf("%02d_-_ %s", ch.Ordinal, filenamify.Filenamify(ch.Name)))
		if err := files.MkDirAll(chapterDir); err != nil {
			return err
		}
		d.log.Infof("Chapter %d: %s", ch.Ordinal, ch.Name)

		for j, contentID := range ch.ContentIDs {
			item, ok := c.Contents[contentID]
			if !ok {
				continue
			}
			status, err := d.ProcessItem(item, chapterDir, j+1)
			if err != nil {
				return err
			}
			d.log.Debugf("%s: %s", item.Name, status)
		}
	}
	return nil
}

// ProcessItem drives one content item to a terminal state. The returned error
// is non-nil only for run-fatal conditions (session expiry, cancellation);
// per-item failures are logged and reported through the status.
func (d *Downloader) ProcessItem(item ContentItem, outputDir string, ordinal int) (Status, error) {
	fullName := fmt.Sprintf("%02d_-_ %s", ordinal, filenamify.Filenamify(item.Name))

	if item.ContentableID == 0 {
		return StatusSkipped, nil
	}

	switch d.cfg.Policy {
	case config.PolicyLessonsOnly:
		if item.ContentableType != ContentableTypeLesson {
			d.log.Infof("Skipping %s (%s)", fullName, item.ContentableType)
			marker := filepath.Join(outputDir, fullName+".skipped")
			if err := files.SaveTextFile(marker, fmt.Sprintf("Skipped contentable type: %s\n", item.ContentableType)); err != nil {
				d.log.Errorf("Failed to write placeholder %s: %v", marker, err)
			}
			return StatusSkipped, nil
		}
	default:
		if item.ContentableType == ContentableTypeQuiz {
			d.log.Infof("Processing Quiz: %s", fullName)
			if err := d.quizzes.Materialize(item.ContentableID, outputDir, fullName); err != nil {
				d.log.Errorf("Failed to process quiz %s: %v", fullName, err)
				return StatusFailed, nil
			}
			return StatusDownloaded, nil
		}
	}

	return d.processLesson(item, outputDir, fullName)
}

func (d *Downloader) processLesson(item ContentItem, outputDir, fullName string) (Status, error) {
	d.log.Infof("Processing: %s", fullName)

	detail, err := d.client.LessonDetail(item.ContentableID)
	if err != nil {
		if errors.Is(err, thinkific.ErrSessionExpired) {
			// session expired mid-run, later lessons would all fail the same way
			return StatusFailed, err
		}
		d.log.Errorf("Error fetching lesson API (%d): %v", item.ContentableID, err)
		return StatusFailed, nil
	}

	if videoURL := detail.Lesson.VideoURL; videoURL != "" {
		binURL, actualQuality := d.resolver.ResolveAsset(videoURL, d.cfg.Quality)
		if binURL == "" {
			d.log.Warnf("No video found for %s", d.cfg.Quality)
		} else {
			d.log.Debugf("Resolved %s asset for %s", actualQuality, fullName)
			if err := d.fetcher.FetchMedia(d.ctx, binURL, outputDir, fullName); err != nil {
				d.log.Warnf("Video download failed for %s: %v", fullName, err)
			}
		}
	}

	attachments := make([]response.LessonFile, 0, len(detail.DownloadFiles)+len(detail.Attachments))
	attachments = append(attachments, detail.DownloadFiles...)
	attachments = append(attachments, detail.Attachments...)
	for _, file := range attachments {
		if file.DownloadURL == "" {
			continue
		}
		fileName := AttachmentFileName(fullName, file)
		d.log.Infof("Found attachment: %s", fileName)
		if err := d.fetcher.FetchFile(d.ctx, file.DownloadURL, outputDir, fileName); err != nil {
			d.log.Errorf("Attachment download failed: %v", err)
		}
	}

	if detail.Lesson.HTMLText != "" {
		htmlPath := filepath.Join(outputDir, fullName+".html")
		if err := files.SaveTextFile(htmlPath, detail.Lesson.HTMLText); err != nil {
			d.log.Errorf("Failed to save text file %s: %v", htmlPath, err)
		}
	}

	// deliberate throttle between lessons, the platform rate-limits
	select {
	case <-d.ctx.Done():
		return StatusFailed, d.ctx.Err()
	case <-time.After(d.interItemDelay):
	}

	return StatusDownloaded, nil
}

// AttachmentFileName derives the on-disk name for one attachment:
// <lessonPrefix>_<sanitizedStem><ext>, the extension taken from the original
// file name when present, else sniffed from the URL path tail when it is
// short enough to plausibly be an extension.
func AttachmentFileName(lessonPrefix string, file response.LessonFile) string {
	original := file.FileName
	if original == "" {
		original = file.Label
	}
	if original == "" {
		original = "attachment"
	}

	var stem, ext string
	if i := strings.LastIndex(original, "."); i >= 0 {
		stem, ext = original[:i], original[i:]
	} else {
		stem = original
		urlPath, _, _ := strings.Cut(file.DownloadURL, "?")
		if j := strings.LastIndex(urlPath, "."); j >= 0 {
			if tail := urlPath[j+1:]; tail != "" && len(tail) < 5 {
				ext = "." + tail
			}
		}
	}

	return lessonPrefix + "_" + filenamify.Filenamify(stem) + ext
}
