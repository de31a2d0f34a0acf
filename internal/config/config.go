package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// PolicyQuiz materializes quizzes and treats every other contentable
	// as a standard lesson.
	PolicyQuiz = "quiz"
	// PolicyLessonsOnly skips any contentable that is not a Lesson,
	// leaving a placeholder marker file.
	PolicyLessonsOnly = "lessons-only"

	// DefaultQuality reference video quality
	DefaultQuality = "720p"
	// DefaultDownloadFolder download root, relative to the working directory
	DefaultDownloadFolder = "Downloads"
	// DefaultIntervalSeconds pacing delay between standard lessons
	DefaultIntervalSeconds = 1
)

// AppConfig ...
type AppConfig struct {
	CourseLink      string
	CookieData      string
	ClientDate      string
	Quality         string
	DownloadFolder  string
	IntervalSeconds int
	Policy          string
	LogFile         string
}

// LoadEnv fills unset fields from the environment, reading a .env file first
// when one is present. Flags already set take precedence.
func LoadEnv(cfg *AppConfig) {
	_ = godotenv.Load()

	if cfg.CourseLink == "" {
		cfg.CourseLink = os.Getenv("COURSE_LINK")
	}
	if cfg.CookieData == "" {
		cfg.CookieData = os.Getenv("COOKIE_DATA")
	}
	if cfg.ClientDate == "" {
		cfg.ClientDate = os.Getenv("CLIENT_DATE")
	}
	if cfg.Quality == "" {
		cfg.Quality = os.Getenv("VIDEO_DOWNLOAD_QUALITY")
	}
	if cfg.Quality == "" {
		cfg.Quality = DefaultQuality
	}
}
