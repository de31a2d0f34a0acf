package config

import (
	"testing"
)

func validConfig() *AppConfig {
	return &AppConfig{
		CourseLink:      "https://courses.example.com/courses/take/cissp",
		CookieData:      "_session_id=abc",
		Quality:         DefaultQuality,
		DownloadFolder:  DefaultDownloadFolder,
		IntervalSeconds: DefaultIntervalSeconds,
		Policy:          PolicyQuiz,
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateConfig_MissingCourseLink(t *testing.T) {
	cfg := validConfig()
	cfg.CourseLink = ""
	if err := ValidateConfig(cfg); err == nil {
		t.Fatal("want error for missing course link")
	}
}

func TestValidateConfig_RelativeCourseLink(t *testing.T) {
	cfg := validConfig()
	cfg.CourseLink = "courses/take/cissp"
	if err := ValidateConfig(cfg); err == nil {
		t.Fatal("want error for relative course link")
	}
}

func TestValidateConfig_MissingCookie(t *testing.T) {
	cfg := validConfig()
	cfg.CookieData = ""
	if err := ValidateConfig(cfg); err == nil {
		t.Fatal("want error for missing cookie")
	}
}

func TestValidateConfig_UnknownPolicy(t *testing.T) {
	cfg := validConfig()
	cfg.Policy = "everything"
	if err := ValidateConfig(cfg); err == nil {
		t.Fatal("want error for unknown policy")
	}
}

func TestValidateConfig_NegativeInterval(t *testing.T) {
	cfg := validConfig()
	cfg.IntervalSeconds = -1
	if err := ValidateConfig(cfg); err == nil {
		t.Fatal("want error for negative interval")
	}
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("COURSE_LINK", "https://courses.example.com/x")
	t.Setenv("COOKIE_DATA", "_session_id=zzz")
	t.Setenv("VIDEO_DOWNLOAD_QUALITY", "")

	cfg := &AppConfig{}
	LoadEnv(cfg)

	if cfg.CourseLink != "https://courses.example.com/x" {
		t.Fatalf("course link not read from env, got %q", cfg.CourseLink)
	}
	if cfg.Quality != DefaultQuality {
		t.Fatalf("want default quality %s, got %q", DefaultQuality, cfg.Quality)
	}
}

func TestLoadEnv_FlagsTakePrecedence(t *testing.T) {
	t.Setenv("COURSE_LINK", "https://courses.example.com/env")
	t.Setenv("VIDEO_DOWNLOAD_QUALITY", "1080p")

	cfg := &AppConfig{CourseLink: "https://courses.example.com/flag", Quality: "480p"}
	LoadEnv(cfg)

	if cfg.CourseLink != "https://courses.example.com/flag" {
		t.Fatalf("flag value overridden, got %q", cfg.CourseLink)
	}
	if cfg.Quality != "480p" {
		t.Fatalf("flag quality overridden, got %q", cfg.Quality)
	}
}
