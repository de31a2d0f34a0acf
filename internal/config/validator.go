package config

import (
	"fmt"
	"net/url"
)

// ValidateConfig validates the application configuration.
// It runs before any network call so missing credentials fail fast.
func ValidateConfig(cfg *AppConfig) error {
	if err := validateCourseLink(cfg); err != nil {
		return err
	}
	if err := validateCookie(cfg); err != nil {
		return err
	}
	if err := validatePolicy(cfg); err != nil {
		return err
	}
	if err := validateInterval(cfg); err != nil {
		return err
	}
	return nil
}

func validateCourseLink(cfg *AppConfig) error {
	if cfg.CourseLink == "" {
		return fmt.Errorf("COURSE_LINK must be set in the environment or via --course")
	}
	u, err := url.Parse(cfg.CourseLink)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("COURSE_LINK %q is not a valid absolute URL", cfg.CourseLink)
	}
	return nil
}

func validateCookie(cfg *AppConfig) error {
	if cfg.CookieData == "" {
		return fmt.Errorf("COOKIE_DATA must be set in the environment or via --cookie")
	}
	return nil
}

func validatePolicy(cfg *AppConfig) error {
	validPolicies := []string{PolicyQuiz, PolicyLessonsOnly}

	for _, v := range validPolicies {
		if cfg.Policy == v {
			return nil
		}
	}
	return fmt.Errorf("argument 'policy' is not valid, must be one of %s, %s", PolicyQuiz, PolicyLessonsOnly)
}

func validateInterval(cfg *AppConfig) error {
	if cfg.IntervalSeconds < 0 {
		return fmt.Errorf("argument 'interval' is not valid, must be zero or positive")
	}
	return nil
}
