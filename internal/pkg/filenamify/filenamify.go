package filenamify

import (
	"regexp"
	"strings"
)

const (
	// MaxFileNameLength ...
	MaxFileNameLength = 50
)

var forbiddenCharsRegex = regexp.MustCompile(`[<>:"/\\|?*]`)

// Filenamify convert a string to a valid safe filename:
// forbidden characters are removed, spaces and dots become underscores,
// the result is truncated to MaxFileNameLength and outer underscores stripped.
func Filenamify(str string) string {
	return Limit(str, MaxFileNameLength)
}

// Limit is Filenamify with a caller supplied max length.
func Limit(str string, maxLength int) string {
	str = forbiddenCharsRegex.ReplaceAllString(str, "")
	str = strings.ReplaceAll(str, " ", "_")
	str = strings.ReplaceAll(str, ".", "_")

	strBuf := []rune(str)
	if len(strBuf) > maxLength {
		strBuf = strBuf[:maxLength]
	}

	return strings.Trim(string(strBuf), "_")
}
