package files

import (
	"errors"
	"os"
)

// CheckFileExists check if file exists
func CheckFileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !errors.Is(err, os.ErrNotExist)
}

// CheckFileNonEmpty check if file exists and holds at least one byte.
// A zero length file is a leftover from an aborted run and must be redownloaded.
func CheckFileNonEmpty(filePath string) bool {
	fi, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return fi.Size() > 0
}

// MkDirAll create directory if not exists
func MkDirAll(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return os.MkdirAll(path, os.ModePerm)
	}
	return nil
}

// SaveTextFile write text content to file
func SaveTextFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
