package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultLogFile run log file name, created in the working directory
	DefaultLogFile = "downloader.log"
)

// New build a run scoped logger writing to both console and log file.
// If the log file cannot be opened the logger falls back to console only.
func New(logFilePath string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetReportCaller(false)
	log.SetLevel(logrus.InfoLevel)

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Warn("Failed to log to file, using default stderr")
		return log
	}
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	return log
}
