package course

// Status is the terminal state of one content item.
type Status int

const (
	// StatusDownloaded ...
	StatusDownloaded Status = iota
	// StatusSkipped ...
	StatusSkipped
	// StatusFailed ...
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDownloaded:
		return "Downloaded"
	case StatusSkipped:
		return "Skipped"
	case StatusFailed:
		return "Failed"
	}
	return "Unknown"
}
