package driver

// FileStatus is the outcome reported for one file.
type FileStatus uint8

const (
	// StatusUnchanged: the file was already formatted.
	StatusUnchanged FileStatus = iota
	// StatusCached: the cache says the file is formatted; it was not parsed.
	StatusCached
	// StatusChanged: formatting changes (or changed) the file.
	StatusChanged
	// StatusFailed: the file could not be formatted.
	StatusFailed
)

func (s FileStatus) String() string {
	switch s {
	case StatusCached:
		return "cached"
	case StatusChanged:
		return "changed"
	case StatusFailed:
		return "failed"
	}
	return "ok"
}

// ProgressEvent is sent after each file finishes. Done counts finished
// files including this one.
type ProgressEvent struct {
	Path   string
	Status FileStatus
	Done   int
	Total  int
}

// ProgressFunc receives events from worker goroutines; it must be safe for
// concurrent use.
type ProgressFunc func(ProgressEvent)
