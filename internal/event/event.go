package event

import "time"

// Type identifies the kind of event.
type Type int

const (
	DirScanned Type = iota + 1
	FileHashed
	BlobStored
	BlobReused
	BlobRequested
	LinkCreated
	EntrySkipped
	EntryFailed
)

var typeNames = [...]string{
	DirScanned:    "DirScanned",
	FileHashed:    "FileHashed",
	BlobStored:    "BlobStored",
	BlobReused:    "BlobReused",
	BlobRequested: "BlobRequested",
	LinkCreated:   "LinkCreated",
	EntrySkipped:  "EntrySkipped",
	EntryFailed:   "EntryFailed",
}

func (t Type) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Category groups event types under the CLI verbosity selectors.
type Category string

const (
	CategoryScan Category = "scan"
	CategoryCopy Category = "copy"
	CategoryLink Category = "link"
	// CategoryAlways covers skips and failures, which are logged regardless
	// of the selected categories.
	CategoryAlways Category = ""
)

// Category returns the verbosity category of t.
func (t Type) Category() Category {
	switch t {
	case DirScanned, FileHashed:
		return CategoryScan
	case BlobStored, BlobReused, BlobRequested:
		return CategoryCopy
	case LinkCreated:
		return CategoryLink
	default:
		return CategoryAlways
	}
}

// Event represents a single progress event from the engine.
type Event struct {
	Timestamp time.Time
	Error     error
	Type      Type
	Path      string // source path, or destination path for remote links
	Blob      string // blob path or content address
	Size      int64
}

// Emit sends ev on ch without blocking. Nil channels are ignored. Events are
// best-effort observability, so a full channel drops the event rather than
// stalling a walker task.
func Emit(ch chan<- Event, ev Event) {
	if ch == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	select {
	case ch <- ev:
	default:
	}
}
