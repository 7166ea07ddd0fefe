package engine

// FileType identifies the kind of filesystem entry as reported by lstat.
type FileType int

const (
	Other FileType = iota
	Directory
	RegularFile
	SymbolicLink
)

func (t FileType) String() string {
	switch t {
	case Directory:
		return "directory"
	case RegularFile:
		return "regular file"
	case SymbolicLink:
		return "symbolic link"
	default:
		return "other"
	}
}

// task is one unit of walker work: a source path and its position relative
// to the snapshot label root.
type task struct {
	src string
	rel string
}

// EntryFailure records a per-entry error against the source path it
// occurred on.
type EntryFailure struct {
	Err  error
	Path string
}

// Skip records an entry that was deliberately not mirrored.
type Skip struct {
	Path   string
	Reason string
}
