package ui

import (
	"fmt"

	"github.com/bamsammich/snap/internal/stats"
)

// CompletionSummary builds the final summary line for a snapshot.
// Format: done ✓  label 2026.01.02.03.04.05  files 48,917  new 1,204  reused 47,713  copied 2.1 GB  time 3m 17s  errors 0
func CompletionSummary(label string, snap stats.Snapshot) string {
	icon := "✓"
	if snap.FilesFailed > 0 {
		icon = "✗"
	}
	copied := snap.BytesStored + snap.BytesSent + snap.BytesReceived

	base := fmt.Sprintf("done %s  label %s  files %s  new %s  reused %s  copied %s  time %s",
		icon,
		label,
		FormatCount(snap.FilesLinked),
		FormatCount(snap.BlobsCreated),
		FormatCount(snap.BlobsReused),
		FormatBytes(copied),
		FormatDuration(snap.Elapsed),
	)
	if snap.FilesSkipped > 0 {
		base += fmt.Sprintf("  skipped %s", FormatCount(snap.FilesSkipped))
	}
	return base + fmt.Sprintf("  errors %d", snap.FilesFailed)
}
