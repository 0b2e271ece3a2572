// Package journal implements the per-branch journal model: branch name
// normalization, folder location, template rendering, and the
// section-preserving content rewrites the updater applies.
package journal

// Timestamp layouts used throughout the journal content and folder names.
const (
	// TimestampLayout formats the metadata and log entry timestamps.
	TimestampLayout = "2006-01-02 15:04"

	// DateLayout formats folder name prefixes and same-day entry detection.
	DateLayout = "2006-01-02"
)
