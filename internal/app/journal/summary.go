package journal

import (
	"github.com/PabloGalante/life-guide/internal/domain"
)

const (
	DefaultConcernLimit  = 150
	DefaultGuidanceLimit = 300

	truncationMarker = "..."
)

// Summary is a shortened view of an entry for history listings.
type Summary struct {
	ConcernSnippet  string `json:"concern_snippet"`
	GuidanceSnippet string `json:"guidance_snippet"`
}

// Summarize cuts concern and guidance to the given number of characters and
// marks the cut. Text that already fits is returned as is. The entry itself
// is never modified.
func Summarize(entry domain.JournalEntry, concernLimit, guidanceLimit int) Summary {
	return Summary{
		ConcernSnippet:  truncate(entry.Concern, concernLimit),
		GuidanceSnippet: truncate(entry.Guidance, guidanceLimit),
	}
}

func DefaultSummary(entry domain.JournalEntry) Summary {
	return Summarize(entry, DefaultConcernLimit, DefaultGuidanceLimit)
}

func truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}

	// Count characters, not bytes, so multi-byte text is never split.
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + truncationMarker
		}
		n++
	}
	return s
}
