package domain

import "time"

// JournalEntry is one completed guidance exchange. Entries are immutable
// once appended; nothing in the journal edits or removes them.
type JournalEntry struct {
	ID        JournalEntryID `json:"id"`
	Faith     string         `json:"faith"`
	Path      Path           `json:"path"`
	Concern   string         `json:"concern"`
	Guidance  string         `json:"guidance"`
	CreatedAt time.Time      `json:"created_at"`
}
