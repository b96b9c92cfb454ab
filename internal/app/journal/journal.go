package journal

import (
	"iter"

	"github.com/PabloGalante/life-guide/internal/domain"
)

// Journal is the append-only log of completed guidance exchanges for one
// session. It is owned by a single session and is not safe for concurrent
// use on its own.
type Journal struct {
	entries []domain.JournalEntry
}

func New() *Journal {
	return &Journal{}
}

// Append always succeeds and keeps creation order. Nothing is deduplicated.
func (j *Journal) Append(entry domain.JournalEntry) {
	j.entries = append(j.entries, entry)
}

func (j *Journal) Count() int {
	return len(j.entries)
}

// Chronological yields entries oldest first. Each range over the returned
// sequence is an independent traversal of the entries present when
// Chronological was called.
func (j *Journal) Chronological() iter.Seq[domain.JournalEntry] {
	snapshot := j.entries[:len(j.entries):len(j.entries)]
	return func(yield func(domain.JournalEntry) bool) {
		for _, e := range snapshot {
			if !yield(e) {
				return
			}
		}
	}
}

// MostRecentFirst yields entries newest first without reordering storage.
func (j *Journal) MostRecentFirst() iter.Seq[domain.JournalEntry] {
	snapshot := j.entries[:len(j.entries):len(j.entries)]
	return func(yield func(domain.JournalEntry) bool) {
		for i := len(snapshot) - 1; i >= 0; i-- {
			if !yield(snapshot[i]) {
				return
			}
		}
	}
}

// Recent returns the last `limit` entries, newest first.
// If limit <= 0, returns all.
func (j *Journal) Recent(limit int) []domain.JournalEntry {
	if limit <= 0 || limit > len(j.entries) {
		limit = len(j.entries)
	}

	out := make([]domain.JournalEntry, 0, limit)
	for e := range j.MostRecentFirst() {
		if len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out
}
