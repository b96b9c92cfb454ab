// Package theme resolves what a seeker types or picks into a faith theme.
package theme

import (
	"fmt"
	"strings"

	"github.com/PabloGalante/life-guide/internal/domain"
)

// Resolver maps faith input onto the catalog. It only decides; applying
// the theme is the caller's job.
type Resolver struct {
	faiths []domain.FaithThemeEntry
}

func NewResolver() *Resolver {
	return &Resolver{faiths: domain.Faiths()}
}

// ResolveByFreeText matches when the input contains a canonical key or a
// key contains the input, ignoring case. Keys are tried in declaration
// order and the first hit wins.
func (r *Resolver) ResolveByFreeText(input string) (domain.FaithThemeEntry, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return domain.FaithThemeEntry{}, r.noMatch(input)
	}

	for _, f := range r.faiths {
		key := strings.ToLower(f.Name)
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return f, nil
		}
	}
	return domain.FaithThemeEntry{}, r.noMatch(input)
}

// ResolveExplicit is used when the faith comes from the enumerated list.
func (r *Resolver) ResolveExplicit(faithKey string) (domain.FaithThemeEntry, error) {
	if f, ok := domain.LookupFaith(faithKey); ok {
		return f, nil
	}
	return domain.FaithThemeEntry{}, fmt.Errorf("faith %q: %w", faithKey, domain.ErrNotFound)
}

func (r *Resolver) noMatch(input string) error {
	names := make([]string, 0, len(r.faiths))
	for _, f := range r.faiths {
		names = append(names, f.Name)
	}
	return &domain.NoMatchError{Input: input, Available: names}
}
