package session

import "github.com/PabloGalante/life-guide/internal/domain"

// Preferences is what the seeker asked us to remember for this session.
type Preferences struct {
	Faith        string      `json:"faith"`
	FavoritePath domain.Path `json:"favorite_path"`
}

// PreferenceUpdate is a partial update; nil fields keep their value.
type PreferenceUpdate struct {
	Faith        *string
	FavoritePath *domain.Path
}

// PreferenceStore holds the current Preferences of one session.
type PreferenceStore struct {
	prefs Preferences
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{
		prefs: Preferences{FavoritePath: domain.PathFindHelp},
	}
}

func (s *PreferenceStore) Update(u PreferenceUpdate) {
	if u.Faith != nil {
		s.prefs.Faith = *u.Faith
	}
	if u.FavoritePath != nil {
		s.prefs.FavoritePath = *u.FavoritePath
	}
}

// Current returns a copy; changing it does not affect the store.
func (s *PreferenceStore) Current() Preferences {
	return s.prefs
}
