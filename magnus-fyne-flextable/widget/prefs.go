package widget

import (
	"fyne.io/fyne/v2"

	"github.com/magpierre/fyne-flextable/flextable"
)

// PreferencesStore persists column widths through a Fyne preferences
// backend, so they survive application restarts.
type PreferencesStore struct {
	prefs fyne.Preferences
}

var _ flextable.PreferenceStore = (*PreferencesStore)(nil)

// NewPreferencesStore wraps the given preferences, typically
// app.Preferences().
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

func (s *PreferencesStore) Get(key string) (string, error) {
	value := s.prefs.String(key)
	if value == "" {
		return "", flextable.ErrNoStoredValue
	}
	return value, nil
}

func (s *PreferencesStore) Set(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}
