package services

import (
	"fmt"

	"github.com/CJR1981/Macro-Tracker/storage"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeService persists the light/dark flag independently of any profile.
type ThemeService struct {
	store storage.Store
}

func NewThemeService(store storage.Store) *ThemeService {
	return &ThemeService{store: store}
}

func (s *ThemeService) Get() (string, error) {
	raw, ok, err := s.store.Read(storage.ThemeKey)
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	if !ok {
		return ThemeLight, nil
	}
	return string(raw), nil
}

func (s *ThemeService) Set(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: %q", ErrBadTheme, theme)
	}
	return s.store.Write(storage.ThemeKey, []byte(theme))
}

// Toggle flips the stored theme and returns the new value.
func (s *ThemeService) Toggle() (string, error) {
	cur, err := s.Get()
	if err != nil {
		return "", err
	}
	next := ThemeDark
	if cur == ThemeDark {
		next = ThemeLight
	}
	if err := s.Set(next); err != nil {
		return "", err
	}
	return next, nil
}
