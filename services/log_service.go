package services

import (
	"fmt"
	"strings"

	"github.com/CJR1981/Macro-Tracker/models"
)

// LogService mutates a profile's per-date, per-meal food log. Every edit
// reads the full profile, changes it in memory, and writes the full profile
// back; the shallow Patch API cannot reach into logs.
type LogService struct {
	profiles *ProfileService
}

func NewLogService(profiles *ProfileService) *LogService {
	return &LogService{profiles: profiles}
}

// AppendFood adds entry to the end of logs[date][meal], creating the date
// and meal containers on first use.
func (s *LogService) AppendFood(user, date, meal string, entry models.FoodEntry) error {
	if !models.IsMealName(meal) {
		return fmt.Errorf("%w: %q", ErrUnknownMeal, meal)
	}
	if strings.TrimSpace(entry.Name) == "" {
		return ErrEmptyFoodName
	}

	p, err := s.profiles.Get(user)
	if err != nil {
		return err
	}
	if p.Logs[date] == nil {
		p.Logs[date] = models.DayLog{}
	}
	p.Logs[date][meal] = append(p.Logs[date][meal], entry)
	return s.profiles.Set(user, p)
}

// RemoveFood deletes the index-th entry of logs[date][meal]. The index is
// positional and only valid against the sequence as last rendered; there is
// no stable entry identity.
func (s *LogService) RemoveFood(user, date, meal string, index int) error {
	if !models.IsMealName(meal) {
		return fmt.Errorf("%w: %q", ErrUnknownMeal, meal)
	}

	p, err := s.profiles.Get(user)
	if err != nil {
		return err
	}
	items := p.Entries(date, meal)
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(items))
	}
	p.Logs[date][meal] = append(items[:index], items[index+1:]...)
	return s.profiles.Set(user, p)
}

// ClearLogs wipes every day's log for the user. Irreversible; the HTTP
// boundary demands an explicit confirmation flag before calling this.
func (s *LogService) ClearLogs(user string) error {
	p, err := s.profiles.Get(user)
	if err != nil {
		return err
	}
	p.Logs = models.Logs{}
	return s.profiles.Set(user, p)
}
