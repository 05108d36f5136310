package services

import (
	"encoding/json"
	"fmt"

	"github.com/CJR1981/Macro-Tracker/models"
	"github.com/CJR1981/Macro-Tracker/storage"
)

// ProfileService is the per-user record store. Get assumes the caller has
// already established that the user exists (normally via the registry
// middleware); an absent blob is reported as ErrProfileNotFound.
type ProfileService struct {
	store storage.Store
}

func NewProfileService(store storage.Store) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) Get(user string) (*models.Profile, error) {
	raw, ok, err := s.store.Read(storage.ProfileKey(user))
	if err != nil {
		return nil, fmt.Errorf("read profile for %s: %w", user, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, user)
	}
	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode profile for %s: %w", user, err)
	}
	if p.Logs == nil {
		p.Logs = models.Logs{}
	}
	return &p, nil
}

// Set overwrites the whole profile.
func (s *ProfileService) Set(user string, p *models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile for %s: %w", user, err)
	}
	return s.store.Write(storage.ProfileKey(user), raw)
}

// ProfilePatch carries optional whole-field replacements. Patching is
// deliberately shallow: setting Goals replaces the entire goals object, and
// there is no way to reach inside Logs from here. Anything that needs to
// touch a nested value reads the full profile, mutates it, and calls Set.
type ProfilePatch struct {
	Logs   *models.Logs
	Goals  *models.Goals
	APIKey *string
}

func (s *ProfileService) Patch(user string, patch ProfilePatch) error {
	p, err := s.Get(user)
	if err != nil {
		return err
	}
	if patch.Logs != nil {
		p.Logs = *patch.Logs
	}
	if patch.Goals != nil {
		p.Goals = *patch.Goals
	}
	if patch.APIKey != nil {
		p.APIKey = *patch.APIKey
	}
	return s.Set(user, p)
}
