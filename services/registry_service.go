package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CJR1981/Macro-Tracker/models"
	"github.com/CJR1981/Macro-Tracker/storage"
)

// RegistryService keeps the ordered list of known usernames. The list only
// grows; there is no removal path.
type RegistryService struct {
	store    storage.Store
	profiles *ProfileService
}

func NewRegistryService(store storage.Store, profiles *ProfileService) *RegistryService {
	return &RegistryService{store: store, profiles: profiles}
}

// ListUsers returns usernames in insertion order. A missing registry blob is
// an empty registry, not an error.
func (s *RegistryService) ListUsers() ([]string, error) {
	raw, ok, err := s.store.Read(storage.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("read user registry: %w", err)
	}
	if !ok {
		return []string{}, nil
	}
	var users []string
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode user registry: %w", err)
	}
	return users, nil
}

func (s *RegistryService) Exists(name string) (bool, error) {
	users, err := s.ListUsers()
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u == name {
			return true, nil
		}
	}
	return false, nil
}

// AddUser appends name to the registry and creates its profile with default
// goals and empty logs. Adding an existing name is a no-op and leaves the
// existing profile untouched. The registry write and the profile write are
// two separate key writes; a crash between them leaves an orphaned registry
// entry that later Get calls will report as ErrProfileNotFound.
func (s *RegistryService) AddUser(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	users, err := s.ListUsers()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u == name {
			return nil
		}
	}

	users = append(users, name)
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user registry: %w", err)
	}
	if err := s.store.Write(storage.UsersKey, raw); err != nil {
		return fmt.Errorf("write user registry: %w", err)
	}
	return s.profiles.Set(name, models.NewProfile())
}
