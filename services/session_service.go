package services

import (
	"fmt"
	"sync"
)

// SessionService holds the active username, the one piece of state that
// outlives a single request. It is never persisted; a restart starts with
// no active user.
type SessionService struct {
	mu       sync.RWMutex
	active   string
	registry *RegistryService
}

func NewSessionService(registry *RegistryService) *SessionService {
	return &SessionService{registry: registry}
}

func (s *SessionService) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Switch makes name the active user; name must already be registered.
func (s *SessionService) Switch(name string) error {
	ok, err := s.registry.Exists(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUser, name)
	}
	s.mu.Lock()
	s.active = name
	s.mu.Unlock()
	return nil
}
