package theme

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/storybox/internal/logger"
)

// Binding applies a preference to whatever renders the root surface.
type Binding func(Preference)

// Service owns the current preference. It reads the store once, and every
// change is written through before the binding is notified.
type Service struct {
	store   Store
	log     *logger.Logger
	mu      sync.Mutex
	current Preference
	binding Binding
}

// Option customises a Service.
type Option func(*Service)

// WithLogger attaches a logger for load and save failures.
func WithLogger(log *logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService loads the persisted preference, falling back to Default, and
// applies it to binding when one is given.
func NewService(store Store, binding Binding, opts ...Option) *Service {
	s := &Service{store: store, binding: binding, log: logger.Nop(), current: Default}
	for _, opt := range opts {
		opt(s)
	}

	if store != nil {
		p, err := store.Load()
		if err != nil {
			s.log.Warn(fmt.Sprintf("theme preference unreadable, using %s: %v", Default, err))
		}
		if p.Valid() {
			s.current = p
		}
	}

	if s.binding != nil {
		s.binding(s.current)
	}
	return s
}

// Bind replaces the binding and applies the current preference to it.
func (s *Service) Bind(binding Binding) {
	s.mu.Lock()
	s.binding = binding
	current := s.current
	s.mu.Unlock()

	if binding != nil {
		binding(current)
	}
}

// Current returns the applied preference.
func (s *Service) Current() Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set persists p and then applies it. On a write failure the current
// preference is left unchanged.
func (s *Service) Set(p Preference) error {
	if !p.Valid() {
		return fmt.Errorf("unknown theme %q", p)
	}

	s.mu.Lock()
	if s.store != nil {
		if err := s.store.Save(p); err != nil {
			s.mu.Unlock()
			s.log.Error(err, "persist theme preference")
			return err
		}
	}
	s.current = p
	binding := s.binding
	s.mu.Unlock()

	if binding != nil {
		binding(p)
	}
	return nil
}

// Toggle flips between Light and Dark and returns the new preference.
func (s *Service) Toggle() (Preference, error) {
	next := s.Current().Toggled()
	if err := s.Set(next); err != nil {
		return s.Current(), err
	}
	return next, nil
}
