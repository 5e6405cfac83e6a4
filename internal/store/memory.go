package store

import (
	"sort"
	"sync"

	"github.com/yjb94/CulinaryClassWars/internal/models"
)

// ShowStore manages show storage
type ShowStore struct {
	shows map[string]*models.Show
	mu    sync.RWMutex
}

// NewShowStore creates a new show store
func NewShowStore() *ShowStore {
	return &ShowStore{
		shows: make(map[string]*models.Show),
	}
}

// Get retrieves a show by code
func (s *ShowStore) Get(code string) (*models.Show, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	show, exists := s.shows[code]
	return show, exists
}

// Set stores a show
func (s *ShowStore) Set(code string, show *models.Show) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shows[code] = show
}

// Delete removes a show and stops its reveal machine
func (s *ShowStore) Delete(code string) {
	s.mu.Lock()
	show, exists := s.shows[code]
	delete(s.shows, code)
	s.mu.Unlock()

	if exists && show.Reveal != nil {
		show.Reveal.Close()
	}
}

// Exists checks if a show code exists
func (s *ShowStore) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.shows[code]
	return exists
}

// Codes returns all show codes in sorted order
func (s *ShowStore) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.shows))
	for code := range s.shows {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// CloseAll removes every show, stopping their reveal machines
func (s *ShowStore) CloseAll() {
	for _, code := range s.Codes() {
		s.Delete(code)
	}
}
