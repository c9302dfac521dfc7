package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Parindya2/TripRoute/internal/repository/ports"
)

const favoritesKey = "favorites"

// FavoriteService owns the favorites slice: an ordered set of destination IDs
// persisted to local storage on every mutation. Persistence failures are
// logged and never surfaced; the in-memory mutation always wins.
type FavoriteService struct {
	mu    sync.Mutex
	ids   []string
	store ports.KeyValueStore
}

func NewFavoriteService(store ports.KeyValueStore) *FavoriteService {
	return &FavoriteService{store: store}
}

// Restore loads the persisted set at session start. A missing record means an
// empty set; a corrupt one is logged and discarded.
func (s *FavoriteService) Restore() {
	data, err := s.store.Get(favoritesKey)
	if err != nil {
		if err != ports.ErrKeyNotFound {
			log.Printf("favorites: restore failed: %v", err)
		}
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Printf("favorites: corrupt persisted set: %v", err)
		return
	}
	s.Load(ids)
}

// Load replaces the whole set. Duplicate incoming ids collapse to one entry.
func (s *FavoriteService) Load(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = s.ids[:0]
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			s.ids = append(s.ids, id)
		}
	}
}

// Toggle removes id if present, inserts it otherwise, and reports whether the
// id is a favorite afterwards.
func (s *FavoriteService) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.removeLocked(id) {
		s.persistLocked()
		return false
	}
	s.ids = append(s.ids, id)
	s.persistLocked()
	return true
}

// Add inserts id. Adding an already-present id leaves the set unchanged but
// still persists.
func (s *FavoriteService) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.containsLocked(id) {
		s.ids = append(s.ids, id)
	}
	s.persistLocked()
}

// Remove deletes id. Removing an absent id is a no-op for the set but still
// persists.
func (s *FavoriteService) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(id)
	s.persistLocked()
}

// Clear empties the set and deletes the persisted record.
func (s *FavoriteService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = s.ids[:0]
	if err := s.store.Delete(favoritesKey); err != nil {
		log.Printf("favorites: delete persisted set: %v", err)
	}
}

func (s *FavoriteService) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

func (s *FavoriteService) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(id)
}

func (s *FavoriteService) containsLocked(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

func (s *FavoriteService) removeLocked(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (s *FavoriteService) persistLocked() {
	data, err := json.Marshal(s.ids)
	if err != nil {
		log.Printf("favorites: marshal set: %v", err)
		return
	}
	if err := s.store.Set(favoritesKey, data); err != nil {
		log.Printf("favorites: persist set: %v", err)
	}
}
