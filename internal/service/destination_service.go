package service

import (
	"strings"
	"sync"

	"github.com/Parindya2/TripRoute/internal/domain"
)

// DestinationService owns the destination catalog slice: the immutable item
// list plus the live search/category filter state.
type DestinationService struct {
	mu       sync.RWMutex
	items    []domain.Destination
	query    string
	category string
}

func NewDestinationService(items []domain.Destination) *DestinationService {
	return &DestinationService{
		items:    items,
		category: domain.CategoryAll,
	}
}

// All returns the full catalog.
func (s *DestinationService) All() []domain.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Destination(nil), s.items...)
}

func (s *DestinationService) ByID(id string) (*domain.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			d := s.items[i]
			return &d, nil
		}
	}
	return nil, ErrDestinationNotFound
}

// Filter applies the search query and category to the catalog. The query is a
// case-insensitive substring match on name and location; the category is an
// exact match, with CategoryAll disabling it. Both compose with AND. An empty
// result is a valid empty slice.
func (s *DestinationService) Filter(query, category string) []domain.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterDestinations(s.items, query, category)
}

func (s *DestinationService) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

func (s *DestinationService) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
}

func (s *DestinationService) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.category = domain.CategoryAll
}

// Filtered is the derived view under the current filter state.
func (s *DestinationService) Filtered() []domain.Destination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterDestinations(s.items, s.query, s.category)
}

func filterDestinations(items []domain.Destination, query, category string) []domain.Destination {
	results := make([]domain.Destination, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(query))
	for _, d := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Location), search) {
			continue
		}
		if category != "" && category != domain.CategoryAll &&
			d.Category != strings.ToLower(category) {
			continue
		}
		results = append(results, d)
	}
	return results
}
