package service

import (
	"context"
	"sort"
	"sync"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/repository/ports"
)

// NearbyService owns the nearby-stations slice. Each fetch replaces the
// station list wholesale; a failed fetch records the error and leaves the
// previously fetched stations untouched. Every fetch is tagged with a
// generation token so a slow earlier request cannot overwrite a faster later
// one.
type NearbyService struct {
	source ports.StationSource

	mu         sync.Mutex
	stations   []domain.NearbyStation
	location   *domain.Coordinates
	loading    bool
	lastError  string
	generation uint64
}

func NewNearbyService(source ports.StationSource) *NearbyService {
	return &NearbyService{source: source}
}

// Fetch resolves stations near coord and applies the result unless a newer
// fetch has been issued in the meantime. The returned slice is the fetch's own
// result either way.
func (s *NearbyService) Fetch(ctx context.Context, coord domain.Coordinates) ([]domain.NearbyStation, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.lastError = ""
	c := coord
	s.location = &c
	s.mu.Unlock()

	stations, err := s.source.NearbyStations(ctx, coord)
	if err == nil {
		sort.Slice(stations, func(i, j int) bool {
			return stations[i].Distance < stations[j].Distance
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// Superseded by a newer request; do not touch the slice state.
		return stations, err
	}

	s.loading = false
	if err != nil {
		s.lastError = err.Error()
		return nil, err
	}

	s.stations = stations
	return append([]domain.NearbyStation(nil), stations...), nil
}

// Stations returns the last successfully fetched list, sorted by distance.
func (s *NearbyService) Stations() []domain.NearbyStation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.NearbyStation(nil), s.stations...)
}

// StationsByMode is a pure derived filter; the slice is never pre-partitioned.
func (s *NearbyService) StationsByMode(mode domain.TransportMode) []domain.NearbyStation {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]domain.NearbyStation, 0, len(s.stations))
	for _, station := range s.stations {
		if station.Mode == mode {
			filtered = append(filtered, station)
		}
	}
	return filtered
}

func (s *NearbyService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message recorded by the last failed fetch, or "".
func (s *NearbyService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

func (s *NearbyService) Location() *domain.Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.location == nil {
		return nil
	}
	c := *s.location
	return &c
}
