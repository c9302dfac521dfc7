package service

import (
	"context"
	"sync"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/repository/ports"
)

// DestinationContext records which destination/station the current route
// lists belong to.
type DestinationContext struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StationName string `json:"station_name"`
}

// RouteSet is the result of fetching both modes at once.
type RouteSet struct {
	Train []domain.TransportRoute `json:"train"`
	Bus   []domain.TransportRoute `json:"bus"`
}

// ScheduleService owns the transport-schedule slice: independent route lists
// per mode, the selected mode, and the async fetch lifecycle. Switching modes
// never clears the other mode's routes, so a switch is instantaneous. A fetch
// failure leaves both lists untouched. Generation tokens drop results from
// superseded fetches.
type ScheduleService struct {
	source ports.ScheduleSource

	mu          sync.Mutex
	trainRoutes []domain.TransportRoute
	busRoutes   []domain.TransportRoute
	selected    domain.TransportMode
	current     *DestinationContext
	loading     bool
	lastError   string
	generation  uint64
}

func NewScheduleService(source ports.ScheduleSource) *ScheduleService {
	return &ScheduleService{
		source:   source,
		selected: domain.ModeTrain,
	}
}

// Fetch resolves routes for one mode and stores them under that mode.
func (s *ScheduleService) Fetch(ctx context.Context, req ports.ScheduleRequest) ([]domain.TransportRoute, error) {
	gen := s.begin()

	routes, err := s.source.Schedules(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return routes, err
	}

	s.loading = false
	if err != nil {
		s.lastError = err.Error()
		return nil, err
	}

	s.setRoutesLocked(req.Mode, routes)
	s.current = &DestinationContext{
		ID:          req.DestinationID,
		Name:        req.DestinationName,
		StationName: req.StationName,
	}
	return append([]domain.TransportRoute(nil), routes...), nil
}

// FetchAll resolves both modes for the given destination/station. The bus
// lookup departs from the station's bus stop counterpart.
func (s *ScheduleService) FetchAll(ctx context.Context, req ports.ScheduleRequest) (*RouteSet, error) {
	gen := s.begin()

	trainReq := req
	trainReq.Mode = domain.ModeTrain
	trains, err := s.source.Schedules(ctx, trainReq)
	if err == nil {
		busReq := req
		busReq.Mode = domain.ModeBus
		busReq.StationName = req.StationName + " Bus Stop"
		var buses []domain.TransportRoute
		buses, err = s.source.Schedules(ctx, busReq)
		if err == nil {
			return s.applyAll(gen, req, trains, buses)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.generation {
		s.loading = false
		s.lastError = err.Error()
	}
	return nil, err
}

func (s *ScheduleService) applyAll(gen uint64, req ports.ScheduleRequest, trains, buses []domain.TransportRoute) (*RouteSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := &RouteSet{
		Train: append([]domain.TransportRoute(nil), trains...),
		Bus:   append([]domain.TransportRoute(nil), buses...),
	}
	if gen != s.generation {
		return set, nil
	}

	s.loading = false
	s.trainRoutes = trains
	s.busRoutes = buses
	s.current = &DestinationContext{
		ID:          req.DestinationID,
		Name:        req.DestinationName,
		StationName: req.StationName,
	}
	return set, nil
}

func (s *ScheduleService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loading = true
	s.lastError = ""
	return s.generation
}

// SetMode changes the selected mode. Routes for the previous mode persist.
func (s *ScheduleService) SetMode(mode domain.TransportMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = mode
}

func (s *ScheduleService) Mode() domain.TransportMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Routes returns the stored list for a mode.
func (s *ScheduleService) Routes(mode domain.TransportMode) []domain.TransportRoute {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode == domain.ModeBus {
		return append([]domain.TransportRoute(nil), s.busRoutes...)
	}
	return append([]domain.TransportRoute(nil), s.trainRoutes...)
}

// SelectedRoutes returns the list for the currently selected mode.
func (s *ScheduleService) SelectedRoutes() []domain.TransportRoute {
	return s.Routes(s.Mode())
}

func (s *ScheduleService) Current() *DestinationContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

func (s *ScheduleService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ScheduleService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Clear drops both route lists and the destination context.
func (s *ScheduleService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trainRoutes = nil
	s.busRoutes = nil
	s.current = nil
	s.lastError = ""
}

func (s *ScheduleService) setRoutesLocked(mode domain.TransportMode, routes []domain.TransportRoute) {
	if mode == domain.ModeBus {
		s.busRoutes = routes
		return
	}
	s.trainRoutes = routes
}
