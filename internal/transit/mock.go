package transit

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/repository/ports"
)

var trainOperators = []string{
	"Great Western Railway",
	"London North Eastern Railway",
	"Avanti West Coast",
	"CrossCountry",
	"TransPennine Express",
	"Southern",
	"Thameslink",
}

var busOperators = []string{
	"Stagecoach",
	"First Bus",
	"Arriva",
	"National Express",
	"Go-Ahead",
}

var trainStationNames = []string{
	"Kings Cross", "Victoria", "Paddington", "Liverpool Street", "Waterloo",
}

var busStopNames = []string{
	"High Street", "Station Road", "Market Place", "Church Street",
	"Park Lane", "Mill Road", "Bridge Street", "Chapel Street",
}

const (
	mockTrainStationCount = 5
	mockBusStopCount      = 8
	mockTrainRouteCount   = 12
	mockBusRouteCount     = 15
)

// MockSource produces synthetic stations and departure boards in place of the
// live transport feed. Shapes are deterministic (counts, operators, id layout);
// times, distances and prices are randomized. Safe for concurrent use.
type MockSource struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewMockSource builds a mock feed. A seed of zero selects a time-based seed.
func NewMockSource(seed int64) *MockSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockSource{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// NearbyStations returns 5 train stations and 8 bus stops jittered around the
// given coordinate, each 0.1 to 2.1 km away, sorted ascending by distance.
func (m *MockSource) NearbyStations(ctx context.Context, coord domain.Coordinates) ([]domain.NearbyStation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stations := make([]domain.NearbyStation, 0, mockTrainStationCount+mockBusStopCount)
	for i := 0; i < mockTrainStationCount; i++ {
		stations = append(stations, domain.NearbyStation{
			ID:        fmt.Sprintf("train-station-%d", i),
			Name:      trainStationNames[i] + " Station",
			Mode:      domain.ModeTrain,
			Distance:  0.1 + m.rng.Float64()*2,
			Latitude:  coord.Latitude + (m.rng.Float64()-0.5)*0.02,
			Longitude: coord.Longitude + (m.rng.Float64()-0.5)*0.02,
			ATCOCode:  fmt.Sprintf("910G%d", 1000+i),
		})
	}
	for i := 0; i < mockBusStopCount; i++ {
		stations = append(stations, domain.NearbyStation{
			ID:        fmt.Sprintf("bus-stop-%d", i),
			Name:      busStopNames[i],
			Mode:      domain.ModeBus,
			Distance:  0.1 + m.rng.Float64()*2,
			Latitude:  coord.Latitude + (m.rng.Float64()-0.5)*0.02,
			Longitude: coord.Longitude + (m.rng.Float64()-0.5)*0.02,
			ATCOCode:  fmt.Sprintf("490%d", 10000+i),
		})
	}

	sort.Slice(stations, func(i, j int) bool {
		return stations[i].Distance < stations[j].Distance
	})
	return stations, nil
}

// Schedules generates a departure board for one mode. Departures are spaced
// roughly 15 minutes apart starting from now, with up to 10 minutes of jitter.
func (m *MockSource) Schedules(ctx context.Context, req ports.ScheduleRequest) ([]domain.TransportRoute, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch req.Mode {
	case domain.ModeTrain:
		return m.trainRoutes(req), nil
	case domain.ModeBus:
		return m.busRoutes(req), nil
	default:
		return nil, fmt.Errorf("transit: unknown transport mode %q", req.Mode)
	}
}

func (m *MockSource) trainRoutes(req ports.ScheduleRequest) []domain.TransportRoute {
	times := m.departureTimes(mockTrainRouteCount)
	routes := make([]domain.TransportRoute, 0, len(times))

	for i, departure := range times {
		duration := 45 + m.rng.Intn(90)
		arrival, _ := AddToClock(departure, duration)
		operator := trainOperators[i%len(trainOperators)]

		status := "On time"
		if i >= 2 && m.rng.Float64() > 0.9 {
			status = "Delayed 5 min"
		}

		routes = append(routes, domain.TransportRoute{
			ID:                fmt.Sprintf("train-%d", i),
			Mode:              domain.ModeTrain,
			VehicleName:       operator,
			VehicleNumber:     fmt.Sprintf("%d", 1000+m.rng.Intn(9000)),
			DepartureLocation: req.StationName,
			DepartureTime:     departure,
			ArrivalLocation:   req.DestinationName,
			ArrivalTime:       arrival,
			Duration:          FormatDuration(duration),
			Price:             15 + m.rng.Intn(85),
			Rating:            4.0 + m.rng.Float64(),
			Operator:          operator,
			Platform:          fmt.Sprintf("%d", 1+m.rng.Intn(12)),
			Status:            status,
		})
	}
	return routes
}

func (m *MockSource) busRoutes(req ports.ScheduleRequest) []domain.TransportRoute {
	times := m.departureTimes(mockBusRouteCount)
	routes := make([]domain.TransportRoute, 0, len(times))

	for i, departure := range times {
		duration := 25 + m.rng.Intn(60)
		arrival, _ := AddToClock(departure, duration)
		operator := busOperators[i%len(busOperators)]

		routes = append(routes, domain.TransportRoute{
			ID:                fmt.Sprintf("bus-%d", i),
			Mode:              domain.ModeBus,
			VehicleName:       fmt.Sprintf("%s - Route %d", operator, 10+i),
			VehicleNumber:     fmt.Sprintf("%d", 10+i),
			DepartureLocation: req.StationName,
			DepartureTime:     departure,
			ArrivalLocation:   req.DestinationName,
			ArrivalTime:       arrival,
			Duration:          FormatDuration(duration),
			Price:             2 + m.rng.Intn(8),
			Rating:            3.8 + m.rng.Float64(),
			Operator:          operator,
			Status:            "On time",
		})
	}
	return routes
}

func (m *MockSource) departureTimes(count int) []string {
	now := m.now()
	times := make([]string, 0, count)
	for i := 0; i < count; i++ {
		offset := time.Duration(i*15+m.rng.Intn(10)) * time.Minute
		times = append(times, now.Add(offset).Format("15:04"))
	}
	return times
}
