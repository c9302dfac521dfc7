package ports

import (
	"context"

	"github.com/Parindya2/TripRoute/internal/domain"
)

// ScheduleRequest identifies one departure-board lookup. StationCode is the
// external network identifier (CRS code for train stations, ATCO code for bus
// stops); the mock source ignores it.
type ScheduleRequest struct {
	DestinationID   string
	DestinationName string
	StationName     string
	StationCode     string
	Mode            domain.TransportMode
}

// StationSource resolves bus stops and train stations near a coordinate.
type StationSource interface {
	NearbyStations(ctx context.Context, coord domain.Coordinates) ([]domain.NearbyStation, error)
}

// ScheduleSource resolves departure options for one transport mode.
type ScheduleSource interface {
	Schedules(ctx context.Context, req ScheduleRequest) ([]domain.TransportRoute, error)
}
