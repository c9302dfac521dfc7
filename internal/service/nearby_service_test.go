package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Parindya2/TripRoute/internal/domain"
)

type fakeStationSource struct {
	stations []domain.NearbyStation
	err      error
}

func (f *fakeStationSource) NearbyStations(ctx context.Context, coord domain.Coordinates) ([]domain.NearbyStation, error) {
	return f.stations, f.err
}

// slowStationSource blocks its first call until released; later calls return
// immediately. Used to interleave an old in-flight fetch with a newer one.
type slowStationSource struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (f *slowStationSource) NearbyStations(ctx context.Context, coord domain.Coordinates) ([]domain.NearbyStation, error) {
	f.mu.Lock()
	f.calls++
	first := f.calls == 1
	f.mu.Unlock()

	if first {
		f.started <- struct{}{}
		<-f.release
		return []domain.NearbyStation{{ID: "stale", Mode: domain.ModeTrain, Distance: 0.1}}, nil
	}
	return []domain.NearbyStation{{ID: "fresh", Mode: domain.ModeTrain, Distance: 0.2}}, nil
}

func TestFetchSortsByDistance(t *testing.T) {
	source := &fakeStationSource{stations: []domain.NearbyStation{
		{ID: "far", Mode: domain.ModeBus, Distance: 1.8},
		{ID: "near", Mode: domain.ModeTrain, Distance: 0.3},
		{ID: "mid", Mode: domain.ModeBus, Distance: 0.9},
	}}
	svc := NewNearbyService(source)

	got, err := svc.Fetch(context.Background(), domain.Coordinates{Latitude: 51.5, Longitude: -0.12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Distance < got[i-1].Distance {
			t.Fatalf("stations not sorted by distance: %v", got)
		}
	}
	if svc.Loading() {
		t.Fatal("loading should be false after fetch completes")
	}
	if svc.Err() != "" {
		t.Fatalf("unexpected error state: %q", svc.Err())
	}
	loc := svc.Location()
	if loc == nil || loc.Latitude != 51.5 {
		t.Fatalf("location not recorded: %v", loc)
	}
}

func TestFailedFetchKeepsPreviousStations(t *testing.T) {
	source := &fakeStationSource{stations: []domain.NearbyStation{
		{ID: "a", Mode: domain.ModeTrain, Distance: 0.5},
	}}
	svc := NewNearbyService(source)
	if _, err := svc.Fetch(context.Background(), domain.Coordinates{}); err != nil {
		t.Fatalf("seed fetch failed: %v", err)
	}

	source.err = errors.New("upstream down")
	if _, err := svc.Fetch(context.Background(), domain.Coordinates{}); err == nil {
		t.Fatal("expected error from failed fetch")
	}

	if got := svc.Stations(); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("failed fetch clobbered stations: %v", got)
	}
	if svc.Err() == "" {
		t.Fatal("error message not recorded")
	}
}

func TestStationsByMode(t *testing.T) {
	source := &fakeStationSource{stations: []domain.NearbyStation{
		{ID: "t1", Mode: domain.ModeTrain, Distance: 0.2},
		{ID: "b1", Mode: domain.ModeBus, Distance: 0.4},
		{ID: "t2", Mode: domain.ModeTrain, Distance: 0.6},
	}}
	svc := NewNearbyService(source)
	if _, err := svc.Fetch(context.Background(), domain.Coordinates{}); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	trains := svc.StationsByMode(domain.ModeTrain)
	if len(trains) != 2 {
		t.Fatalf("expected 2 train stations, got %v", trains)
	}
	buses := svc.StationsByMode(domain.ModeBus)
	if len(buses) != 1 || buses[0].ID != "b1" {
		t.Fatalf("expected 1 bus stop, got %v", buses)
	}
}

// A slow first fetch must not overwrite the result of a later fetch that
// finished before it.
func TestSlowFetchDoesNotOverwriteNewerResult(t *testing.T) {
	source := &slowStationSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewNearbyService(source)

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Fetch(context.Background(), domain.Coordinates{Latitude: 1})
	}()
	<-source.started

	// Second fetch issued and completed while the first is still in flight.
	if _, err := svc.Fetch(context.Background(), domain.Coordinates{Latitude: 2}); err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	close(source.release)
	<-done

	got := svc.Stations()
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("stale fetch overwrote newer result: %v", got)
	}
}
