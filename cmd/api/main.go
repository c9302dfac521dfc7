package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/Parindya2/TripRoute/internal/catalog"
	"github.com/Parindya2/TripRoute/internal/config"
	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/identity"
	"github.com/Parindya2/TripRoute/internal/logging"
	"github.com/Parindya2/TripRoute/internal/repository/file"
	"github.com/Parindya2/TripRoute/internal/repository/ports"
	"github.com/Parindya2/TripRoute/internal/service"
	"github.com/Parindya2/TripRoute/internal/transit"
	httptransport "github.com/Parindya2/TripRoute/internal/transport/http"
)

func main() {
	cfg := config.Load()

	if cfg.LogSinkAddr != "" {
		sink, err := logging.NewTCPSink(cfg.LogSinkAddr)
		if err != nil {
			log.Printf("Warning: log sink disabled: %v", err)
		} else {
			defer sink.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, sink))
		}
	}

	destinations, err := catalog.Load()
	if err != nil {
		log.Fatalf("load destination catalog: %v", err)
	}

	store, err := file.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open storage dir %s: %v", cfg.DataDir, err)
	}

	var stations ports.StationSource
	var schedules ports.ScheduleSource
	switch cfg.TransportSource {
	case "live":
		live := transit.NewLiveSource(cfg.TransportBaseURL, cfg.TransportAppID, cfg.TransportAppKey)
		stations, schedules = live, live
		log.Printf("transport source: live (%s)", cfg.TransportBaseURL)
	default:
		mock := transit.NewMockSource(cfg.MockSeed)
		stations, schedules = mock, mock
		log.Printf("transport source: mock")
	}

	identityClient := identity.NewClient(cfg.IdentityBaseURL)

	destinationService := service.NewDestinationService(destinations)
	favoriteService := service.NewFavoriteService(store)
	nearbyService := service.NewNearbyService(stations)
	scheduleService := service.NewScheduleService(schedules)
	authService := service.NewAuthService(identityClient, store)

	favoriteService.Restore()
	if authService.Restore(context.Background()) {
		if user, ok := authService.CurrentUser(); ok {
			log.Printf("restored session for %s", user.Username)
		}
	}

	e := httptransport.NewRouter(cfg.AllowOrigins)
	httptransport.RegisterAuth(e, authService)
	httptransport.RegisterDestinations(e, destinationService)
	httptransport.RegisterFavorites(e, authService, favoriteService, destinationService)
	httptransport.RegisterTransit(e, nearbyService, scheduleService, destinationService, domain.Coordinates{
		Latitude:  cfg.DefaultLatitude,
		Longitude: cfg.DefaultLongitude,
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
