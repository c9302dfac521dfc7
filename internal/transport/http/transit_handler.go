package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/repository/ports"
	"github.com/Parindya2/TripRoute/internal/service"
	"github.com/Parindya2/TripRoute/internal/util"
)

type TransitHandler struct {
	nearby       *service.NearbyService
	schedules    *service.ScheduleService
	destinations *service.DestinationService
	fallback     domain.Coordinates
}

// RegisterTransit wires the nearby-stations and schedule endpoints. fallback
// is the coordinate used when a request carries no usable location.
func RegisterTransit(e *echo.Echo, nearby *service.NearbyService, schedules *service.ScheduleService, destinations *service.DestinationService, fallback domain.Coordinates) {
	handler := &TransitHandler{
		nearby:       nearby,
		schedules:    schedules,
		destinations: destinations,
		fallback:     fallback,
	}

	e.GET("/api/v1/stations/nearby", handler.nearbyStations)
	e.GET("/api/v1/destinations/:id/schedules", handler.destinationSchedules)
}

// nearbyStations resolves stations around the lat/lon query parameters,
// falling back to the configured default location when they are absent or
// malformed. An optional type parameter narrows the result to one mode.
func (h *TransitHandler) nearbyStations(c echo.Context) error {
	coord := h.fallback
	usedFallback := true

	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if latErr == nil && lonErr == nil {
		coord = domain.Coordinates{Latitude: lat, Longitude: lon}
		usedFallback = false
	}

	stations, err := h.nearby.Fetch(c.Request().Context(), coord)
	if err != nil {
		return c.JSON(http.StatusBadGateway, util.Error("unable to resolve nearby stations"))
	}

	if raw := c.QueryParam("type"); raw != "" {
		mode, err := domain.ParseTransportMode(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("type must be train or bus"))
		}
		filtered := stations[:0:0]
		for _, station := range stations {
			if station.Mode == mode {
				filtered = append(filtered, station)
			}
		}
		stations = filtered
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"stations":         stations,
		"count":            len(stations),
		"location":         coord,
		"default_location": usedFallback,
	})
}

// destinationSchedules returns departure options for one destination. The
// mode parameter selects train, bus, or all (both lists); the station
// parameter overrides the departure station name.
func (h *TransitHandler) destinationSchedules(c echo.Context) error {
	destination, err := h.destinations.ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load destination"))
	}

	station := strings.TrimSpace(c.QueryParam("station"))
	if station == "" {
		station = destination.Name + " Station"
	}

	req := ports.ScheduleRequest{
		DestinationID:   destination.ID,
		DestinationName: destination.Name,
		StationName:     station,
		StationCode:     destination.StationCode,
	}

	rawMode := c.QueryParam("mode")
	if rawMode == "" || rawMode == "all" {
		set, err := h.schedules.FetchAll(c.Request().Context(), req)
		if err != nil {
			return c.JSON(http.StatusBadGateway, util.Error("unable to load schedules"))
		}
		return c.JSON(http.StatusOK, util.Envelope{
			"destination": destination,
			"station":     station,
			"routes":      set,
		})
	}

	mode, err := domain.ParseTransportMode(rawMode)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("mode must be train, bus, or all"))
	}
	req.Mode = mode

	routes, err := h.schedules.Fetch(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, util.Error("unable to load schedules"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"destination": destination,
		"station":     station,
		"mode":        mode,
		"routes":      routes,
		"count":       len(routes),
	})
}
