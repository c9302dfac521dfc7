package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/service"
	"github.com/Parindya2/TripRoute/internal/util"
)

type FavoriteHandler struct {
	favorites    *service.FavoriteService
	destinations *service.DestinationService
}

func RegisterFavorites(e *echo.Echo, auth *service.AuthService, favorites *service.FavoriteService, destinations *service.DestinationService) {
	handler := &FavoriteHandler{
		favorites:    favorites,
		destinations: destinations,
	}

	group := e.Group("/api/v1/users/me/favorites", RequireAuth(auth))
	group.GET("", handler.list)
	group.PUT("/:destination_id", handler.add)
	group.POST("/:destination_id/toggle", handler.toggle)
	group.DELETE("/:destination_id", handler.remove)
	group.DELETE("", handler.clear)
}

// list returns the favorite IDs plus the resolved destinations, in insertion
// order. IDs whose destination has left the catalog are kept in the id list
// but skipped in the expansion.
func (h *FavoriteHandler) list(c echo.Context) error {
	ids := h.favorites.IDs()
	destinations := make([]domain.Destination, 0, len(ids))
	for _, id := range ids {
		if d, err := h.destinations.ByID(id); err == nil {
			destinations = append(destinations, *d)
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"ids":          ids,
		"destinations": destinations,
		"count":        len(ids),
	})
}

func (h *FavoriteHandler) add(c echo.Context) error {
	id, ok := h.destinationID(c)
	if !ok {
		return nil
	}

	h.favorites.Add(id)
	return c.JSON(http.StatusCreated, util.Envelope{
		"destination_id": id,
		"favorite":       true,
	})
}

// toggle flips membership and reports the resulting state.
func (h *FavoriteHandler) toggle(c echo.Context) error {
	id, ok := h.destinationID(c)
	if !ok {
		return nil
	}

	favorite := h.favorites.Toggle(id)
	return c.JSON(http.StatusOK, util.Envelope{
		"destination_id": id,
		"favorite":       favorite,
	})
}

// remove is idempotent: deleting an id that is not favorited still succeeds.
func (h *FavoriteHandler) remove(c echo.Context) error {
	id := strings.TrimSpace(c.Param("destination_id"))
	if id == "" {
		return c.JSON(http.StatusBadRequest, util.Error("destination_id is required"))
	}

	h.favorites.Remove(id)
	return c.JSON(http.StatusOK, util.Envelope{
		"destination_id": id,
		"favorite":       false,
	})
}

func (h *FavoriteHandler) clear(c echo.Context) error {
	h.favorites.Clear()
	return c.JSON(http.StatusOK, util.Envelope{"message": "Favorites cleared"})
}

// destinationID reads the destination_id path parameter and checks it against
// the catalog. On failure the response has already been written.
func (h *FavoriteHandler) destinationID(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("destination_id"))
	if id == "" {
		_ = c.JSON(http.StatusBadRequest, util.Error("destination_id is required"))
		return "", false
	}
	if _, err := h.destinations.ByID(id); err != nil {
		_ = c.JSON(http.StatusNotFound, util.Error("destination not found"))
		return "", false
	}
	return id, true
}
