package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Parindya2/TripRoute/internal/domain"
	"github.com/Parindya2/TripRoute/internal/service"
	"github.com/Parindya2/TripRoute/internal/util"
)

type DestinationHandler struct {
	destinations *service.DestinationService
}

func RegisterDestinations(e *echo.Echo, destinations *service.DestinationService) {
	handler := &DestinationHandler{destinations: destinations}

	group := e.Group("/api/v1/destinations")
	group.GET("", handler.list)
	group.GET("/categories", handler.categories)
	group.GET("/:id", handler.get)
}

// list returns the catalog filtered by the search and category query
// parameters. Both are optional; category=All matches everything.
func (h *DestinationHandler) list(c echo.Context) error {
	query := c.QueryParam("search")
	category := c.QueryParam("category")
	if category == "" {
		category = domain.CategoryAll
	}

	items := h.destinations.Filter(query, category)
	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": items,
		"count":        len(items),
	})
}

func (h *DestinationHandler) get(c echo.Context) error {
	destination, err := h.destinations.ByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load destination"))
	}
	return c.JSON(http.StatusOK, util.Data("destination", destination))
}

// categories lists the distinct catalog categories with All first.
func (h *DestinationHandler) categories(c echo.Context) error {
	seen := map[string]bool{}
	categories := []string{domain.CategoryAll}
	for _, d := range h.destinations.All() {
		if d.Category != "" && !seen[d.Category] {
			seen[d.Category] = true
			categories = append(categories, d.Category)
		}
	}
	return c.JSON(http.StatusOK, util.Data("categories", categories))
}
