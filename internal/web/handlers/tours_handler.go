package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AditiPateria/toursandtravels/internal/backend"
)

// ToursHandler serves the public tour catalog.
type ToursHandler struct {
	tours *backend.TourClient
}

// NewToursHandler constructs the handler.
func NewToursHandler(tours *backend.TourClient) *ToursHandler {
	return &ToursHandler{tours: tours}
}

// List handles GET /tours and the home page.
func (h *ToursHandler) List(c *fiber.Ctx) error {
	tours, err := h.tours.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(tours)
}

// Available handles GET /tours/available.
func (h *ToursHandler) Available(c *fiber.Ctx) error {
	tours, err := h.tours.Available(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(tours)
}

// Get handles GET /tours/:id.
func (h *ToursHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid tour id")
	}

	tour, err := h.tours.Get(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(tour)
}

// Search handles GET /tours/search with passthrough filters.
func (h *ToursHandler) Search(c *fiber.Ctx) error {
	params := backend.TourSearch{
		Query:       c.Query("query"),
		Destination: c.Query("destination"),
		MinPrice:    c.Query("minPrice"),
		MaxPrice:    c.Query("maxPrice"),
	}

	tours, err := h.tours.Search(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(tours)
}
