package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AditiPateria/toursandtravels/internal/backend"
)

// BookingsHandler serves the caller's bookings.
type BookingsHandler struct {
	bookings *backend.BookingClient
}

// NewBookingsHandler constructs the handler.
func NewBookingsHandler(bookings *backend.BookingClient) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// Mine handles GET /bookings.
func (h *BookingsHandler) Mine(c *fiber.Ctx) error {
	bookings, err := h.bookings.Mine(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(bookings)
}

// Create handles POST /bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	var req backend.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	booking, err := h.bookings.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(booking)
}

// Get handles GET /bookings/:id.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.bookings.Get(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

// Cancel handles DELETE /bookings/:id.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid booking id")
	}

	if err := h.bookings.Cancel(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
