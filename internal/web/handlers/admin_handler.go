package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AditiPateria/toursandtravels/internal/backend"
)

// AdminHandler serves the management views. The routes behind it already
// require the admin role; the backend still re-checks every call.
type AdminHandler struct {
	admin *backend.AdminClient
	tours *backend.TourClient
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(admin *backend.AdminClient, tours *backend.TourClient) *AdminHandler {
	return &AdminHandler{admin: admin, tours: tours}
}

// Tours handles GET /admin/tours.
func (h *AdminHandler) Tours(c *fiber.Ctx) error {
	tours, err := h.admin.Tours(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(tours)
}

// CreateTour handles POST /admin/tours.
func (h *AdminHandler) CreateTour(c *fiber.Ctx) error {
	var input backend.TourInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if input.Name == "" || input.Destination == "" {
		return fiber.NewError(http.StatusBadRequest, "name and destination required")
	}

	tour, err := h.tours.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(tour)
}

// DeleteTour handles DELETE /admin/tours/:id.
func (h *AdminHandler) DeleteTour(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid tour id")
	}

	if err := h.tours.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Bookings handles GET /admin/bookings.
func (h *AdminHandler) Bookings(c *fiber.Ctx) error {
	bookings, err := h.admin.Bookings(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(bookings)
}

// UpdateBookingStatus handles PUT /admin/bookings/:id/status.
func (h *AdminHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid booking id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	booking, err := h.admin.UpdateBookingStatus(c.UserContext(), int64(id), body.Status)
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

// Users handles GET /admin/users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.admin.Users(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// UpdateUserRole handles PUT /admin/users/:id/role.
func (h *AdminHandler) UpdateUserRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.admin.UpdateUserRole(c.UserContext(), int64(id), body.Role)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /admin/users/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.admin.DeleteUser(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
