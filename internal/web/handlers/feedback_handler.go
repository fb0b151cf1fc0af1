package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AditiPateria/toursandtravels/internal/backend"
)

// FeedbackHandler serves tour feedback.
type FeedbackHandler struct {
	feedback *backend.FeedbackClient
}

// NewFeedbackHandler constructs the handler.
func NewFeedbackHandler(feedback *backend.FeedbackClient) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// ForTour handles GET /feedbacks/tour/:tourId.
func (h *FeedbackHandler) ForTour(c *fiber.Ctx) error {
	tourID, err := c.ParamsInt("tourId")
	if err != nil || tourID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid tour id")
	}

	feedback, err := h.feedback.ForTour(c.UserContext(), int64(tourID))
	if err != nil {
		return err
	}
	return c.JSON(feedback)
}

// Submit handles POST /feedbacks/tour/:tourId.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	tourID, err := c.ParamsInt("tourId")
	if err != nil || tourID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid tour id")
	}

	var input backend.FeedbackInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	feedback, err := h.feedback.Submit(c.UserContext(), int64(tourID), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(feedback)
}

// Delete handles DELETE /feedbacks/:id.
func (h *FeedbackHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid feedback id")
	}

	if err := h.feedback.Delete(c.UserContext(), int64(id)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
