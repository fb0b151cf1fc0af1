package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AditiPateria/toursandtravels/internal/gateway"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

// FeedbackClient covers the feedback endpoints.
type FeedbackClient struct {
	gw *gateway.Gateway
}

// NewFeedbackClient constructs the client.
func NewFeedbackClient(gw *gateway.Gateway) *FeedbackClient {
	return &FeedbackClient{gw: gw}
}

// ForTour returns the feedback left on a tour.
func (c *FeedbackClient) ForTour(ctx context.Context, tourID int64) ([]Feedback, error) {
	var feedback []Feedback
	if err := c.gw.Call(ctx, http.MethodGet, fmt.Sprintf("/api/feedbacks/tour/%d", tourID), nil, &feedback); err != nil {
		return nil, err
	}
	if feedback == nil {
		feedback = []Feedback{}
	}
	return feedback, nil
}

// Submit leaves feedback on a tour.
func (c *FeedbackClient) Submit(ctx context.Context, tourID int64, input FeedbackInput) (*Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, util.NewValidation("rating must be between 1 and 5")
	}

	var feedback Feedback
	if err := c.gw.Call(ctx, http.MethodPost, fmt.Sprintf("/api/feedbacks/tour/%d", tourID), input, &feedback); err != nil {
		return nil, err
	}
	return &feedback, nil
}

// Delete removes a feedback entry.
func (c *FeedbackClient) Delete(ctx context.Context, id int64) error {
	return c.gw.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/feedbacks/%d", id), nil, nil)
}
