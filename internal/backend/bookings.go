package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AditiPateria/toursandtravels/internal/gateway"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

// BookingClient covers the booking endpoints.
type BookingClient struct {
	gw *gateway.Gateway
}

// NewBookingClient constructs the client.
func NewBookingClient(gw *gateway.Gateway) *BookingClient {
	return &BookingClient{gw: gw}
}

// Mine returns the caller's bookings. No bookings is an empty slice, not an
// error.
func (c *BookingClient) Mine(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.gw.Call(ctx, http.MethodGet, "/api/v1/bookings/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []Booking{}
	}
	return bookings, nil
}

// Create books a tour for the caller after validating the required fields
// locally, so an obviously broken form never reaches the wire.
func (c *BookingClient) Create(ctx context.Context, req BookingRequest) (*Booking, error) {
	if req.TourID <= 0 {
		return nil, util.NewValidation("tour id is required")
	}
	if req.BookingDate == "" {
		return nil, util.NewValidation("booking date is required")
	}
	if req.NumberOfPeople < 1 {
		return nil, util.NewValidation("number of travelers must be at least 1")
	}

	var booking Booking
	if err := c.gw.Call(ctx, http.MethodPost, "/api/v1/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Get returns one booking by id.
func (c *BookingClient) Get(ctx context.Context, id int64) (*Booking, error) {
	var booking Booking
	if err := c.gw.Call(ctx, http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel deletes a booking.
func (c *BookingClient) Cancel(ctx context.Context, id int64) error {
	return c.gw.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d", id), nil, nil)
}
