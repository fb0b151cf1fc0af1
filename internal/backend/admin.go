package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/AditiPateria/toursandtravels/internal/gateway"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

// AdminClient covers the management endpoints. Every call requires an admin
// credential; the backend answers 403 otherwise and the session stays intact.
type AdminClient struct {
	gw *gateway.Gateway
}

// NewAdminClient constructs the client.
func NewAdminClient(gw *gateway.Gateway) *AdminClient {
	return &AdminClient{gw: gw}
}

// Tours lists every tour for management.
func (c *AdminClient) Tours(ctx context.Context) ([]Tour, error) {
	var tours []Tour
	if err := c.gw.Call(ctx, http.MethodGet, "/admin/tours", nil, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// Bookings lists every booking across users.
func (c *AdminClient) Bookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.gw.Call(ctx, http.MethodGet, "/admin/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Users lists every registered account.
func (c *AdminClient) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.gw.Call(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateBookingStatus sets a booking's status.
func (c *AdminClient) UpdateBookingStatus(ctx context.Context, id int64, status string) (*Booking, error) {
	if status == "" {
		return nil, util.NewValidation("status is required")
	}

	var booking Booking
	body := map[string]string{"status": status}
	if err := c.gw.Call(ctx, http.MethodPut, fmt.Sprintf("/admin/bookings/%d/status", id), body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateUserRole sets a user's role.
func (c *AdminClient) UpdateUserRole(ctx context.Context, id int64, role string) (*User, error) {
	if role == "" {
		return nil, util.NewValidation("role is required")
	}

	var user User
	body := map[string]string{"role": role}
	if err := c.gw.Call(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/role", id), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account.
func (c *AdminClient) DeleteUser(ctx context.Context, id int64) error {
	return c.gw.Call(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil)
}
