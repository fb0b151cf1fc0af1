package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/AditiPateria/toursandtravels/internal/gateway"
)

// TourClient covers the tour catalog endpoints.
type TourClient struct {
	gw *gateway.Gateway
}

// NewTourClient constructs the client.
func NewTourClient(gw *gateway.Gateway) *TourClient {
	return &TourClient{gw: gw}
}

// List returns every tour.
func (c *TourClient) List(ctx context.Context) ([]Tour, error) {
	var tours []Tour
	if err := c.gw.Call(ctx, http.MethodGet, "/api/tours", nil, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// Available returns tours with open slots.
func (c *TourClient) Available(ctx context.Context) ([]Tour, error) {
	var tours []Tour
	if err := c.gw.Call(ctx, http.MethodGet, "/api/tours/available", nil, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// Get returns a single tour by id.
func (c *TourClient) Get(ctx context.Context, id int64) (*Tour, error) {
	var tour Tour
	if err := c.gw.Call(ctx, http.MethodGet, fmt.Sprintf("/api/tours/%d", id), nil, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

// Search filters tours by text and price bounds.
func (c *TourClient) Search(ctx context.Context, params TourSearch) ([]Tour, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("query", params.Query)
	}
	if params.Destination != "" {
		query.Set("destination", params.Destination)
	}
	if params.MinPrice != "" {
		query.Set("minPrice", params.MinPrice)
	}
	if params.MaxPrice != "" {
		query.Set("maxPrice", params.MaxPrice)
	}

	var tours []Tour
	if err := c.gw.CallQuery(ctx, http.MethodGet, "/api/tours/search", query, nil, &tours); err != nil {
		return nil, err
	}
	return tours, nil
}

// Create adds a tour. Admin only; the backend enforces the role.
func (c *TourClient) Create(ctx context.Context, input TourInput) (*Tour, error) {
	var tour Tour
	if err := c.gw.Call(ctx, http.MethodPost, "/api/tours", input, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

// Delete removes a tour. Admin only.
func (c *TourClient) Delete(ctx context.Context, id int64) error {
	return c.gw.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/tours/%d", id), nil, nil)
}
