package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AditiPateria/toursandtravels/internal/backend"
	"github.com/AditiPateria/toursandtravels/internal/gateway"
	"github.com/AditiPateria/toursandtravels/internal/observability"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

func newBookingClient(t *testing.T, baseURL string) *backend.BookingClient {
	t.Helper()
	gw, err := gateway.New(baseURL, 2*time.Second, noSession{}, zap.NewNop(), observability.NewMetrics())
	require.NoError(t, err)
	return backend.NewBookingClient(gw)
}

func TestBookingClient_MineEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bookings/my-bookings", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	bookings, err := newBookingClient(t, srv.URL).Mine(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestBookingClient_CreateValidation(t *testing.T) {
	// The server must never be reached for locally rejected input.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	client := newBookingClient(t, srv.URL)
	ctx := context.Background()

	cases := []backend.BookingRequest{
		{BookingDate: "2026-09-01", NumberOfPeople: 2},
		{TourID: 1, NumberOfPeople: 2},
		{TourID: 1, BookingDate: "2026-09-01", NumberOfPeople: 0},
	}

	for _, req := range cases {
		_, err := client.Create(ctx, req)
		assert.True(t, util.IsCode(err, util.CodeValidation))
	}
}

func TestBookingClient_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"status":"PENDING"}`))
	}))
	defer srv.Close()

	booking, err := newBookingClient(t, srv.URL).Create(context.Background(), backend.BookingRequest{
		TourID:         1,
		BookingDate:    "2026-09-01",
		NumberOfPeople: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), booking.ID)
	assert.Equal(t, "PENDING", booking.Status)
}

func TestBookingClient_Cancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/bookings/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newBookingClient(t, srv.URL).Cancel(context.Background(), 42))
}
