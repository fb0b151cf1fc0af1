// Package backend holds typed clients for the travel REST backend. Every
// client goes through the request gateway; none of them talks HTTP directly.
package backend

// Tour mirrors the backend tour resource.
type Tour struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Destination    string  `json:"destination"`
	Duration       int     `json:"duration"`
	Price          float64 `json:"price"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	AvailableSlots int     `json:"availableSlots"`
	ImageURL       string  `json:"imageUrl"`
	MaxGroupSize   int     `json:"maxGroupSize"`
}

// TourInput is the admin payload for creating a tour.
type TourInput struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Destination    string  `json:"destination"`
	Duration       int     `json:"duration"`
	Price          float64 `json:"price"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	AvailableSlots int     `json:"availableSlots"`
	ImageURL       string  `json:"imageUrl"`
	MaxGroupSize   int     `json:"maxGroupSize"`
}

// TourSearch carries the search filters; empty fields are omitted from the
// query string.
type TourSearch struct {
	Query       string
	Destination string
	MinPrice    string
	MaxPrice    string
}

// Booking mirrors the backend booking resource.
type Booking struct {
	ID                  int64   `json:"id"`
	TourID              int64   `json:"tourId"`
	TourName            string  `json:"tourName,omitempty"`
	BookingDate         string  `json:"bookingDate"`
	NumberOfPeople      int     `json:"numberOfPeople"`
	SpecialRequirements string  `json:"specialRequirements,omitempty"`
	Status              string  `json:"status,omitempty"`
	TotalPrice          float64 `json:"totalPrice,omitempty"`
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	TourID              int64  `json:"tourId"`
	BookingDate         string `json:"bookingDate"`
	NumberOfPeople      int    `json:"numberOfPeople"`
	SpecialRequirements string `json:"specialRequirements"`
}

// Feedback mirrors the backend feedback resource.
type Feedback struct {
	ID       int64  `json:"id"`
	TourID   int64  `json:"tourId,omitempty"`
	Username string `json:"username,omitempty"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// FeedbackInput is the payload for submitting feedback on a tour.
type FeedbackInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// User mirrors the backend account resource as seen by admins.
type User struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Roles    []string `json:"roles"`
}
