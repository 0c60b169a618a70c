package models

// Booking is a confirmed trip. Distance and Fare are computed once at creation.
type Booking struct {
	CustomerID     string  `json:"customer_id"`
	CustomerName   string  `json:"customer_name"`
	CabID          string  `json:"cab_id"`
	PickupLocation string  `json:"pickup_location"`
	DropLocation   string  `json:"drop_location"`
	Distance       float64 `json:"distance"`
	Fare           float64 `json:"fare"`
}

// BookingRequest carries the operator input for a new booking. A blank
// cab_type books Economy; locations are free text and may be blank.
type BookingRequest struct {
	CustomerName   string `json:"customer_name" binding:"required"`
	Category       string `json:"cab_type"`
	PickupLocation string `json:"pickup_location"`
	DropLocation   string `json:"drop_location"`
}

// CabRequest carries the operator input for a new cab.
type CabRequest struct {
	ID       string `json:"cab_id" binding:"required"`
	Category string `json:"cab_type"`
}
