package domain

import "time"

// Booking is a confirmed reservation against a travel package.
type Booking struct {
	BookingID    int64     `json:"bookingId"`
	UserID       int64     `json:"userId"`
	PackageID    int64     `json:"packageId"`
	PackageTitle string    `json:"packageTitle"`
	TravelDate   time.Time `json:"travelDate"`
	Travelers    int       `json:"travelers"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
}
