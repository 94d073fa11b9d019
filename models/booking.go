package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID           string                 `bson:"id" json:"id"`               // Unique booking identifier (UUID)
	Reference    string                 `bson:"reference" json:"reference"` // Short reference shown to the traveller
	FlightID     string                 `bson:"flight_id" json:"flightId"`  // Flight that was booked
	Airline      string                 `bson:"airline" json:"airline"`
	FlightNumber string                 `bson:"flight_number" json:"flightNumber"`
	Passengers   []PassengerInfo        `bson:"passengers" json:"passengers"`
	Seats        []SeatAssignment       `bson:"seats" json:"seats"`
	Breakdown    DetailedPriceBreakdown `bson:"breakdown" json:"breakdown"`
	TotalPrice   float64                `bson:"total_price" json:"totalPrice"`
	Status       string                 `bson:"status" json:"status"` // e.g. "confirmed"
	CreatedAt    time.Time              `bson:"created_at" json:"createdAt"`
}
