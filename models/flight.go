package models

import "time"

// FarePriceBreakdown decomposes a flight's fare into its published components.
type FarePriceBreakdown struct {
	BaseFare float64 `json:"baseFare" bson:"base_fare"`
	Taxes    float64 `json:"taxes" bson:"taxes"`
	Fees     float64 `json:"fees" bson:"fees"`
}

// FlightPrice is the authoritative price attached to a flight offer.
// It is never recomputed from segments.
type FlightPrice struct {
	Amount    float64            `json:"amount" bson:"amount"`
	Currency  string             `json:"currency" bson:"currency"`
	Breakdown FarePriceBreakdown `json:"breakdown" bson:"breakdown"`
}

// SegmentPoint is one endpoint of a flight segment.
type SegmentPoint struct {
	Airport  string    `json:"airport" bson:"airport"`
	Time     time.Time `json:"time" bson:"time"`
	Terminal string    `json:"terminal,omitempty" bson:"terminal,omitempty"`
}

// FlightSegment is a single operated leg of a flight offer.
type FlightSegment struct {
	Departure       SegmentPoint `json:"departure" bson:"departure"`
	Arrival         SegmentPoint `json:"arrival" bson:"arrival"`
	DurationMinutes int          `json:"durationMinutes" bson:"duration_minutes"`
	Aircraft        string       `json:"aircraft" bson:"aircraft"`
}

// Flight is one bookable offer. Once selected it is owned exclusively by the
// booking session for the duration of the booking attempt and never mutated.
type Flight struct {
	ID             string          `json:"id" bson:"id"`
	Airline        string          `json:"airline" bson:"airline"`
	FlightNumber   string          `json:"flightNumber" bson:"flight_number"`
	Segments       []FlightSegment `json:"segments" bson:"segments"`
	Price          FlightPrice     `json:"price" bson:"price"`
	CabinClass     CabinClass      `json:"cabinClass" bson:"cabin_class"`
	SeatsAvailable int             `json:"seatsAvailable" bson:"seats_available"`
}
