package models

import "time"

// SeatAssignment is one entry of the passenger→seat map, flattened for the
// session record. The in-memory booking state keeps a real map; only the
// persisted projection uses pair lists so the encoding is explicit and
// order-preserving.
type SeatAssignment struct {
	PassengerID string `json:"passengerId"`
	Seat        Seat   `json:"seat"`
}

// ExtraSelection is one entry of a passenger→extra map in pair form.
type ExtraSelection struct {
	PassengerID string    `json:"passengerId"`
	Item        ExtraItem `json:"item"`
}

// SessionRecord is the persisted projection of one in-progress booking,
// stored as JSON under "booking:session:"+SessionID with a sliding TTL.
type SessionRecord struct {
	SessionID      string                 `json:"sessionId"`
	SearchCriteria *SearchCriteria        `json:"searchCriteria,omitempty"`
	SelectedFlight *Flight                `json:"selectedFlight,omitempty"`
	Seats          []SeatAssignment       `json:"seats,omitempty"`
	Passengers     []PassengerInfo        `json:"passengers,omitempty"`
	Baggage        []ExtraSelection       `json:"baggage,omitempty"`
	Meals          []ExtraSelection       `json:"meals,omitempty"`
	Insurance      *ExtraItem             `json:"insurance,omitempty"`
	LoungeAccess   *ExtraItem             `json:"loungeAccess,omitempty"`
	Breakdown      DetailedPriceBreakdown `json:"breakdown"`
	TotalPrice     float64                `json:"totalPrice"`
	CurrentStep    string                 `json:"currentStep"`
	SavedAt        time.Time              `json:"savedAt"`
}
