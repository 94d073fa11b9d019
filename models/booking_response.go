package models

// SessionView is the API-facing snapshot of one in-progress booking.
type SessionView struct {
	SessionID      string                 `json:"sessionId"`
	SearchCriteria *SearchCriteria        `json:"searchCriteria,omitempty"`
	SelectedFlight *Flight                `json:"selectedFlight,omitempty"`
	Seats          map[string]Seat        `json:"seats"`
	Passengers     []PassengerInfo        `json:"passengers"`
	Baggage        map[string]ExtraItem   `json:"baggage"`
	Meals          map[string]ExtraItem   `json:"meals"`
	Insurance      *ExtraItem             `json:"insurance,omitempty"`
	LoungeAccess   *ExtraItem             `json:"loungeAccess,omitempty"`
	Breakdown      DetailedPriceBreakdown `json:"breakdown"`
	TotalPrice     float64                `json:"totalPrice"`
	CurrentStep    string                 `json:"currentStep"`
	CanProceed     bool                   `json:"canProceed"`
}

// StartSessionResponse is returned when a new booking session is opened.
type StartSessionResponse struct {
	SessionID string   `json:"sessionId"`
	Flights   []Flight `json:"flights"`
}
