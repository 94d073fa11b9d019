package booking

import "skylane/models"

// State is the single mutable owner of one in-progress booking. Every mutator
// that can affect price finishes by recomputing the stored breakdown, so the
// price is always a derived view and never independently settable. State is
// not safe for concurrent use; each request loads, mutates and saves its own
// copy via the session store.
type State struct {
	SessionID      string
	SearchCriteria *models.SearchCriteria
	SelectedFlight *models.Flight
	Seats          map[string]models.Seat
	Passengers     []models.PassengerInfo
	Extras         models.SelectedExtras
	Breakdown      models.DetailedPriceBreakdown
	TotalPrice     float64
	CurrentStep    Step
}

// NewState returns an empty booking at the search step.
func NewState() *State {
	return &State{
		Seats:       make(map[string]models.Seat),
		Extras:      models.NewSelectedExtras(),
		CurrentStep: StepSearch,
	}
}

func (s *State) recomputePrice() {
	s.Breakdown = ComputeBreakdown(s.SelectedFlight, s.Seats, s.Extras)
	s.TotalPrice = s.Breakdown.Total
}

// SetSearchCriteria replaces the search criteria. Criteria do not affect
// price, so no recompute happens here.
func (s *State) SetSearchCriteria(criteria models.SearchCriteria) {
	c := criteria
	s.SearchCriteria = &c
}

func (s *State) ClearSearchCriteria() {
	s.SearchCriteria = nil
}

// SetSelectedFlight replaces the selected flight and recomputes the price.
func (s *State) SetSelectedFlight(flight models.Flight) {
	f := flight
	s.SelectedFlight = &f
	s.recomputePrice()
}

func (s *State) ClearSelectedFlight() {
	s.SelectedFlight = nil
	s.recomputePrice()
}

// SetSeat assigns a seat to a passenger, replacing any previous assignment
// for the same passenger.
func (s *State) SetSeat(passengerID string, seat models.Seat) {
	s.Seats[passengerID] = seat
	s.recomputePrice()
}

// RemoveSeat drops a passenger's seat assignment. Removing a seat that was
// never assigned is a no-op.
func (s *State) RemoveSeat(passengerID string) {
	delete(s.Seats, passengerID)
	s.recomputePrice()
}

func (s *State) ClearSeats() {
	s.Seats = make(map[string]models.Seat)
	s.recomputePrice()
}

func (s *State) SetPassengers(passengers []models.PassengerInfo) {
	s.Passengers = passengers
}

// UpdatePassenger replaces the passenger whose id matches. An unknown id is a
// silent no-op; the handler layer decides whether that deserves a 404.
func (s *State) UpdatePassenger(passengerID string, info models.PassengerInfo) {
	for i, p := range s.Passengers {
		if p.ID == passengerID {
			s.Passengers[i] = info
			return
		}
	}
}

func (s *State) ClearPassengers() {
	s.Passengers = nil
}

func (s *State) SetExtras(extras models.SelectedExtras) {
	if extras.Baggage == nil {
		extras.Baggage = make(map[string]models.ExtraItem)
	}
	if extras.Meals == nil {
		extras.Meals = make(map[string]models.ExtraItem)
	}
	s.Extras = extras
	s.recomputePrice()
}

// UpdateBaggage sets or, when item is nil, removes the baggage add-on for a
// passenger. A nil item never stores a null entry.
func (s *State) UpdateBaggage(passengerID string, item *models.ExtraItem) {
	if item == nil {
		delete(s.Extras.Baggage, passengerID)
	} else {
		s.Extras.Baggage[passengerID] = *item
	}
	s.recomputePrice()
}

// UpdateMeal sets or removes the meal add-on for a passenger.
func (s *State) UpdateMeal(passengerID string, item *models.ExtraItem) {
	if item == nil {
		delete(s.Extras.Meals, passengerID)
	} else {
		s.Extras.Meals[passengerID] = *item
	}
	s.recomputePrice()
}

func (s *State) SetInsurance(item *models.ExtraItem) {
	s.Extras.Insurance = item
	s.recomputePrice()
}

func (s *State) SetLoungeAccess(item *models.ExtraItem) {
	s.Extras.LoungeAccess = item
	s.recomputePrice()
}

func (s *State) ClearExtras() {
	s.Extras = models.NewSelectedExtras()
	s.recomputePrice()
}

// GoToStep jumps to any step unconditionally. Edit flows use this to revisit
// earlier steps; it never validates completeness of prior steps.
func (s *State) GoToStep(step Step) {
	if ValidStep(step) {
		s.CurrentStep = step
	}
}

// NextStep advances exactly one step, clamped at confirmation.
func (s *State) NextStep() {
	if i := stepIndex(s.CurrentStep); i >= 0 && i < len(stepOrder)-1 {
		s.CurrentStep = stepOrder[i+1]
	}
}

// PreviousStep moves back exactly one step, clamped at search.
func (s *State) PreviousStep() {
	if i := stepIndex(s.CurrentStep); i > 0 {
		s.CurrentStep = stepOrder[i-1]
	}
}

// CanProceed reports whether the current step is complete enough to advance.
// It is advisory: NextStep does not consult it, the caller does.
func (s *State) CanProceed() bool {
	switch s.CurrentStep {
	case StepSearch:
		return s.SearchCriteria != nil
	case StepResults, StepDetails:
		return s.SelectedFlight != nil
	case StepSeats, StepExtras:
		return true
	case StepPassengers:
		return len(s.Passengers) > 0
	case StepPayment:
		return s.TotalPrice > 0
	default:
		// confirmation is terminal
		return false
	}
}

// Reset returns the aggregate to its empty initial value. Used after a
// completed or abandoned booking.
func (s *State) Reset() {
	*s = *NewState()
}

// View renders the API-facing snapshot of the aggregate.
func (s *State) View() models.SessionView {
	return models.SessionView{
		SessionID:      s.SessionID,
		SearchCriteria: s.SearchCriteria,
		SelectedFlight: s.SelectedFlight,
		Seats:          s.Seats,
		Passengers:     s.Passengers,
		Baggage:        s.Extras.Baggage,
		Meals:          s.Extras.Meals,
		Insurance:      s.Extras.Insurance,
		LoungeAccess:   s.Extras.LoungeAccess,
		Breakdown:      s.Breakdown,
		TotalPrice:     s.TotalPrice,
		CurrentStep:    string(s.CurrentStep),
		CanProceed:     s.CanProceed(),
	}
}
