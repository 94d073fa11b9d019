package booking

import (
	"context"
	"fmt"

	"skylane/models"
)

// StartSession opens a new booking session seeded with validated search
// criteria and returns the matching flight offers.
func (s *DefaultBookingFlowService) StartSession(ctx context.Context, criteria models.SearchCriteria) (*State, []models.Flight, error) {
	flights, err := s.Catalog.SearchFlights(ctx, criteria)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search flights: %w", err)
	}

	st := NewState()
	st.SetSearchCriteria(criteria)
	if err := s.SaveSession(ctx, st); err != nil {
		return nil, nil, err
	}
	return st, flights, nil
}

// GetSession returns the current aggregate for an active session.
func (s *DefaultBookingFlowService) GetSession(ctx context.Context, sessionID string) (*State, error) {
	return s.LoadSession(ctx, sessionID)
}

// SelectFlight binds a catalog offer to the session and reprices.
func (s *DefaultBookingFlowService) SelectFlight(ctx context.Context, sessionID, flightID string) (*State, error) {
	flight, err := s.Catalog.GetFlight(ctx, flightID)
	if err != nil {
		return nil, NewInvalidSelectionError(err.Error())
	}
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.SetSelectedFlight(*flight)
		return nil
	})
}

func (s *DefaultBookingFlowService) ClearFlight(ctx context.Context, sessionID string) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.ClearSelectedFlight()
		return nil
	})
}

// AssignSeat looks the seat up on the selected flight's map and assigns it to
// the passenger, replacing any previous choice.
func (s *DefaultBookingFlowService) AssignSeat(ctx context.Context, sessionID, passengerID, seatID string) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		if st.SelectedFlight == nil {
			return NewInvalidSelectionError("cannot assign a seat before a flight is selected")
		}
		seatMap, err := s.Catalog.GetSeatMap(ctx, st.SelectedFlight.ID)
		if err != nil {
			return NewInvalidSelectionError(err.Error())
		}
		for _, seat := range seatMap {
			if seat.ID != seatID {
				continue
			}
			if seat.Status != models.SeatAvailable {
				return NewInvalidSelectionError(fmt.Sprintf("seat %s is not available", seatID))
			}
			seat.Status = models.SeatSelected
			st.SetSeat(passengerID, seat)
			return nil
		}
		return NewInvalidSelectionError(fmt.Sprintf("seat %s does not exist on flight %s", seatID, st.SelectedFlight.ID))
	})
}

func (s *DefaultBookingFlowService) ReleaseSeat(ctx context.Context, sessionID, passengerID string) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.RemoveSeat(passengerID)
		return nil
	})
}

func (s *DefaultBookingFlowService) ClearSeats(ctx context.Context, sessionID string) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.ClearSeats()
		return nil
	})
}

func (s *DefaultBookingFlowService) SetPassengers(ctx context.Context, sessionID string, passengers []models.PassengerInfo) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.SetPassengers(passengers)
		return nil
	})
}

func (s *DefaultBookingFlowService) UpdatePassenger(ctx context.Context, sessionID, passengerID string, info models.PassengerInfo) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.UpdatePassenger(passengerID, info)
		return nil
	})
}

// UpdateBaggage sets the baggage add-on for a passenger; an empty item id
// removes the selection.
func (s *DefaultBookingFlowService) UpdateBaggage(ctx context.Context, sessionID, passengerID, itemID string) (*State, error) {
	item, err := s.lookupExtra(ctx, itemID, func(c *models.ExtrasCatalog) []models.ExtraItem { return c.Baggage })
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.UpdateBaggage(passengerID, item)
		return nil
	})
}

// UpdateMeal sets the meal add-on for a passenger; an empty item id removes
// the selection.
func (s *DefaultBookingFlowService) UpdateMeal(ctx context.Context, sessionID, passengerID, itemID string) (*State, error) {
	item, err := s.lookupExtra(ctx, itemID, func(c *models.ExtrasCatalog) []models.ExtraItem { return c.Meals })
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.UpdateMeal(passengerID, item)
		return nil
	})
}

func (s *DefaultBookingFlowService) SetInsurance(ctx context.Context, sessionID, itemID string) (*State, error) {
	item, err := s.lookupExtra(ctx, itemID, func(c *models.ExtrasCatalog) []models.ExtraItem { return c.Insurance })
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.SetInsurance(item)
		return nil
	})
}

func (s *DefaultBookingFlowService) SetLoungeAccess(ctx context.Context, sessionID, itemID string) (*State, error) {
	item, err := s.lookupExtra(ctx, itemID, func(c *models.ExtrasCatalog) []models.ExtraItem { return c.Lounge })
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.SetLoungeAccess(item)
		return nil
	})
}

func (s *DefaultBookingFlowService) ClearExtras(ctx context.Context, sessionID string) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.ClearExtras()
		return nil
	})
}

func (s *DefaultBookingFlowService) NextStep(ctx context.Context, sessionID string) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.NextStep()
		return nil
	})
}

func (s *DefaultBookingFlowService) PreviousStep(ctx context.Context, sessionID string) (*State, error) {
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.PreviousStep()
		return nil
	})
}

func (s *DefaultBookingFlowService) GoToStep(ctx context.Context, sessionID string, step Step) (*State, error) {
	if !ValidStep(step) {
		return nil, NewInvalidSelectionError(fmt.Sprintf("unknown booking step %q", step))
	}
	return s.mutate(ctx, sessionID, func(st *State) error {
		st.GoToStep(step)
		return nil
	})
}

// lookupExtra resolves an extras-catalog item by id within one category.
// An empty id resolves to nil, which the state mutators treat as removal.
func (s *DefaultBookingFlowService) lookupExtra(ctx context.Context, itemID string, pick func(*models.ExtrasCatalog) []models.ExtraItem) (*models.ExtraItem, error) {
	if itemID == "" {
		return nil, nil
	}
	catalog, err := s.Catalog.GetExtras(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load extras catalog: %w", err)
	}
	for _, item := range pick(catalog) {
		if item.ID == itemID {
			found := item
			return &found, nil
		}
	}
	return nil, NewInvalidSelectionError(fmt.Sprintf("extra %q is not in the catalog", itemID))
}
