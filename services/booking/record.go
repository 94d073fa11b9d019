package booking

import (
	"sort"
	"time"

	"skylane/models"
)

// Snapshot projects the aggregate into its persisted record form. The
// passenger-keyed maps are flattened to pair lists sorted by passenger id so
// the encoded record is deterministic.
func (s *State) Snapshot() *models.SessionRecord {
	rec := &models.SessionRecord{
		SessionID:      s.SessionID,
		SearchCriteria: s.SearchCriteria,
		SelectedFlight: s.SelectedFlight,
		Passengers:     s.Passengers,
		Insurance:      s.Extras.Insurance,
		LoungeAccess:   s.Extras.LoungeAccess,
		Breakdown:      s.Breakdown,
		TotalPrice:     s.TotalPrice,
		CurrentStep:    string(s.CurrentStep),
		SavedAt:        time.Now().UTC(),
	}

	for id, seat := range s.Seats {
		rec.Seats = append(rec.Seats, models.SeatAssignment{PassengerID: id, Seat: seat})
	}
	sort.Slice(rec.Seats, func(i, j int) bool {
		return rec.Seats[i].PassengerID < rec.Seats[j].PassengerID
	})

	rec.Baggage = flattenExtras(s.Extras.Baggage)
	rec.Meals = flattenExtras(s.Extras.Meals)
	return rec
}

// RestoreState rebuilds a live aggregate from a persisted record. The pair
// lists come back as true maps; an unknown step falls back to search.
func RestoreState(rec *models.SessionRecord) *State {
	s := NewState()
	s.SessionID = rec.SessionID
	s.SearchCriteria = rec.SearchCriteria
	s.SelectedFlight = rec.SelectedFlight
	s.Passengers = rec.Passengers
	s.Extras.Insurance = rec.Insurance
	s.Extras.LoungeAccess = rec.LoungeAccess

	for _, sa := range rec.Seats {
		s.Seats[sa.PassengerID] = sa.Seat
	}
	for _, sel := range rec.Baggage {
		s.Extras.Baggage[sel.PassengerID] = sel.Item
	}
	for _, sel := range rec.Meals {
		s.Extras.Meals[sel.PassengerID] = sel.Item
	}

	if step := Step(rec.CurrentStep); ValidStep(step) {
		s.CurrentStep = step
	}

	// Derive the price from the restored selection instead of trusting the
	// persisted numbers.
	s.recomputePrice()
	return s
}

func flattenExtras(m map[string]models.ExtraItem) []models.ExtraSelection {
	if len(m) == 0 {
		return nil
	}
	out := make([]models.ExtraSelection, 0, len(m))
	for id, item := range m {
		out = append(out, models.ExtraSelection{PassengerID: id, Item: item})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PassengerID < out[j].PassengerID })
	return out
}
