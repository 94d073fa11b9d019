package booking

import (
	"context"
	"strings"
	"time"

	"skylane/models"

	"github.com/google/uuid"
)

// Confirm finalizes the booking: it verifies the flow actually reached a
// payable state, persists the confirmed record, and cleans up the session so
// an expired or replayed confirm cannot double-book.
func (s *DefaultBookingFlowService) Confirm(ctx context.Context, sessionID string) (*models.Booking, error) {
	st, err := s.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if st.SelectedFlight == nil {
		return nil, NewFlowIncompleteError("no flight selected in booking session")
	}
	if len(st.Passengers) == 0 {
		return nil, NewFlowIncompleteError("no passengers entered in booking session")
	}
	if st.TotalPrice <= 0 {
		return nil, NewFlowIncompleteError("booking session has no payable total")
	}

	id := uuid.New().String()
	booking := &models.Booking{
		ID:           id,
		Reference:    "SKY-" + strings.ToUpper(id[:8]),
		FlightID:     st.SelectedFlight.ID,
		Airline:      st.SelectedFlight.Airline,
		FlightNumber: st.SelectedFlight.FlightNumber,
		Passengers:   st.Passengers,
		Seats:        st.Snapshot().Seats,
		Breakdown:    st.Breakdown,
		TotalPrice:   st.TotalPrice,
		Status:       "confirmed",
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.Store.Clear(ctx, sessionID)
	return booking, nil
}
