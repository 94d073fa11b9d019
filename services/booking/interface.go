package booking

import (
	"context"

	"skylane/database/repository"
	"skylane/models"
)

// BookingFlowService defines the interface for driving one stateful booking
// flow per session id. Mutators load the session, apply the change, recompute
// the price and save the session back under the full TTL window.
type BookingFlowService interface {
	StartSession(ctx context.Context, criteria models.SearchCriteria) (*State, []models.Flight, error)
	GetSession(ctx context.Context, sessionID string) (*State, error)

	SelectFlight(ctx context.Context, sessionID, flightID string) (*State, error)
	ClearFlight(ctx context.Context, sessionID string) (*State, error)

	AssignSeat(ctx context.Context, sessionID, passengerID, seatID string) (*State, error)
	ReleaseSeat(ctx context.Context, sessionID, passengerID string) (*State, error)
	ClearSeats(ctx context.Context, sessionID string) (*State, error)

	SetPassengers(ctx context.Context, sessionID string, passengers []models.PassengerInfo) (*State, error)
	UpdatePassenger(ctx context.Context, sessionID, passengerID string, info models.PassengerInfo) (*State, error)

	UpdateBaggage(ctx context.Context, sessionID, passengerID, itemID string) (*State, error)
	UpdateMeal(ctx context.Context, sessionID, passengerID, itemID string) (*State, error)
	SetInsurance(ctx context.Context, sessionID, itemID string) (*State, error)
	SetLoungeAccess(ctx context.Context, sessionID, itemID string) (*State, error)
	ClearExtras(ctx context.Context, sessionID string) (*State, error)

	NextStep(ctx context.Context, sessionID string) (*State, error)
	PreviousStep(ctx context.Context, sessionID string) (*State, error)
	GoToStep(ctx context.Context, sessionID string, step Step) (*State, error)

	ExtendSession(ctx context.Context, sessionID string)
	CancelSession(ctx context.Context, sessionID string)
	Confirm(ctx context.Context, sessionID string) (*models.Booking, error)
}

// DefaultBookingFlowService implements BookingFlowService.
type DefaultBookingFlowService struct {
	Store       *SessionStore
	Catalog     repository.CatalogRepository
	BookingRepo repository.BookingRepository
}
