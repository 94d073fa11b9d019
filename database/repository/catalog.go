// File: database/repository/catalog.go
package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skylane/models"
)

// CatalogRepository supplies the flight offers, seat maps and extras catalog
// the booking flow chooses from. The flow treats it as opaque beyond these
// shapes.
type CatalogRepository interface {
	SearchFlights(ctx context.Context, criteria models.SearchCriteria) ([]models.Flight, error)
	GetFlight(ctx context.Context, flightID string) (*models.Flight, error)
	GetSeatMap(ctx context.Context, flightID string) ([]models.Seat, error)
	GetExtras(ctx context.Context) (*models.ExtrasCatalog, error)
}

// MemoryCatalogRepo is a static in-memory catalog used for development and
// tests. It holds a small fixture fleet rather than generated data.
type MemoryCatalogRepo struct {
	flights  []models.Flight
	seatMaps map[string][]models.Seat
	extras   models.ExtrasCatalog
}

func NewMemoryCatalogRepo() *MemoryCatalogRepo {
	repo := &MemoryCatalogRepo{seatMaps: make(map[string][]models.Seat)}
	repo.seed()
	return repo
}

func (repo *MemoryCatalogRepo) SearchFlights(ctx context.Context, criteria models.SearchCriteria) ([]models.Flight, error) {
	if len(criteria.Segments) == 0 {
		return nil, nil
	}
	first := criteria.Segments[0]
	var out []models.Flight
	for _, f := range repo.flights {
		if len(f.Segments) == 0 {
			continue
		}
		dep := f.Segments[0].Departure.Airport
		arr := f.Segments[len(f.Segments)-1].Arrival.Airport
		if strings.EqualFold(dep, first.Origin) && strings.EqualFold(arr, first.Destination) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (repo *MemoryCatalogRepo) GetFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	for _, f := range repo.flights {
		if f.ID == flightID {
			flight := f
			return &flight, nil
		}
	}
	return nil, fmt.Errorf("flight %s not found", flightID)
}

func (repo *MemoryCatalogRepo) GetSeatMap(ctx context.Context, flightID string) ([]models.Seat, error) {
	seats, ok := repo.seatMaps[flightID]
	if !ok {
		return nil, fmt.Errorf("no seat map for flight %s", flightID)
	}
	return seats, nil
}

func (repo *MemoryCatalogRepo) GetExtras(ctx context.Context) (*models.ExtrasCatalog, error) {
	extras := repo.extras
	return &extras, nil
}

func (repo *MemoryCatalogRepo) seed() {
	departure := time.Date(2026, 10, 12, 8, 30, 0, 0, time.UTC)

	repo.flights = []models.Flight{
		{
			ID:           "FL-1001",
			Airline:      "Skylane Air",
			FlightNumber: "SL101",
			Segments: []models.FlightSegment{
				{
					Departure:       models.SegmentPoint{Airport: "JFK", Time: departure, Terminal: "4"},
					Arrival:         models.SegmentPoint{Airport: "LAX", Time: departure.Add(6 * time.Hour)},
					DurationMinutes: 360,
					Aircraft:        "A321neo",
				},
			},
			Price: models.FlightPrice{
				Amount:   850,
				Currency: "USD",
				Breakdown: models.FarePriceBreakdown{
					BaseFare: 700,
					Taxes:    100,
					Fees:     50,
				},
			},
			CabinClass:     models.CabinEconomy,
			SeatsAvailable: 42,
		},
		{
			ID:           "FL-1002",
			Airline:      "Skylane Air",
			FlightNumber: "SL205",
			Segments: []models.FlightSegment{
				{
					Departure:       models.SegmentPoint{Airport: "JFK", Time: departure.Add(4 * time.Hour), Terminal: "4"},
					Arrival:         models.SegmentPoint{Airport: "ORD", Time: departure.Add(6*time.Hour + 15*time.Minute)},
					DurationMinutes: 135,
					Aircraft:        "B737-800",
				},
				{
					Departure:       models.SegmentPoint{Airport: "ORD", Time: departure.Add(7*time.Hour + 30*time.Minute), Terminal: "1"},
					Arrival:         models.SegmentPoint{Airport: "LAX", Time: departure.Add(11 * time.Hour)},
					DurationMinutes: 210,
					Aircraft:        "B737-800",
				},
			},
			Price: models.FlightPrice{
				Amount:   612.5,
				Currency: "USD",
				Breakdown: models.FarePriceBreakdown{
					BaseFare: 480,
					Taxes:    92.5,
					Fees:     40,
				},
			},
			CabinClass:     models.CabinEconomy,
			SeatsAvailable: 17,
		},
	}

	for _, f := range repo.flights {
		repo.seatMaps[f.ID] = buildSeatMap()
	}

	repo.extras = models.ExtrasCatalog{
		Baggage: []models.ExtraItem{
			{ID: "bag-20", Name: "Checked bag 20kg", Price: 35},
			{ID: "bag-32", Name: "Checked bag 32kg", Price: 55},
		},
		Meals: []models.ExtraItem{
			{ID: "meal-std", Name: "Standard meal", Price: 12},
			{ID: "meal-veg", Name: "Vegetarian meal", Price: 12},
			{ID: "meal-gf", Name: "Gluten-free meal", Price: 14},
		},
		Insurance: []models.ExtraItem{
			{ID: "ins-basic", Name: "Travel insurance", Price: 24},
		},
		Lounge: []models.ExtraItem{
			{ID: "lounge-std", Name: "Lounge access", Price: 45},
		},
	}
}

func buildSeatMap() []models.Seat {
	columns := []string{"A", "B", "C", "D", "E", "F"}
	var seats []models.Seat
	for row := 1; row <= 30; row++ {
		for i, col := range columns {
			seat := models.Seat{
				ID:       models.SeatID(row, col),
				Row:      row,
				Column:   col,
				Status:   models.SeatAvailable,
				Type:     models.SeatStandard,
				Position: positionFor(i),
			}
			switch {
			case row <= 2:
				seat.Type = models.SeatExtraLegroom
				seat.Price = 50
			case row == 14:
				seat.Type = models.SeatExitRow
				seat.Price = 30
			case row <= 6:
				seat.Type = models.SeatPreferred
				seat.Price = 15
			}
			seats = append(seats, seat)
		}
	}
	return seats
}

func positionFor(columnIndex int) models.SeatPosition {
	switch columnIndex {
	case 0, 5:
		return models.SeatWindow
	case 2, 3:
		return models.SeatAisle
	default:
		return models.SeatMiddle
	}
}
