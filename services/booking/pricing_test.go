package booking

import (
	"testing"

	"skylane/models"

	"github.com/stretchr/testify/assert"
)

func breakdownComponentSum(b models.DetailedPriceBreakdown) float64 {
	return b.BaseFare + b.Taxes + b.Fees + b.SeatFees +
		b.ExtraBaggage + b.Meals + b.Insurance + b.LoungeAccess
}

func TestComputeBreakdown_NilFlightDegradesToZero(t *testing.T) {
	b := ComputeBreakdown(nil, nil, models.NewSelectedExtras())

	assert.Zero(t, b.BaseFare)
	assert.Zero(t, b.Taxes)
	assert.Zero(t, b.Fees)
	assert.Zero(t, b.Total)
}

func TestComputeBreakdown_FlightPriceIsAuthoritative(t *testing.T) {
	flight := testFlight()
	b := ComputeBreakdown(&flight, nil, models.NewSelectedExtras())

	assert.Equal(t, 700.0, b.BaseFare)
	assert.Equal(t, 100.0, b.Taxes)
	assert.Equal(t, 50.0, b.Fees)
	assert.Equal(t, 850.0, b.Total)
}

func TestComputeBreakdown_TotalEqualsComponentSum(t *testing.T) {
	flight := testFlight()
	seats := map[string]models.Seat{
		"p1": testSeat("12A", 12, "A", 50),
		"p2": testSeat("12B", 12, "B", 0),
	}
	extras := models.NewSelectedExtras()
	extras.Baggage["p1"] = models.ExtraItem{ID: "bag-20", Name: "Checked bag 20kg", Price: 35}
	extras.Meals["p2"] = models.ExtraItem{ID: "meal-std", Name: "Standard meal", Price: 12}
	extras.Insurance = &models.ExtraItem{ID: "ins-basic", Name: "Travel insurance", Price: 24}

	b := ComputeBreakdown(&flight, seats, extras)

	assert.InDelta(t, breakdownComponentSum(b), b.Total, 0.01)
	assert.Equal(t, 50.0, b.SeatFees)
	assert.Equal(t, 35.0, b.ExtraBaggage)
	assert.Equal(t, 12.0, b.Meals)
	assert.Equal(t, 24.0, b.Insurance)
	assert.Zero(t, b.LoungeAccess)
}

func TestComputeBreakdown_Idempotent(t *testing.T) {
	flight := testFlight()
	seats := map[string]models.Seat{
		"p1": testSeat("1A", 1, "A", 50),
		"p2": testSeat("20C", 20, "C", 0),
		"p3": testSeat("14F", 14, "F", 30),
	}
	extras := models.NewSelectedExtras()
	extras.Baggage["p2"] = models.ExtraItem{ID: "bag-32", Price: 55}
	extras.LoungeAccess = &models.ExtraItem{ID: "lounge-std", Price: 45}

	first := ComputeBreakdown(&flight, seats, extras)
	second := ComputeBreakdown(&flight, seats, extras)

	assert.Equal(t, first, second)
}

func TestComputeBreakdown_Monotonicity(t *testing.T) {
	flight := testFlight()
	seats := map[string]models.Seat{"p1": testSeat("12B", 12, "B", 0)}
	extras := models.NewSelectedExtras()

	base := ComputeBreakdown(&flight, seats, extras)

	tests := []struct {
		name string
		grow func()
	}{
		{"add priced seat", func() { seats["p2"] = testSeat("1A", 1, "A", 50) }},
		{"add baggage", func() { extras.Baggage["p1"] = models.ExtraItem{ID: "bag-20", Price: 35} }},
		{"add meal", func() { extras.Meals["p1"] = models.ExtraItem{ID: "meal-std", Price: 12} }},
		{"add insurance", func() { extras.Insurance = &models.ExtraItem{ID: "ins-basic", Price: 24} }},
		{"add lounge", func() { extras.LoungeAccess = &models.ExtraItem{ID: "lounge-std", Price: 45} }},
	}

	prev := base.Total
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.grow()
			b := ComputeBreakdown(&flight, seats, extras)
			assert.GreaterOrEqual(t, b.Total, prev)
			prev = b.Total
		})
	}
}
