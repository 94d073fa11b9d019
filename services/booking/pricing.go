package booking

import "skylane/models"

// ComputeBreakdown derives the full price breakdown for the current selection.
// The flight's own price is authoritative for fare, taxes and fees; seats and
// extras contribute their incremental prices. A nil flight and empty maps are
// valid inputs and yield a zero breakdown. The function is pure: identical
// inputs produce identical output, and summation never rounds intermediates.
func ComputeBreakdown(flight *models.Flight, seats map[string]models.Seat, extras models.SelectedExtras) models.DetailedPriceBreakdown {
	var b models.DetailedPriceBreakdown

	if flight != nil {
		b.BaseFare = flight.Price.Breakdown.BaseFare
		b.Taxes = flight.Price.Breakdown.Taxes
		b.Fees = flight.Price.Breakdown.Fees
	}

	for _, seat := range seats {
		b.SeatFees += seat.Price
	}
	for _, item := range extras.Baggage {
		b.ExtraBaggage += item.Price
	}
	for _, item := range extras.Meals {
		b.Meals += item.Price
	}
	if extras.Insurance != nil {
		b.Insurance = extras.Insurance.Price
	}
	if extras.LoungeAccess != nil {
		b.LoungeAccess = extras.LoungeAccess.Price
	}

	b.Total = b.BaseFare + b.Taxes + b.Fees + b.SeatFees +
		b.ExtraBaggage + b.Meals + b.Insurance + b.LoungeAccess
	return b
}
