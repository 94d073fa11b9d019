package models

// DetailedPriceBreakdown itemizes the running total of an in-progress booking.
// Total always equals the sum of the eight components; every mutation of the
// booking session recomputes the whole structure rather than patching fields.
type DetailedPriceBreakdown struct {
	BaseFare     float64 `json:"baseFare" bson:"base_fare"`
	Taxes        float64 `json:"taxes" bson:"taxes"`
	Fees         float64 `json:"fees" bson:"fees"`
	SeatFees     float64 `json:"seatFees" bson:"seat_fees"`
	ExtraBaggage float64 `json:"extraBaggage" bson:"extra_baggage"`
	Meals        float64 `json:"meals" bson:"meals"`
	Insurance    float64 `json:"insurance" bson:"insurance"`
	LoungeAccess float64 `json:"loungeAccess" bson:"lounge_access"`
	Total        float64 `json:"total" bson:"total"`
}
