package models

// ExtraItem is one purchasable add-on from the extras catalog.
type ExtraItem struct {
	ID    string  `json:"id" bson:"id"`
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

// SelectedExtras holds the add-ons chosen so far. Baggage and Meals are keyed
// by passenger id; Insurance and LoungeAccess apply to the whole booking.
type SelectedExtras struct {
	Baggage      map[string]ExtraItem
	Meals        map[string]ExtraItem
	Insurance    *ExtraItem
	LoungeAccess *ExtraItem
}

// NewSelectedExtras returns an empty selection with initialized maps.
func NewSelectedExtras() SelectedExtras {
	return SelectedExtras{
		Baggage: make(map[string]ExtraItem),
		Meals:   make(map[string]ExtraItem),
	}
}

// ExtrasCatalog lists the add-ons offered alongside a flight.
type ExtrasCatalog struct {
	Baggage   []ExtraItem `json:"baggage"`
	Meals     []ExtraItem `json:"meals"`
	Insurance []ExtraItem `json:"insurance"`
	Lounge    []ExtraItem `json:"lounge"`
}
