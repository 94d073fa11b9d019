package models

import "fmt"

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatOccupied  SeatStatus = "occupied"
	SeatBlocked   SeatStatus = "blocked"
	SeatSelected  SeatStatus = "selected"
)

type SeatType string

const (
	SeatStandard     SeatType = "standard"
	SeatExtraLegroom SeatType = "extraLegroom"
	SeatExitRow      SeatType = "exitRow"
	SeatPreferred    SeatType = "preferred"
)

type SeatPosition string

const (
	SeatWindow SeatPosition = "window"
	SeatMiddle SeatPosition = "middle"
	SeatAisle  SeatPosition = "aisle"
)

// Seat is one position on a flight's seat map. Price is the increment over
// the fare (0 for standard seats).
type Seat struct {
	ID       string       `json:"id" bson:"id"`
	Row      int          `json:"row" bson:"row"`
	Column   string       `json:"column" bson:"column"`
	Status   SeatStatus   `json:"status" bson:"status"`
	Type     SeatType     `json:"type" bson:"type"`
	Position SeatPosition `json:"position" bson:"position"`
	Price    float64      `json:"price" bson:"price"`
}

// SeatID derives the canonical seat identifier from row and column.
func SeatID(row int, column string) string {
	return fmt.Sprintf("%d%s", row, column)
}
