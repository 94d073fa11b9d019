package models

import (
	"fmt"
	"time"
)

// TripType describes the overall shape of an itinerary.
type TripType string

const (
	TripOneWay    TripType = "oneWay"
	TripRoundTrip TripType = "roundTrip"
	TripMultiCity TripType = "multiCity"
)

// CabinClass is the fare cabin requested for the whole itinerary.
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premiumEconomy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// SegmentQuery is one leg of the requested itinerary.
type SegmentQuery struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Departure   time.Time `json:"departure"`
}

// PassengerCounts is the requested passenger mix.
type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total returns the number of travellers across all types.
func (p PassengerCounts) Total() int {
	return p.Adults + p.Children + p.Infants
}

// SearchCriteria is the full search request a booking flow starts from.
type SearchCriteria struct {
	TripType   TripType        `json:"tripType"`
	Segments   []SegmentQuery  `json:"segments"`
	Passengers PassengerCounts `json:"passengers"`
	CabinClass CabinClass      `json:"cabinClass"`
}

// Validate rejects malformed criteria before they enter a booking session.
func (c SearchCriteria) Validate() error {
	total := c.Passengers.Total()
	if total < 1 || total > 9 {
		return fmt.Errorf("total passengers must be between 1 and 9, got %d", total)
	}
	if c.Passengers.Adults < 1 {
		return fmt.Errorf("at least one adult passenger is required")
	}
	if c.Passengers.Infants > c.Passengers.Adults {
		return fmt.Errorf("each infant must travel with an adult: %d infants, %d adults",
			c.Passengers.Infants, c.Passengers.Adults)
	}

	switch c.TripType {
	case TripOneWay:
		if len(c.Segments) != 1 {
			return fmt.Errorf("one-way trips require exactly 1 segment, got %d", len(c.Segments))
		}
	case TripRoundTrip:
		if len(c.Segments) != 2 {
			return fmt.Errorf("round trips require exactly 2 segments, got %d", len(c.Segments))
		}
		out, back := c.Segments[0], c.Segments[1]
		if out.Destination != back.Origin || out.Origin != back.Destination {
			return fmt.Errorf("round trip segments must form a there-and-back pair")
		}
		if back.Departure.Before(out.Departure) {
			return fmt.Errorf("return departure cannot precede outbound departure")
		}
	case TripMultiCity:
		if len(c.Segments) < 1 || len(c.Segments) > 5 {
			return fmt.Errorf("multi-city trips allow 1 to 5 segments, got %d", len(c.Segments))
		}
	default:
		return fmt.Errorf("unknown trip type %q", c.TripType)
	}

	for i, seg := range c.Segments {
		if seg.Origin == "" || seg.Destination == "" {
			return fmt.Errorf("segment %d is missing an origin or destination", i+1)
		}
		if seg.Origin == seg.Destination {
			return fmt.Errorf("segment %d has identical origin and destination %q", i+1, seg.Origin)
		}
	}
	return nil
}
