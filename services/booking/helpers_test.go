package booking

import (
	"context"
	"sync"
	"time"

	"skylane/models"
)

func testFlight() models.Flight {
	return models.Flight{
		ID:           "FL-9001",
		Airline:      "Skylane Air",
		FlightNumber: "SL900",
		Segments: []models.FlightSegment{
			{
				Departure:       models.SegmentPoint{Airport: "JFK", Time: time.Date(2026, 10, 12, 8, 30, 0, 0, time.UTC)},
				Arrival:         models.SegmentPoint{Airport: "LAX", Time: time.Date(2026, 10, 12, 14, 30, 0, 0, time.UTC)},
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
	}
}

func testSeat(id string, row int, column string, price float64) models.Seat {
	return models.Seat{
		ID:       id,
		Row:      row,
		Column:   column,
		Status:   models.SeatSelected,
		Type:     models.SeatStandard,
		Position: models.SeatWindow,
		Price:    price,
	}
}

func testPassenger(id string, ptype models.PassengerType) models.PassengerInfo {
	return models.PassengerInfo{
		ID:        id,
		Type:      ptype,
		FirstName: "Ada",
		LastName:  "Lovelace",
		BirthDate: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:    "female",
	}
}

// memoryKV is an in-memory KeyValueStore honoring TTLs, standing in for
// Redis in tests.
type memoryKV struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func newMemoryKV() *memoryKV {
	return &memoryKV{entries: make(map[string]memoryEntry)}
}

func (m *memoryKV) live(key string) (memoryEntry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}

func (m *memoryKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(key)
	if !ok {
		return nil, false, nil
	}
	return e.data, true, nil
}

func (m *memoryKV) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{data: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *memoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memoryKV) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.live(key)
	return ok, nil
}

func (m *memoryKV) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.live(key)
	if !ok {
		return nil
	}
	e.expiresAt = time.Now().Add(ttl)
	m.entries[key] = e
	return nil
}

// failingKV errors on every operation, standing in for an unreachable store.
type failingKV struct{ err error }

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, f.err
}

func (f *failingKV) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return f.err
}

func (f *failingKV) Delete(ctx context.Context, key string) error { return f.err }

func (f *failingKV) Exists(ctx context.Context, key string) (bool, error) { return false, f.err }

func (f *failingKV) Expire(ctx context.Context, key string, ttl time.Duration) error { return f.err }
