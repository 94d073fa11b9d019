package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"skylane/database/repository"
	"skylane/models"
	"skylane/services/booking"
	"skylane/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapKV is a minimal in-memory KeyValueStore for handler tests.
type mapKV struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (m *mapKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	return data, ok, nil
}

func (m *mapKV) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *mapKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *mapKV) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok, nil
}

func (m *mapKV) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

// stubBookingRepo records created bookings without a database.
type stubBookingRepo struct {
	created []*models.Booking
}

func (s *stubBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	s.created = append(s.created, b)
	return nil
}

func (s *stubBookingRepo) GetByReference(ctx context.Context, ref string) (*models.Booking, error) {
	for _, b := range s.created {
		if b.Reference == ref {
			return b, nil
		}
	}
	return nil, fmt.Errorf("booking %s not found", ref)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *stubBookingRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubBookingRepo{}
	catalog := repository.NewMemoryCatalogRepo()
	svc := &booking.DefaultBookingFlowService{
		Store:       booking.NewSessionStore(&mapKV{entries: make(map[string][]byte)}),
		Catalog:     catalog,
		BookingRepo: repo,
	}
	h := NewBookingHandler(svc, catalog, utils.GetLogger())

	r := gin.New()
	r.POST("/api/booking/session", h.StartSession)
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.DELETE("/api/booking/session/:sessionID", h.CancelSession)
	r.PUT("/api/booking/session/:sessionID/flight", h.SelectFlight)
	r.PUT("/api/booking/session/:sessionID/seats/:passengerID", h.AssignSeat)
	r.PUT("/api/booking/session/:sessionID/passengers", h.SetPassengers)
	r.PUT("/api/booking/session/:sessionID/extras/insurance", h.SetInsurance)
	r.POST("/api/booking/session/:sessionID/next", h.NextStep)
	r.POST("/api/booking/session/:sessionID/confirm", h.ConfirmBooking)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validCriteria() models.SearchCriteria {
	return models.SearchCriteria{
		TripType:   models.TripOneWay,
		Segments:   []models.SegmentQuery{{Origin: "JFK", Destination: "LAX", Departure: time.Date(2026, 10, 12, 8, 0, 0, 0, time.UTC)}},
		Passengers: models.PassengerCounts{Adults: 1},
		CabinClass: models.CabinEconomy,
	}
}

func startSession(t *testing.T, r *gin.Engine) models.StartSessionResponse {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/api/booking/session", validCriteria())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StartSessionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func TestStartSession(t *testing.T) {
	r, _ := setupTestRouter(t)

	resp := startSession(t, r)
	assert.NotEmpty(t, resp.Flights)
}

func TestStartSession_InvalidCriteria(t *testing.T) {
	r, _ := setupTestRouter(t)

	criteria := validCriteria()
	criteria.Passengers = models.PassengerCounts{Adults: 2, Infants: 5}

	rec := doJSON(t, r, http.MethodPost, "/api/booking/session", criteria)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSession_Unknown(t *testing.T) {
	r, _ := setupTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/booking/session/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNextStep_BlockedWhenIncomplete(t *testing.T) {
	r, _ := setupTestRouter(t)
	resp := startSession(t, r)
	base := "/api/booking/session/" + resp.SessionID

	// search step is complete (criteria are set), so the first advance works.
	rec := doJSON(t, r, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// results step needs a selected flight.
	rec = doJSON(t, r, http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBookingFlow_EndToEnd(t *testing.T) {
	r, repo := setupTestRouter(t)
	resp := startSession(t, r)
	base := "/api/booking/session/" + resp.SessionID

	rec := doJSON(t, r, http.MethodPut, base+"/flight", gin.H{"flightId": "FL-1001"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPut, base+"/seats/p1", gin.H{"seatId": "1A"})
	require.Equal(t, http.StatusOK, rec.Code)

	var view models.SessionView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, 900.0, view.TotalPrice)

	passengers := gin.H{"passengers": []models.PassengerInfo{{
		ID:        "p1",
		Type:      models.PassengerAdult,
		FirstName: "Ada",
		LastName:  "Lovelace",
		BirthDate: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Gender:    "female",
		Contact:   &models.ContactInfo{Email: "ada@example.com", Phone: "5550100", CountryCode: "+1"},
	}}}
	rec = doJSON(t, r, http.MethodPut, base+"/passengers", passengers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPut, base+"/extras/insurance", gin.H{"itemId": "ins-basic"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
	assert.Equal(t, 924.0, view.TotalPrice)

	rec = doJSON(t, r, http.MethodPost, base+"/confirm", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var confirmed models.Booking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&confirmed))
	assert.Equal(t, "confirmed", confirmed.Status)
	assert.Equal(t, 924.0, confirmed.TotalPrice)
	require.Len(t, repo.created, 1)

	// The session no longer exists after confirmation.
	rec = doJSON(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelSession(t *testing.T) {
	r, _ := setupTestRouter(t)
	resp := startSession(t, r)
	base := "/api/booking/session/" + resp.SessionID

	rec := doJSON(t, r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
