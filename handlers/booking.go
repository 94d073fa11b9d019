package handlers

import (
	"net/http"

	"skylane/database/repository"
	"skylane/models"
	"skylane/services/booking"
	"skylane/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking flow over HTTP. It is the UI-facing
// collaborator: flow policy such as "check CanProceed before advancing" lives
// here, not in the state machine.
type BookingHandler struct {
	Svc     booking.BookingFlowService
	Catalog repository.CatalogRepository
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingFlowService, catalog repository.CatalogRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Catalog: catalog, Logger: logger}
}

// respondFlowError maps typed flow errors to HTTP statuses.
func (h *BookingHandler) respondFlowError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeSessionNotFound:
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case booking.CodeInvalidSelection:
		utils.JSONError(c, http.StatusBadRequest, "invalid selection", err.Error())
	case booking.CodeFlowIncomplete:
		utils.JSONError(c, http.StatusConflict, "booking flow incomplete", err.Error())
	default:
		h.Logger.Error("booking flow operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}

func (h *BookingHandler) respondState(c *gin.Context, st *booking.State) {
	c.JSON(http.StatusOK, st.View())
}

// SearchFlights lists catalog offers for validated criteria without opening
// a session.
func (h *BookingHandler) SearchFlights(c *gin.Context) {
	var criteria models.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search criteria", err.Error())
		return
	}
	if err := criteria.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search criteria", err.Error())
		return
	}
	flights, err := h.Catalog.SearchFlights(c.Request.Context(), criteria)
	if err != nil {
		h.Logger.Error("flight search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "flight search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"flights": flights})
}

// StartSession validates the criteria, opens a new booking session and
// returns the matching offers.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var criteria models.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search criteria", err.Error())
		return
	}
	if err := criteria.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search criteria", err.Error())
		return
	}

	st, flights, err := h.Svc.StartSession(c.Request.Context(), criteria)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.StartSessionResponse{SessionID: st.SessionID, Flights: flights})
}

func (h *BookingHandler) GetSession(c *gin.Context) {
	st, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) SelectFlight(c *gin.Context) {
	var input struct {
		FlightID string `json:"flightId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.SelectFlight(c.Request.Context(), c.Param("sessionID"), input.FlightID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) ClearFlight(c *gin.Context) {
	st, err := h.Svc.ClearFlight(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

// GetSeatMap returns the seat map of the session's selected flight.
func (h *BookingHandler) GetSeatMap(c *gin.Context) {
	st, err := h.Svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	if st.SelectedFlight == nil {
		utils.JSONError(c, http.StatusConflict, "no flight selected", "select a flight before requesting its seat map")
		return
	}
	seats, err := h.Catalog.GetSeatMap(c.Request.Context(), st.SelectedFlight.ID)
	if err != nil {
		h.Logger.Error("seat map lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "seat map lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"seats": seats})
}

func (h *BookingHandler) AssignSeat(c *gin.Context) {
	var input struct {
		SeatID string `json:"seatId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.AssignSeat(c.Request.Context(), c.Param("sessionID"), c.Param("passengerID"), input.SeatID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) ReleaseSeat(c *gin.Context) {
	st, err := h.Svc.ReleaseSeat(c.Request.Context(), c.Param("sessionID"), c.Param("passengerID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) ClearSeats(c *gin.Context) {
	st, err := h.Svc.ClearSeats(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) SetPassengers(c *gin.Context) {
	var input struct {
		Passengers []models.PassengerInfo `json:"passengers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.SetPassengers(c.Request.Context(), c.Param("sessionID"), input.Passengers)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) UpdatePassenger(c *gin.Context) {
	var info models.PassengerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.UpdatePassenger(c.Request.Context(), c.Param("sessionID"), c.Param("passengerID"), info)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

// GetExtrasCatalog lists the purchasable add-ons.
func (h *BookingHandler) GetExtrasCatalog(c *gin.Context) {
	catalog, err := h.Catalog.GetExtras(c.Request.Context())
	if err != nil {
		h.Logger.Error("extras catalog lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "extras catalog lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// extraInput carries an extras selection; an empty itemId removes it.
type extraInput struct {
	ItemID string `json:"itemId"`
}

func (h *BookingHandler) UpdateBaggage(c *gin.Context) {
	var input extraInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.UpdateBaggage(c.Request.Context(), c.Param("sessionID"), c.Param("passengerID"), input.ItemID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) UpdateMeal(c *gin.Context) {
	var input extraInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.UpdateMeal(c.Request.Context(), c.Param("sessionID"), c.Param("passengerID"), input.ItemID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) SetInsurance(c *gin.Context) {
	var input extraInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.SetInsurance(c.Request.Context(), c.Param("sessionID"), input.ItemID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) SetLoungeAccess(c *gin.Context) {
	var input extraInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.SetLoungeAccess(c.Request.Context(), c.Param("sessionID"), input.ItemID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) ClearExtras(c *gin.Context) {
	st, err := h.Svc.ClearExtras(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

// NextStep advances the flow by one step. The completion check happens here:
// the state machine itself never blocks an advance.
func (h *BookingHandler) NextStep(c *gin.Context) {
	sessionID := c.Param("sessionID")
	st, err := h.Svc.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	if !st.CanProceed() {
		utils.JSONError(c, http.StatusConflict, "current step is incomplete",
			"finish the current step before advancing")
		return
	}
	st, err = h.Svc.NextStep(c.Request.Context(), sessionID)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

func (h *BookingHandler) PreviousStep(c *gin.Context) {
	st, err := h.Svc.PreviousStep(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

// GoToStep jumps straight to a step; edit flows revisit earlier steps this way.
func (h *BookingHandler) GoToStep(c *gin.Context) {
	var input struct {
		Step string `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	st, err := h.Svc.GoToStep(c.Request.Context(), c.Param("sessionID"), booking.Step(input.Step))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	h.respondState(c, st)
}

// ExtendSession slides the expiry window on explicit client activity.
func (h *BookingHandler) ExtendSession(c *gin.Context) {
	h.Svc.ExtendSession(c.Request.Context(), c.Param("sessionID"))
	c.JSON(http.StatusOK, gin.H{"extended": true})
}

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	bookingRecord, err := h.Svc.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingRecord)
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	h.Svc.CancelSession(c.Request.Context(), c.Param("sessionID"))
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}
