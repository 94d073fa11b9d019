package routes

import (
	"skylane/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	flights := r.Group("/api/flights")
	{
		flights.POST("/search", h.SearchFlights)
	}

	r.GET("/api/extras", h.GetExtrasCatalog)

	booking := r.Group("/api/booking")
	{
		booking.POST("/session", h.StartSession)

		session := booking.Group("/session/:sessionID")
		{
			session.GET("", h.GetSession)
			session.DELETE("", h.CancelSession)

			session.PUT("/flight", h.SelectFlight)
			session.DELETE("/flight", h.ClearFlight)
			session.GET("/seatmap", h.GetSeatMap)

			session.PUT("/seats/:passengerID", h.AssignSeat)
			session.DELETE("/seats/:passengerID", h.ReleaseSeat)
			session.DELETE("/seats", h.ClearSeats)

			session.PUT("/passengers", h.SetPassengers)
			session.PATCH("/passengers/:passengerID", h.UpdatePassenger)

			session.PUT("/extras/baggage/:passengerID", h.UpdateBaggage)
			session.PUT("/extras/meals/:passengerID", h.UpdateMeal)
			session.PUT("/extras/insurance", h.SetInsurance)
			session.PUT("/extras/lounge", h.SetLoungeAccess)
			session.DELETE("/extras", h.ClearExtras)

			session.POST("/next", h.NextStep)
			session.POST("/previous", h.PreviousStep)
			session.PUT("/step", h.GoToStep)

			session.POST("/extend", h.ExtendSession)
			session.POST("/confirm", h.ConfirmBooking)
		}
	}
}
