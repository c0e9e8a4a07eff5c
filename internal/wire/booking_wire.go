package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// GET /api/bookings - List bookings with optional filters
	// Supports ?unit_id=&meeting_room_id=&date_from=&date_to=&page=&per_page=
	r.Get("/api/bookings", bookingHandler.GetBookings)

	// GET /api/bookings/availability - Dry-run the validation engine
	// Registered before /{id} so "availability" is not captured as an ID.
	r.Get("/api/bookings/availability", bookingHandler.CheckAvailability)

	// GET /api/bookings/{id} - Booking details with consumptions
	r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

	// POST /api/bookings - Create booking (runs all validation checks)
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// PUT /api/bookings/{id} - Update booking (re-validates, excludes self from overlap)
	r.Put("/api/bookings/{id}", bookingHandler.UpdateBooking)

	// DELETE /api/bookings/{id} - Cancel booking (only before its start)
	r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)

	// GET /api/working-hours - Expose the configured booking policy
	r.Get("/api/working-hours", bookingHandler.GetWorkingHours)
}
