package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/errs"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBookings handles GET /api/bookings
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.List(r.Context(), req, filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", errs.CodeMissingRequiredFields, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	booking, validation, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}
	if validation != nil {
		h.respondValidationFailure(w, validation)
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// UpdateBooking handles PUT /api/bookings/{id}
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", errs.CodeMissingRequiredFields, nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	booking, validation, err := h.service.Update(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}
	if validation != nil {
		h.respondValidationFailure(w, validation)
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CheckAvailability handles GET /api/bookings/availability
// Read-only probe: nothing is written regardless of outcome.
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.AvailabilityRequest{
		MeetingRoomID:     query.Get("meeting_room_id"),
		MeetingDate:       query.Get("meeting_date"),
		StartTime:         query.Get("start_time"),
		EndTime:           query.Get("end_time"),
		TotalParticipants: utils.ParseInt(query.Get("total_participants"), 1),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		respondInvalidRequest(w, h.log, validationErrors)
		return
	}

	availability, err := h.service.CheckAvailability(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// GetWorkingHours handles GET /api/working-hours
func (h *BookingHandler) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.WorkingHours())
}

// respondValidationFailure reports the first failing code plus every failed
// check so a client can show all violations at once.
func (h *BookingHandler) respondValidationFailure(w http.ResponseWriter, validation *usecase.BookingValidation) {
	first := validation.FirstError()

	failed := validation.Failed()
	validationErrors := make([]response.ValidationResultResponse, len(failed))
	for i, result := range failed {
		validationErrors[i] = response.ValidationResultResponse{
			IsValid: result.IsValid,
			Message: result.Message,
			Code:    result.Code,
		}
	}

	utils.ResponseJSON(w, statusForCode(first.Code), false, first.Message, first.Code, nil, validationErrors)
}

func (h *BookingHandler) parseFilter(w http.ResponseWriter, r *http.Request) (repository.BookingFilter, bool) {
	query := r.URL.Query()
	var filter repository.BookingFilter

	if value := query.Get("unit_id"); value != "" {
		unitID, err := uuid.Parse(value)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid unit_id filter", "INVALID_ID", nil)
			return filter, false
		}
		filter.UnitID = &unitID
	}
	if value := query.Get("meeting_room_id"); value != "" {
		roomID, err := uuid.Parse(value)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid meeting_room_id filter", "INVALID_ID", nil)
			return filter, false
		}
		filter.MeetingRoomID = &roomID
	}
	if value := query.Get("date_from"); value != "" {
		from, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date_from filter", "INVALID_DATE_FORMAT", nil)
			return filter, false
		}
		filter.DateFrom = &from
	}
	if value := query.Get("date_to"); value != "" {
		to, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date_to filter", "INVALID_DATE_FORMAT", nil)
			return filter, false
		}
		filter.DateTo = &to
	}

	return filter, true
}
