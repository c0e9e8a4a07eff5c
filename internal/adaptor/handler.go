package adaptor

import (
	"net/http"

	"room-booking/internal/errs"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking     *BookingHandler
	MeetingRoom *MeetingRoomHandler
	Unit        *UnitHandler
	Consumption *ConsumptionHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:     NewBookingHandler(service.Booking, log),
		MeetingRoom: NewMeetingRoomHandler(service.MeetingRoom, log),
		Unit:        NewUnitHandler(service.Unit, log),
		Consumption: NewConsumptionHandler(service.Consumption, log),
	}
}

// statusForCode maps domain error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case "BOOKING_NOT_FOUND", errs.CodeRoomNotFound, "UNIT_NOT_FOUND", "CONSUMPTION_NOT_FOUND":
		return http.StatusNotFound
	case errs.CodeTimeConflict:
		return http.StatusConflict
	case "":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// respondInvalidRequest rejects a request whose body failed struct
// validation, listing the per-field messages in the envelope.
func respondInvalidRequest(w http.ResponseWriter, log *zap.Logger, validationErrors map[string]string) {
	log.Warn("Request validation failed",
		zap.String("errors", utils.FormatValidationErrors(validationErrors)),
	)
	utils.ResponseBadRequest(w, "Missing or invalid required fields", errs.CodeMissingRequiredFields, validationErrors)
}

// handleServiceError writes the envelope for a failed service call. Errors
// without a domain code are unexpected store faults: they are logged and
// surfaced as a generic internal error, never with internal detail.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	code := errs.CodeOf(err)
	if code == "" {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
		)
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" rejected",
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("code", code),
	)
	utils.ResponseJSON(w, statusForCode(code), false, err.Error(), code, nil, nil)
}
