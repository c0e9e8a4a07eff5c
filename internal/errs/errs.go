package errs

import "errors"

// Error is a domain error carrying the machine-readable code the response
// envelope exposes. Handlers map codes to HTTP statuses instead of matching
// on message text.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Validation codes produced by the booking validation engine.
const (
	CodeInvalidDatePast       = "INVALID_DATE_PAST"
	CodeInvalidWorkingDay     = "INVALID_WORKING_DAY"
	CodeInvalidTimeFormat     = "INVALID_TIME_FORMAT"
	CodeOutsideWorkingHours   = "OUTSIDE_WORKING_HOURS"
	CodeInvalidTimeOrder      = "INVALID_TIME_ORDER"
	CodeDurationTooShort      = "INVALID_DURATION_TOO_SHORT"
	CodeDurationTooLong       = "INVALID_DURATION_TOO_LONG"
	CodeRoomNotFound          = "ROOM_NOT_FOUND"
	CodeRoomInactive          = "ROOM_INACTIVE"
	CodeCapacityExceeded      = "CAPACITY_EXCEEDED"
	CodeInvalidParticipants   = "INVALID_PARTICIPANTS_COUNT"
	CodeTimeConflict          = "TIME_CONFLICT"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
)

var (
	ErrBookingNotFound = New("BOOKING_NOT_FOUND", "booking not found")

	ErrTimeConflict = New(CodeTimeConflict, "time slot conflicts with an existing booking")

	ErrRoomNotFound = New("ROOM_NOT_FOUND", "meeting room not found")

	ErrUnitNotFound = New("UNIT_NOT_FOUND", "unit not found")

	ErrConsumptionNotFound = New("CONSUMPTION_NOT_FOUND", "consumption not found")

	ErrBookingAlreadyStarted = New("BOOKING_ALREADY_STARTED", "booking has already started and cannot be deleted")

	ErrRoomInUse = New("ROOM_IN_USE", "meeting room is referenced by bookings and cannot be deleted")

	ErrInvalidID = New("INVALID_ID", "invalid ID format")

	ErrInvalidDate = New("INVALID_DATE_FORMAT", "meeting date must be in YYYY-MM-DD format")

	ErrDuplicateName = New("DUPLICATE_NAME", "name already exists")
)

// CodeOf extracts the envelope code from err, or empty when err is not a
// domain error.
func CodeOf(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}
