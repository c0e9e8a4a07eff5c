package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"room-booking/internal/data/repository"
	"room-booking/internal/errs"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timePattern accepts fixed-width 24-hour HH:MM only. The zero padding
// matters: bound and order comparisons rely on lexicographic string order.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidationResult is the outcome of one booking check.
type ValidationResult struct {
	IsValid bool
	Message string
	Code    string
}

// BookingValidation carries the four check outcomes as named fields.
// Callers index by name; Results keeps the fixed date, working-hours,
// capacity, availability order for the response envelope.
type BookingValidation struct {
	Date         ValidationResult
	WorkingHours ValidationResult
	Capacity     ValidationResult
	Availability ValidationResult
}

func (v *BookingValidation) Results() []ValidationResult {
	return []ValidationResult{v.Date, v.WorkingHours, v.Capacity, v.Availability}
}

func (v *BookingValidation) Valid() bool {
	for _, result := range v.Results() {
		if !result.IsValid {
			return false
		}
	}
	return true
}

// Failed returns the failing results in fixed order.
func (v *BookingValidation) Failed() []ValidationResult {
	var failed []ValidationResult
	for _, result := range v.Results() {
		if !result.IsValid {
			failed = append(failed, result)
		}
	}
	return failed
}

// FirstError returns the first failing result in fixed order, or nil.
func (v *BookingValidation) FirstError() *ValidationResult {
	for _, result := range v.Results() {
		if !result.IsValid {
			r := result
			return &r
		}
	}
	return nil
}

// WorkingHoursPolicy is the injected booking policy. Bookings run Monday
// through Friday between DayStart and DayEnd.
type WorkingHoursPolicy struct {
	DayStart           string
	DayEnd             string
	MinDurationMinutes int
	MaxDurationMinutes int
}

func (p WorkingHoursPolicy) WorkingDays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}

type ValidationService interface {
	// Validate runs the four independent booking checks. Store faults are
	// folded into failed results, never returned as errors.
	Validate(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string, participants int, excludeBookingID *uuid.UUID) *BookingValidation
	Policy() WorkingHoursPolicy
}

type validationService struct {
	rooms    repository.MeetingRoomRepository
	bookings repository.BookingRepository
	policy   WorkingHoursPolicy
	now      func() time.Time
	log      *zap.Logger
}

func NewValidationService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ValidationService {
	return &validationService{
		rooms:    repo.MeetingRoom,
		bookings: repo.Booking,
		policy: WorkingHoursPolicy{
			DayStart:           config.Booking.DayStart,
			DayEnd:             config.Booking.DayEnd,
			MinDurationMinutes: config.Booking.MinDurationMinutes,
			MaxDurationMinutes: config.Booking.MaxDurationMinutes,
		},
		now: time.Now,
		log: log.With(zap.String("service", "validation")),
	}
}

func (s *validationService) Policy() WorkingHoursPolicy {
	return s.policy
}

func (s *validationService) Validate(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string, participants int, excludeBookingID *uuid.UUID) *BookingValidation {
	return &BookingValidation{
		Date:         s.checkDate(date),
		WorkingHours: s.checkWorkingHours(date, startTime, endTime),
		Capacity:     s.checkCapacity(ctx, roomID, participants),
		Availability: s.checkAvailability(ctx, roomID, date, startTime, endTime, excludeBookingID),
	}
}

var valid = ValidationResult{IsValid: true}

func invalid(code, message string) ValidationResult {
	return ValidationResult{IsValid: false, Code: code, Message: message}
}

// checkDate compares at day granularity in the server's local zone.
func (s *validationService) checkDate(date time.Time) ValidationResult {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return invalid(errs.CodeInvalidDatePast, "Meeting date cannot be in the past")
	}
	return valid
}

// checkWorkingHours short-circuits on the first failing sub-check:
// weekday, time format, bounds, order, minimum duration, maximum duration.
func (s *validationService) checkWorkingHours(date time.Time, startTime, endTime string) ValidationResult {
	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return invalid(errs.CodeInvalidWorkingDay, fmt.Sprintf("Bookings are not available on %s", weekday))
	}

	if !timePattern.MatchString(startTime) || !timePattern.MatchString(endTime) {
		return invalid(errs.CodeInvalidTimeFormat, "Time must be in 24-hour HH:MM format")
	}

	// Lexicographic comparison is safe on fixed-width zero-padded times.
	if startTime < s.policy.DayStart || endTime > s.policy.DayEnd {
		return invalid(errs.CodeOutsideWorkingHours,
			fmt.Sprintf("Bookings must be within working hours %s - %s", s.policy.DayStart, s.policy.DayEnd))
	}

	if startTime >= endTime {
		return invalid(errs.CodeInvalidTimeOrder, "Start time must be before end time")
	}

	duration := minutesOf(endTime) - minutesOf(startTime)
	if duration < s.policy.MinDurationMinutes {
		return invalid(errs.CodeDurationTooShort,
			fmt.Sprintf("Booking must be at least %d minutes", s.policy.MinDurationMinutes))
	}
	if duration > s.policy.MaxDurationMinutes {
		return invalid(errs.CodeDurationTooLong,
			fmt.Sprintf("Booking must not exceed %d minutes", s.policy.MaxDurationMinutes))
	}

	return valid
}

func (s *validationService) checkCapacity(ctx context.Context, roomID uuid.UUID, participants int) ValidationResult {
	room, err := s.rooms.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Capacity check failed", zap.Error(err), zap.String("room_id", roomID.String()))
		return invalid(errs.CodeValidationError, "Unable to verify room capacity")
	}
	if room == nil {
		return invalid(errs.CodeRoomNotFound, "Meeting room not found")
	}
	if !room.IsActive {
		return invalid(errs.CodeRoomInactive, fmt.Sprintf("Meeting room %s is inactive", room.Name))
	}
	if participants > room.Capacity {
		return invalid(errs.CodeCapacityExceeded,
			fmt.Sprintf("Room %s holds at most %d participants", room.Name, room.Capacity))
	}
	if participants < 1 {
		return invalid(errs.CodeInvalidParticipants, "At least one participant is required")
	}
	return valid
}

func (s *validationService) checkAvailability(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string, excludeBookingID *uuid.UUID) ValidationResult {
	conflict, err := s.bookings.FindOverlapping(ctx, roomID, date, startTime, endTime, excludeBookingID)
	if err != nil {
		s.log.Error("Availability check failed", zap.Error(err), zap.String("room_id", roomID.String()))
		return invalid(errs.CodeValidationError, "Unable to verify room availability")
	}
	if conflict != nil {
		return invalid(errs.CodeTimeConflict,
			fmt.Sprintf("Room is already booked for %s - %s", conflict.StartTime, conflict.EndTime))
	}
	return valid
}

// minutesOf converts a validated HH:MM string to minutes since midnight.
func minutesOf(value string) int {
	hours := int(value[0]-'0')*10 + int(value[1]-'0')
	minutes := int(value[3]-'0')*10 + int(value[4]-'0')
	return hours*60 + minutes
}
