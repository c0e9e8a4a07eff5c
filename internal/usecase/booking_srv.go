package usecase

import (
	"context"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	List(ctx context.Context, req *request.PaginatedRequest, filter repository.BookingFilter) (*response.PaginatedResponse[response.BookingResponse], error)
	GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)

	// Create and Update return a non-nil BookingValidation when the
	// validation engine rejected the request; the booking response is nil
	// in that case and the error carries the first failing code.
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, *BookingValidation, error)
	Update(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, *BookingValidation, error)

	Delete(ctx context.Context, bookingID string) error
	CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)
	WorkingHours() response.WorkingHoursResponse
}

type bookingService struct {
	repo      *repository.Repository
	validator ValidationService
	now       func() time.Time
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, validator ValidationService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
		log:       log.With(zap.String("service", "booking")),
	}
}

func parseMeetingDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, errs.ErrInvalidDate
	}
	return date, nil
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errs.ErrInvalidID
	}
	return id, nil
}

func (s *bookingService) List(ctx context.Context, req *request.PaginatedRequest, filter repository.BookingFilter) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = s.buildBookingResponse(ctx, booking)
	}

	s.log.Info("Bookings listed",
		zap.Int("count", len(bookings)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID(bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errs.ErrBookingNotFound
	}

	resp := s.buildBookingResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, *BookingValidation, error) {
	unitID, err := parseID(req.UnitID)
	if err != nil {
		return nil, nil, err
	}
	roomID, err := parseID(req.MeetingRoomID)
	if err != nil {
		return nil, nil, err
	}
	date, err := parseMeetingDate(req.MeetingDate)
	if err != nil {
		return nil, nil, err
	}

	unit, err := s.repo.Unit.FindByID(ctx, unitID)
	if err != nil {
		return nil, nil, err
	}
	if unit == nil {
		return nil, nil, errs.ErrUnitNotFound
	}

	consumptionIDs, err := s.resolveConsumptionIDs(ctx, req.ConsumptionIDs)
	if err != nil {
		return nil, nil, err
	}

	validation := s.validator.Validate(ctx, roomID, date, req.StartTime, req.EndTime, req.TotalParticipants, nil)
	if !validation.Valid() {
		s.log.Warn("Booking rejected by validation",
			zap.String("room_id", req.MeetingRoomID),
			zap.String("code", validation.FirstError().Code),
		)
		return nil, validation, nil
	}

	totalConsumption := 0
	if req.TotalConsumption != nil {
		totalConsumption = *req.TotalConsumption
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UnitID:            unitID,
		MeetingRoomID:     roomID,
		MeetingDate:       date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		TotalParticipants: req.TotalParticipants,
		TotalConsumption:  totalConsumption,
		Notes:             req.Notes,
	}

	if err := s.repo.Booking.CreateWithConsumptions(ctx, booking, consumptionIDs); err != nil {
		return nil, nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("unit_id", unitID.String()),
		zap.String("room_id", roomID.String()),
		zap.String("meeting_date", req.MeetingDate),
		zap.String("start_time", req.StartTime),
		zap.String("end_time", req.EndTime),
	)

	resp := s.buildBookingResponse(ctx, booking)
	return &resp, nil, nil
}

func (s *bookingService) Update(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, *BookingValidation, error) {
	id, err := parseID(bookingID)
	if err != nil {
		return nil, nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if booking == nil {
		return nil, nil, errs.ErrBookingNotFound
	}

	// Merge provided fields over existing values.
	if req.UnitID != nil {
		unitID, err := parseID(*req.UnitID)
		if err != nil {
			return nil, nil, err
		}
		unit, err := s.repo.Unit.FindByID(ctx, unitID)
		if err != nil {
			return nil, nil, err
		}
		if unit == nil {
			return nil, nil, errs.ErrUnitNotFound
		}
		booking.UnitID = unitID
	}
	if req.MeetingRoomID != nil {
		roomID, err := parseID(*req.MeetingRoomID)
		if err != nil {
			return nil, nil, err
		}
		booking.MeetingRoomID = roomID
	}
	if req.MeetingDate != nil {
		date, err := parseMeetingDate(*req.MeetingDate)
		if err != nil {
			return nil, nil, err
		}
		booking.MeetingDate = date
	}
	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		booking.EndTime = *req.EndTime
	}
	if req.TotalParticipants != nil {
		booking.TotalParticipants = *req.TotalParticipants
	}
	if req.TotalConsumption != nil {
		booking.TotalConsumption = *req.TotalConsumption
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}

	// Keep current associations unless the request replaces them.
	var consumptionIDs []uuid.UUID
	if req.ConsumptionIDs != nil {
		consumptionIDs, err = s.resolveConsumptionIDs(ctx, *req.ConsumptionIDs)
		if err != nil {
			return nil, nil, err
		}
	} else {
		associations, err := s.repo.BookingConsumption.FindByBookingID(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		for _, association := range associations {
			consumptionIDs = append(consumptionIDs, association.ConsumptionID)
		}
	}

	// The booking excludes itself from the overlap search so it can keep
	// or shrink its own slot.
	validation := s.validator.Validate(ctx, booking.MeetingRoomID, booking.MeetingDate, booking.StartTime, booking.EndTime, booking.TotalParticipants, &booking.ID)
	if !validation.Valid() {
		s.log.Warn("Booking update rejected by validation",
			zap.String("booking_id", bookingID),
			zap.String("code", validation.FirstError().Code),
		)
		return nil, validation, nil
	}

	booking.UpdatedAt = s.now()

	if err := s.repo.Booking.UpdateWithConsumptions(ctx, booking, consumptionIDs); err != nil {
		return nil, nil, err
	}

	s.log.Info("Booking updated", zap.String("booking_id", bookingID))

	resp := s.buildBookingResponse(ctx, booking)
	return &resp, nil, nil
}

func (s *bookingService) Delete(ctx context.Context, bookingID string) error {
	id, err := parseID(bookingID)
	if err != nil {
		return err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return errs.ErrBookingNotFound
	}

	if bookingStart(booking).Before(s.now()) {
		return errs.ErrBookingAlreadyStarted
	}

	if err := s.repo.Booking.DeleteWithConsumptions(ctx, id); err != nil {
		return err
	}

	s.log.Info("Booking deleted",
		zap.String("booking_id", bookingID),
		zap.String("room_id", booking.MeetingRoomID.String()),
	)
	return nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	roomID, err := parseID(req.MeetingRoomID)
	if err != nil {
		return nil, err
	}
	date, err := parseMeetingDate(req.MeetingDate)
	if err != nil {
		return nil, err
	}

	participants := req.TotalParticipants
	if participants == 0 {
		participants = 1
	}

	validation := s.validator.Validate(ctx, roomID, date, req.StartTime, req.EndTime, participants, nil)

	failed := validation.Failed()
	validationErrors := make([]response.ValidationResultResponse, len(failed))
	for i, result := range failed {
		validationErrors[i] = response.ValidationResultResponse{
			IsValid: result.IsValid,
			Message: result.Message,
			Code:    result.Code,
		}
	}

	return &response.AvailabilityResponse{
		// The availability verdict stands on its own so callers can tell
		// "slot taken" apart from "request invalid for other reasons".
		Available:        validation.Availability.IsValid,
		ValidationErrors: validationErrors,
		WorkingHours:     s.WorkingHours(),
	}, nil
}

func (s *bookingService) WorkingHours() response.WorkingHoursResponse {
	policy := s.validator.Policy()
	return response.WorkingHoursResponse{
		DayStart:           policy.DayStart,
		DayEnd:             policy.DayEnd,
		MinDurationMinutes: policy.MinDurationMinutes,
		MaxDurationMinutes: policy.MaxDurationMinutes,
		WorkingDays:        policy.WorkingDays(),
	}
}

// resolveConsumptionIDs parses, deduplicates, and verifies the selected
// consumption items. Duplicates collapse silently; a booking cannot list the
// same item twice.
func (s *bookingService) resolveConsumptionIDs(ctx context.Context, rawIDs []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(rawIDs))
	var consumptionIDs []uuid.UUID
	for _, rawID := range rawIDs {
		consumptionID, err := parseID(rawID)
		if err != nil {
			return nil, err
		}
		if seen[consumptionID] {
			continue
		}
		seen[consumptionID] = true

		consumption, err := s.repo.Consumption.FindByID(ctx, consumptionID)
		if err != nil {
			return nil, err
		}
		if consumption == nil {
			return nil, errs.ErrConsumptionNotFound
		}
		consumptionIDs = append(consumptionIDs, consumptionID)
	}
	return consumptionIDs, nil
}

// bookingStart combines the meeting date and start time into one local
// instant. Malformed stored times sort as already started.
func bookingStart(booking *entity.Booking) time.Time {
	start, err := time.ParseInLocation("2006-01-02 15:04",
		booking.MeetingDate.Format("2006-01-02")+" "+booking.StartTime, time.Local)
	if err != nil {
		return time.Time{}
	}
	return start
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) response.BookingResponse {
	var unitName, roomName string

	unit, _ := s.repo.Unit.FindByID(ctx, booking.UnitID)
	if unit != nil {
		unitName = unit.Name
	}

	room, _ := s.repo.MeetingRoom.FindByID(ctx, booking.MeetingRoomID)
	if room != nil {
		roomName = room.Name
	}

	consumptions, _ := s.repo.BookingConsumption.FindConsumptionsByBookingID(ctx, booking.ID)

	return response.BookingToResponse(booking, unitName, roomName, consumptions)
}
