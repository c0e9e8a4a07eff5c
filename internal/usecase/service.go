package usecase

import (
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Validation  ValidationService
	Booking     BookingService
	MeetingRoom MeetingRoomService
	Unit        UnitService
	Consumption ConsumptionService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	validation := NewValidationService(repo, config, log)

	return &Service{
		Validation:  validation,
		Booking:     NewBookingService(repo, validation, log),
		MeetingRoom: NewMeetingRoomService(repo, log),
		Unit:        NewUnitService(repo, log),
		Consumption: NewConsumptionService(repo, log),
	}
}
