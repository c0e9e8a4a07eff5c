package repository

import (
	"room-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	MeetingRoom        MeetingRoomRepository
	Unit               UnitRepository
	Consumption        ConsumptionRepository
	Booking            BookingRepository
	BookingConsumption BookingConsumptionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		MeetingRoom:        NewMeetingRoomRepository(db, log),
		Unit:               NewUnitRepository(db, log),
		Consumption:        NewConsumptionRepository(db, log),
		Booking:            NewBookingRepository(db, log),
		BookingConsumption: NewBookingConsumptionRepository(db, log),
	}
}
