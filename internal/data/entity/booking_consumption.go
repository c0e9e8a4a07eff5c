package entity

import "github.com/google/uuid"

// BookingConsumption links one booking to one consumption item.
// The (booking_id, consumption_id) pair is unique.
type BookingConsumption struct {
	BaseSimple
	BookingID     uuid.UUID `db:"booking_id"`
	ConsumptionID uuid.UUID `db:"consumption_id"`
}
