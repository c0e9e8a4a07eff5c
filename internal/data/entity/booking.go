package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves a meeting room for one calendar date and a wall-clock
// time range. Times are fixed-width HH:MM strings at minute granularity;
// MeetingDate carries the date only, interpreted in the server's local zone.
type Booking struct {
	Base
	UnitID            uuid.UUID `db:"unit_id"`
	MeetingRoomID     uuid.UUID `db:"meeting_room_id"`
	MeetingDate       time.Time `db:"meeting_date"`
	StartTime         string    `db:"start_time"`
	EndTime           string    `db:"end_time"`
	TotalParticipants int       `db:"total_participants"`
	TotalConsumption  int       `db:"total_consumption"`
	Notes             *string   `db:"notes"`
}
