package request

// Time fields are deliberately tagged required-only: the time format itself
// is judged by the validation engine so malformed values surface as
// INVALID_TIME_FORMAT results, not as a request-shape rejection.

type CreateBookingRequest struct {
	UnitID            string   `json:"unit_id" validate:"required,uuid4"`
	MeetingRoomID     string   `json:"meeting_room_id" validate:"required,uuid4"`
	MeetingDate       string   `json:"meeting_date" validate:"required"`
	StartTime         string   `json:"start_time" validate:"required"`
	EndTime           string   `json:"end_time" validate:"required"`
	TotalParticipants int      `json:"total_participants" validate:"required"`
	TotalConsumption  *int     `json:"total_consumption,omitempty" validate:"omitempty,min=0"`
	ConsumptionIDs    []string `json:"consumption_ids,omitempty" validate:"omitempty,dive,uuid4"`
	Notes             *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateBookingRequest struct {
	UnitID            *string   `json:"unit_id,omitempty" validate:"omitempty,uuid4"`
	MeetingRoomID     *string   `json:"meeting_room_id,omitempty" validate:"omitempty,uuid4"`
	MeetingDate       *string   `json:"meeting_date,omitempty"`
	StartTime         *string   `json:"start_time,omitempty"`
	EndTime           *string   `json:"end_time,omitempty"`
	TotalParticipants *int      `json:"total_participants,omitempty"`
	TotalConsumption  *int      `json:"total_consumption,omitempty" validate:"omitempty,min=0"`
	ConsumptionIDs    *[]string `json:"consumption_ids,omitempty" validate:"omitempty,dive,uuid4"`
	Notes             *string   `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// AvailabilityRequest is the read-only probe. Participants defaults to 1 so
// the capacity check still runs against something meaningful.
type AvailabilityRequest struct {
	MeetingRoomID     string `json:"meeting_room_id" validate:"required,uuid4"`
	MeetingDate       string `json:"meeting_date" validate:"required"`
	StartTime         string `json:"start_time" validate:"required"`
	EndTime           string `json:"end_time" validate:"required"`
	TotalParticipants int    `json:"total_participants" validate:"omitempty,min=1"`
}
