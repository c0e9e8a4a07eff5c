package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                string                `json:"id"`
	UnitID            string                `json:"unit_id"`
	UnitName          string                `json:"unit_name,omitempty"`
	MeetingRoomID     string                `json:"meeting_room_id"`
	MeetingRoomName   string                `json:"meeting_room_name,omitempty"`
	MeetingDate       string                `json:"meeting_date"`
	StartTime         string                `json:"start_time"`
	EndTime           string                `json:"end_time"`
	TotalParticipants int                   `json:"total_participants"`
	TotalConsumption  int                   `json:"total_consumption"`
	Notes             *string               `json:"notes,omitempty"`
	Consumptions      []ConsumptionResponse `json:"consumptions,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// ValidationResultResponse mirrors one engine check result in the envelope.
type ValidationResultResponse struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

type WorkingHoursResponse struct {
	DayStart           string   `json:"day_start"`
	DayEnd             string   `json:"day_end"`
	MinDurationMinutes int      `json:"min_duration_minutes"`
	MaxDurationMinutes int      `json:"max_duration_minutes"`
	WorkingDays        []string `json:"working_days"`
}

type AvailabilityResponse struct {
	Available        bool                       `json:"available"`
	ValidationErrors []ValidationResultResponse `json:"validationErrors"`
	WorkingHours     WorkingHoursResponse       `json:"workingHours"`
}

// BookingToResponse maps the row plus its looked-up names; name fields stay
// empty when the caller did not resolve them.
func BookingToResponse(booking *entity.Booking, unitName, roomName string, consumptions []*entity.Consumption) BookingResponse {
	consumptionResponses := make([]ConsumptionResponse, len(consumptions))
	for i, consumption := range consumptions {
		consumptionResponses[i] = ConsumptionToResponse(consumption)
	}

	return BookingResponse{
		ID:                booking.ID.String(),
		UnitID:            booking.UnitID.String(),
		UnitName:          unitName,
		MeetingRoomID:     booking.MeetingRoomID.String(),
		MeetingRoomName:   roomName,
		MeetingDate:       booking.MeetingDate.Format("2006-01-02"),
		StartTime:         booking.StartTime,
		EndTime:           booking.EndTime,
		TotalParticipants: booking.TotalParticipants,
		TotalConsumption:  booking.TotalConsumption,
		Notes:             booking.Notes,
		Consumptions:      consumptionResponses,
		CreatedAt:         booking.CreatedAt,
		UpdatedAt:         booking.UpdatedAt,
	}
}
