package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type MeetingRoomResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func MeetingRoomToResponse(room *entity.MeetingRoom) MeetingRoomResponse {
	return MeetingRoomResponse{
		ID:        room.ID.String(),
		Name:      room.Name,
		Capacity:  room.Capacity,
		IsActive:  room.IsActive,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}
