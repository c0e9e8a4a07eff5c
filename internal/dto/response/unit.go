package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type UnitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func UnitToResponse(unit *entity.Unit) UnitResponse {
	return UnitResponse{
		ID:        unit.ID.String(),
		Name:      unit.Name,
		IsActive:  unit.IsActive,
		CreatedAt: unit.CreatedAt,
		UpdatedAt: unit.UpdatedAt,
	}
}
