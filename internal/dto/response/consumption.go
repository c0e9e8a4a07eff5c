package response

import (
	"time"

	"room-booking/internal/data/entity"
)

type ConsumptionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ConsumptionToResponse(consumption *entity.Consumption) ConsumptionResponse {
	return ConsumptionResponse{
		ID:        consumption.ID.String(),
		Name:      consumption.Name,
		IsActive:  consumption.IsActive,
		CreatedAt: consumption.CreatedAt,
		UpdatedAt: consumption.UpdatedAt,
	}
}
