package repository

import (
	"context"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingConsumptionRepository interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingConsumption, error)
	FindConsumptionsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Consumption, error)
}

type bookingConsumptionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingConsumptionRepository(db database.PgxIface, log *zap.Logger) BookingConsumptionRepository {
	return &bookingConsumptionRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_consumption")),
	}
}

func (r *bookingConsumptionRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingConsumption, error) {
	query := `
		SELECT id, booking_id, consumption_id, created_at
		FROM booking_consumptions
		WHERE booking_id = $1
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking consumptions",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking consumptions for %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var associations []*entity.BookingConsumption
	for rows.Next() {
		var association entity.BookingConsumption
		err := rows.Scan(
			&association.ID,
			&association.BookingID,
			&association.ConsumptionID,
			&association.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking consumption row", zap.Error(err))
			return nil, fmt.Errorf("scan booking consumption row: %w", err)
		}
		associations = append(associations, &association)
	}

	return associations, nil
}

func (r *bookingConsumptionRepository) FindConsumptionsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Consumption, error) {
	query := `
		SELECT c.id, c.name, c.is_active, c.created_at, c.updated_at
		FROM consumptions c
		JOIN booking_consumptions bc ON bc.consumption_id = c.id
		WHERE bc.booking_id = $1
		ORDER BY c.name
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find consumptions for booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find consumptions for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	return scanConsumptions(rows, r.log)
}
