package repository

import (
	"context"
	"fmt"

	"room-booking/internal/data/entity"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ConsumptionRepository interface {
	Create(ctx context.Context, consumption *entity.Consumption) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Consumption, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Consumption, error)
	FindAllActive(ctx context.Context) ([]*entity.Consumption, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, consumption *entity.Consumption) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type consumptionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConsumptionRepository(db database.PgxIface, log *zap.Logger) ConsumptionRepository {
	return &consumptionRepository{
		db:  db,
		log: log.With(zap.String("repository", "consumption")),
	}
}

func (r *consumptionRepository) Create(ctx context.Context, consumption *entity.Consumption) error {
	query := `
		INSERT INTO consumptions (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		consumption.ID,
		consumption.Name,
		consumption.IsActive,
		consumption.CreatedAt,
		consumption.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create consumption",
			zap.Error(err),
			zap.String("name", consumption.Name),
		)
		return fmt.Errorf("create consumption %s: %w", consumption.Name, err)
	}

	return nil
}

func (r *consumptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Consumption, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM consumptions
		WHERE id = $1
	`

	var consumption entity.Consumption
	err := r.db.QueryRow(ctx, query, id).Scan(
		&consumption.ID,
		&consumption.Name,
		&consumption.IsActive,
		&consumption.CreatedAt,
		&consumption.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find consumption by ID",
			zap.Error(err),
			zap.String("consumption_id", id.String()),
		)
		return nil, fmt.Errorf("find consumption by ID %s: %w", id.String(), err)
	}

	return &consumption, nil
}

func (r *consumptionRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Consumption, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM consumptions
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find consumptions",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find consumptions: %w", err)
	}
	defer rows.Close()

	return scanConsumptions(rows, r.log)
}

func (r *consumptionRepository) FindAllActive(ctx context.Context) ([]*entity.Consumption, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM consumptions
		WHERE is_active = true
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active consumptions", zap.Error(err))
		return nil, fmt.Errorf("find active consumptions: %w", err)
	}
	defer rows.Close()

	return scanConsumptions(rows, r.log)
}

func scanConsumptions(rows pgx.Rows, log *zap.Logger) ([]*entity.Consumption, error) {
	var consumptions []*entity.Consumption
	for rows.Next() {
		var consumption entity.Consumption
		err := rows.Scan(
			&consumption.ID,
			&consumption.Name,
			&consumption.IsActive,
			&consumption.CreatedAt,
			&consumption.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan consumption row", zap.Error(err))
			return nil, fmt.Errorf("scan consumption row: %w", err)
		}
		consumptions = append(consumptions, &consumption)
	}

	return consumptions, nil
}

func (r *consumptionRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM consumptions`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count consumptions", zap.Error(err))
		return 0, fmt.Errorf("count consumptions: %w", err)
	}

	return count, nil
}

func (r *consumptionRepository) Update(ctx context.Context, consumption *entity.Consumption) error {
	query := `
		UPDATE consumptions
		SET name = $2, is_active = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		consumption.ID,
		consumption.Name,
		consumption.IsActive,
		consumption.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update consumption",
			zap.Error(err),
			zap.String("consumption_id", consumption.ID.String()),
		)
		return fmt.Errorf("update consumption %s: %w", consumption.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("consumption %s not found", consumption.ID.String())
	}

	return nil
}

func (r *consumptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM consumptions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete consumption",
			zap.Error(err),
			zap.String("consumption_id", id.String()),
		)
		return fmt.Errorf("delete consumption %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("consumption %s not found", id.String())
	}

	r.log.Info("Consumption deleted", zap.String("consumption_id", id.String()))
	return nil
}
