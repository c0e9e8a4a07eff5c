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

type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Unit, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, unit *entity.Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type unitRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUnitRepository(db database.PgxIface, log *zap.Logger) UnitRepository {
	return &unitRepository{
		db:  db,
		log: log.With(zap.String("repository", "unit")),
	}
}

func (r *unitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		unit.ID,
		unit.Name,
		unit.IsActive,
		unit.CreatedAt,
		unit.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create unit",
			zap.Error(err),
			zap.String("name", unit.Name),
		)
		return fmt.Errorf("create unit %s: %w", unit.Name, err)
	}

	return nil
}

func (r *unitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM units
		WHERE id = $1
	`

	var unit entity.Unit
	err := r.db.QueryRow(ctx, query, id).Scan(
		&unit.ID,
		&unit.Name,
		&unit.IsActive,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find unit by ID",
			zap.Error(err),
			zap.String("unit_id", id.String()),
		)
		return nil, fmt.Errorf("find unit by ID %s: %w", id.String(), err)
	}

	return &unit, nil
}

func (r *unitRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Unit, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM units
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find units",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find units: %w", err)
	}
	defer rows.Close()

	var units []*entity.Unit
	for rows.Next() {
		var unit entity.Unit
		err := rows.Scan(
			&unit.ID,
			&unit.Name,
			&unit.IsActive,
			&unit.CreatedAt,
			&unit.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan unit row", zap.Error(err))
			return nil, fmt.Errorf("scan unit row: %w", err)
		}
		units = append(units, &unit)
	}

	return units, nil
}

func (r *unitRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM units`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count units", zap.Error(err))
		return 0, fmt.Errorf("count units: %w", err)
	}

	return count, nil
}

func (r *unitRepository) Update(ctx context.Context, unit *entity.Unit) error {
	query := `
		UPDATE units
		SET name = $2, is_active = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		unit.ID,
		unit.Name,
		unit.IsActive,
		unit.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update unit",
			zap.Error(err),
			zap.String("unit_id", unit.ID.String()),
		)
		return fmt.Errorf("update unit %s: %w", unit.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("unit %s not found", unit.ID.String())
	}

	return nil
}

func (r *unitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM units WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete unit",
			zap.Error(err),
			zap.String("unit_id", id.String()),
		)
		return fmt.Errorf("delete unit %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("unit %s not found", id.String())
	}

	r.log.Info("Unit deleted", zap.String("unit_id", id.String()))
	return nil
}
