package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/errs"
	"room-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows booking listings. Nil fields are ignored.
type BookingFilter struct {
	UnitID        *uuid.UUID
	MeetingRoomID *uuid.UUID
	DateFrom      *time.Time
	DateTo        *time.Time
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	List(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)

	// FindOverlapping returns one booking on the same room and date whose
	// [start_time, end_time) interval overlaps the given half-open range,
	// or nil when the slot is free. excludeID, when non-nil, removes that
	// booking from the search so a booking can be updated in place.
	FindOverlapping(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) (*entity.Booking, error)

	// CreateWithConsumptions inserts the booking and its consumption
	// associations in one transaction. The overlap check is re-run inside
	// the transaction so two concurrent requests cannot both commit.
	CreateWithConsumptions(ctx context.Context, booking *entity.Booking, consumptionIDs []uuid.UUID) error

	// UpdateWithConsumptions updates the booking row and replaces its
	// consumption associations (delete all, insert selected) in one
	// transaction, excluding the booking itself from the overlap re-check.
	UpdateWithConsumptions(ctx context.Context, booking *entity.Booking, consumptionIDs []uuid.UUID) error

	// DeleteWithConsumptions removes the associations before the booking
	// row, in one transaction.
	DeleteWithConsumptions(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, unit_id, meeting_room_id, meeting_date, start_time, end_time,
		total_participants, total_consumption, notes, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UnitID,
		&booking.MeetingRoomID,
		&booking.MeetingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.TotalParticipants,
		&booking.TotalConsumption,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

// buildFilter renders the filter into WHERE conditions with positional args.
func buildFilter(filter BookingFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.UnitID != nil {
		args = append(args, *filter.UnitID)
		conditions = append(conditions, fmt.Sprintf("unit_id = $%d", len(args)))
	}
	if filter.MeetingRoomID != nil {
		args = append(args, *filter.MeetingRoomID)
		conditions = append(conditions, fmt.Sprintf("meeting_room_id = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("meeting_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("meeting_date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *bookingRepository) List(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf(`
		SELECT `+bookingColumns+`
		FROM bookings%s
		ORDER BY meeting_date, start_time
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	where, args := buildFilter(filter)
	query := "SELECT COUNT(*) FROM bookings" + where

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

// rowQuerier lets the overlap query run on the pool or inside a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *bookingRepository) findOverlapping(ctx context.Context, q rowQuerier, roomID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) (*entity.Booking, error) {
	// Half-open interval test: touching endpoints do not conflict.
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE meeting_room_id = $1
		  AND meeting_date = $2
		  AND start_time < $4
		  AND end_time > $3
		  AND ($5::uuid IS NULL OR id <> $5)
		LIMIT 1
	`

	booking, err := scanBooking(q.QueryRow(ctx, query, roomID, date, startTime, endTime, excludeID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) (*entity.Booking, error) {
	booking, err := r.findOverlapping(ctx, r.db, roomID, date, startTime, endTime, excludeID)
	if err != nil {
		r.log.Error("Failed to find overlapping booking",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("start_time", startTime),
			zap.String("end_time", endTime),
		)
		return nil, fmt.Errorf("find overlapping booking for room %s: %w", roomID.String(), err)
	}
	return booking, nil
}

// withTx runs fn inside a transaction, rolling back on any error.
func (r *bookingRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertConsumptions(ctx context.Context, tx pgx.Tx, bookingID uuid.UUID, consumptionIDs []uuid.UUID, now time.Time) error {
	query := `
		INSERT INTO booking_consumptions (id, booking_id, consumption_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, consumptionID := range consumptionIDs {
		if _, err := tx.Exec(ctx, query, uuid.New(), bookingID, consumptionID, now); err != nil {
			return fmt.Errorf("insert booking consumption %s: %w", consumptionID.String(), err)
		}
	}
	return nil
}

func (r *bookingRepository) CreateWithConsumptions(ctx context.Context, booking *entity.Booking, consumptionIDs []uuid.UUID) error {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		conflict, err := r.findOverlapping(ctx, tx, booking.MeetingRoomID, booking.MeetingDate, booking.StartTime, booking.EndTime, nil)
		if err != nil {
			return fmt.Errorf("recheck overlap: %w", err)
		}
		if conflict != nil {
			return errs.ErrTimeConflict
		}

		query := `
			INSERT INTO bookings (id, unit_id, meeting_room_id, meeting_date, start_time, end_time,
				total_participants, total_consumption, notes, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`

		_, err = tx.Exec(ctx, query,
			booking.ID,
			booking.UnitID,
			booking.MeetingRoomID,
			booking.MeetingDate,
			booking.StartTime,
			booking.EndTime,
			booking.TotalParticipants,
			booking.TotalConsumption,
			booking.Notes,
			booking.CreatedAt,
			booking.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		return insertConsumptions(ctx, tx, booking.ID, consumptionIDs, booking.CreatedAt)
	})

	if err != nil {
		if err != errs.ErrTimeConflict {
			r.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		return err
	}

	return nil
}

func (r *bookingRepository) UpdateWithConsumptions(ctx context.Context, booking *entity.Booking, consumptionIDs []uuid.UUID) error {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		conflict, err := r.findOverlapping(ctx, tx, booking.MeetingRoomID, booking.MeetingDate, booking.StartTime, booking.EndTime, &booking.ID)
		if err != nil {
			return fmt.Errorf("recheck overlap: %w", err)
		}
		if conflict != nil {
			return errs.ErrTimeConflict
		}

		query := `
			UPDATE bookings
			SET unit_id = $2, meeting_room_id = $3, meeting_date = $4, start_time = $5,
			    end_time = $6, total_participants = $7, total_consumption = $8, notes = $9,
			    updated_at = $10
			WHERE id = $1
		`

		result, err := tx.Exec(ctx, query,
			booking.ID,
			booking.UnitID,
			booking.MeetingRoomID,
			booking.MeetingDate,
			booking.StartTime,
			booking.EndTime,
			booking.TotalParticipants,
			booking.TotalConsumption,
			booking.Notes,
			booking.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		if result.RowsAffected() == 0 {
			return errs.ErrBookingNotFound
		}

		// Replace associations: delete all, insert selected.
		if _, err := tx.Exec(ctx, `DELETE FROM booking_consumptions WHERE booking_id = $1`, booking.ID); err != nil {
			return fmt.Errorf("delete booking consumptions: %w", err)
		}

		return insertConsumptions(ctx, tx, booking.ID, consumptionIDs, booking.UpdatedAt)
	})

	if err != nil {
		if err != errs.ErrTimeConflict && err != errs.ErrBookingNotFound {
			r.log.Error("Failed to update booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		return err
	}

	return nil
}

func (r *bookingRepository) DeleteWithConsumptions(ctx context.Context, id uuid.UUID) error {
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		// Associations go first; the cascade is explicit, not left to the database.
		if _, err := tx.Exec(ctx, `DELETE FROM booking_consumptions WHERE booking_id = $1`, id); err != nil {
			return fmt.Errorf("delete booking consumptions: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		if result.RowsAffected() == 0 {
			return errs.ErrBookingNotFound
		}

		return nil
	})

	if err != nil {
		if err != errs.ErrBookingNotFound {
			r.log.Error("Failed to delete booking",
				zap.Error(err),
				zap.String("booking_id", id.String()),
			)
		}
		return err
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
