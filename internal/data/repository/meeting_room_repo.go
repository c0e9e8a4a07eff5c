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

type MeetingRoomRepository interface {
	Create(ctx context.Context, room *entity.MeetingRoom) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MeetingRoom, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.MeetingRoom, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, room *entity.MeetingRoom) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountBookings(ctx context.Context, roomID uuid.UUID) (int64, error)
}

type meetingRoomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMeetingRoomRepository(db database.PgxIface, log *zap.Logger) MeetingRoomRepository {
	return &meetingRoomRepository{
		db:  db,
		log: log.With(zap.String("repository", "meeting_room")),
	}
}

func (r *meetingRoomRepository) Create(ctx context.Context, room *entity.MeetingRoom) error {
	query := `
		INSERT INTO meeting_rooms (id, name, capacity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Capacity,
		room.IsActive,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create meeting room",
			zap.Error(err),
			zap.String("name", room.Name),
		)
		return fmt.Errorf("create meeting room %s: %w", room.Name, err)
	}

	return nil
}

func (r *meetingRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MeetingRoom, error) {
	query := `
		SELECT id, name, capacity, is_active, created_at, updated_at
		FROM meeting_rooms
		WHERE id = $1
	`

	var room entity.MeetingRoom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.IsActive,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find meeting room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find meeting room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *meetingRoomRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.MeetingRoom, error) {
	query := `
		SELECT id, name, capacity, is_active, created_at, updated_at
		FROM meeting_rooms
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find meeting rooms",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find meeting rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.MeetingRoom
	for rows.Next() {
		var room entity.MeetingRoom
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.IsActive,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan meeting room row", zap.Error(err))
			return nil, fmt.Errorf("scan meeting room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *meetingRoomRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM meeting_rooms`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count meeting rooms", zap.Error(err))
		return 0, fmt.Errorf("count meeting rooms: %w", err)
	}

	return count, nil
}

func (r *meetingRoomRepository) Update(ctx context.Context, room *entity.MeetingRoom) error {
	query := `
		UPDATE meeting_rooms
		SET name = $2, capacity = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.Capacity,
		room.IsActive,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update meeting room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update meeting room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("meeting room %s not found", room.ID.String())
	}

	return nil
}

func (r *meetingRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM meeting_rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete meeting room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete meeting room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("meeting room %s not found", id.String())
	}

	r.log.Info("Meeting room deleted", zap.String("room_id", id.String()))
	return nil
}

// CountBookings reports how many bookings reference the room. Rooms with
// bookings are deactivated instead of deleted.
func (r *meetingRoomRepository) CountBookings(ctx context.Context, roomID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE meeting_room_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, roomID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings for meeting room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count bookings for meeting room %s: %w", roomID.String(), err)
	}

	return count, nil
}
