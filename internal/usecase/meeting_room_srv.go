package usecase

import (
	"context"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MeetingRoomService interface {
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MeetingRoomResponse], error)
	GetByID(ctx context.Context, roomID string) (*response.MeetingRoomResponse, error)
	Create(ctx context.Context, req *request.MeetingRoomRequest) (*response.MeetingRoomResponse, error)
	Update(ctx context.Context, roomID string, req *request.MeetingRoomUpdateRequest) (*response.MeetingRoomResponse, error)
	Delete(ctx context.Context, roomID string) error
}

type meetingRoomService struct {
	repo *repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

func NewMeetingRoomService(repo *repository.Repository, log *zap.Logger) MeetingRoomService {
	return &meetingRoomService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "meeting_room")),
	}
}

func (s *meetingRoomService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MeetingRoomResponse], error) {
	rooms, err := s.repo.MeetingRoom.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.MeetingRoom.Count(ctx)
	if err != nil {
		return nil, err
	}

	roomResponses := make([]response.MeetingRoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = response.MeetingRoomToResponse(room)
	}

	return response.NewPaginatedResponse(roomResponses, req.Page, req.PerPage, total), nil
}

func (s *meetingRoomService) GetByID(ctx context.Context, roomID string) (*response.MeetingRoomResponse, error) {
	id, err := parseID(roomID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.MeetingRoom.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errs.ErrRoomNotFound
	}

	resp := response.MeetingRoomToResponse(room)
	return &resp, nil
}

func (s *meetingRoomService) Create(ctx context.Context, req *request.MeetingRoomRequest) (*response.MeetingRoomResponse, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.now()
	room := &entity.MeetingRoom{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Capacity: req.Capacity,
		IsActive: isActive,
	}

	if err := s.repo.MeetingRoom.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Meeting room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Int("capacity", room.Capacity),
	)

	resp := response.MeetingRoomToResponse(room)
	return &resp, nil
}

// Update re-validates nothing retroactively: shrinking the capacity below an
// existing booking's participant count leaves that booking untouched.
func (s *meetingRoomService) Update(ctx context.Context, roomID string, req *request.MeetingRoomUpdateRequest) (*response.MeetingRoomResponse, error) {
	id, err := parseID(roomID)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.MeetingRoom.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errs.ErrRoomNotFound
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	room.UpdatedAt = s.now()

	if err := s.repo.MeetingRoom.Update(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Meeting room updated", zap.String("room_id", roomID))

	resp := response.MeetingRoomToResponse(room)
	return &resp, nil
}

func (s *meetingRoomService) Delete(ctx context.Context, roomID string) error {
	id, err := parseID(roomID)
	if err != nil {
		return err
	}

	room, err := s.repo.MeetingRoom.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil {
		return errs.ErrRoomNotFound
	}

	// Referenced rooms can only be deactivated.
	bookingCount, err := s.repo.MeetingRoom.CountBookings(ctx, id)
	if err != nil {
		return err
	}
	if bookingCount > 0 {
		return errs.ErrRoomInUse
	}

	if err := s.repo.MeetingRoom.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Meeting room deleted", zap.String("room_id", roomID))
	return nil
}
