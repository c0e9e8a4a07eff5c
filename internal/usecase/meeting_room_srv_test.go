package usecase

import (
	"context"
	"errors"
	"testing"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeRoomStore struct {
	repository.MeetingRoomRepository

	room         *entity.MeetingRoom
	bookingCount int64

	created   *entity.MeetingRoom
	updated   *entity.MeetingRoom
	deletedID *uuid.UUID
}

func (f *fakeRoomStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.MeetingRoom, error) {
	return f.room, nil
}

func (f *fakeRoomStore) Create(ctx context.Context, room *entity.MeetingRoom) error {
	f.created = room
	return nil
}

func (f *fakeRoomStore) Update(ctx context.Context, room *entity.MeetingRoom) error {
	f.updated = room
	return nil
}

func (f *fakeRoomStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.deletedID = &id
	return nil
}

func (f *fakeRoomStore) CountBookings(ctx context.Context, roomID uuid.UUID) (int64, error) {
	return f.bookingCount, nil
}

func newRoomService(store *fakeRoomStore) *meetingRoomService {
	return &meetingRoomService{
		repo: &repository.Repository{MeetingRoom: store},
		now:  fixedNow,
		log:  zap.NewNop(),
	}
}

func TestMeetingRoomCreateDefaultsToActive(t *testing.T) {
	store := &fakeRoomStore{}
	s := newRoomService(store)

	resp, err := s.Create(context.Background(), &request.MeetingRoomRequest{Name: "Boardroom", Capacity: 12})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !resp.IsActive {
		t.Error("a new room should be active by default")
	}
	if store.created == nil || store.created.Capacity != 12 {
		t.Errorf("persisted room = %+v, want capacity 12", store.created)
	}
}

func TestMeetingRoomUpdateMergesFields(t *testing.T) {
	store := &fakeRoomStore{room: testRoom(10, true)}
	s := newRoomService(store)

	capacity := 20
	resp, err := s.Update(context.Background(), store.room.ID.String(), &request.MeetingRoomUpdateRequest{Capacity: &capacity})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if resp.Capacity != 20 {
		t.Errorf("capacity = %d, want 20", resp.Capacity)
	}
	if resp.Name != "Boardroom" {
		t.Errorf("name changed to %q on a partial update", resp.Name)
	}
}

func TestMeetingRoomDelete(t *testing.T) {
	t.Run("unreferenced room is deleted", func(t *testing.T) {
		store := &fakeRoomStore{room: testRoom(10, true)}
		s := newRoomService(store)

		if err := s.Delete(context.Background(), store.room.ID.String()); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if store.deletedID == nil {
			t.Error("room was not deleted")
		}
	})

	t.Run("referenced room is kept", func(t *testing.T) {
		store := &fakeRoomStore{room: testRoom(10, true), bookingCount: 3}
		s := newRoomService(store)

		err := s.Delete(context.Background(), store.room.ID.String())
		if !errors.Is(err, errs.ErrRoomInUse) {
			t.Errorf("Delete() error = %v, want %v", err, errs.ErrRoomInUse)
		}
		if store.deletedID != nil {
			t.Error("room was deleted despite existing bookings")
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		s := newRoomService(&fakeRoomStore{})

		err := s.Delete(context.Background(), uuid.New().String())
		if !errors.Is(err, errs.ErrRoomNotFound) {
			t.Errorf("Delete() error = %v, want %v", err, errs.ErrRoomNotFound)
		}
	})
}
