package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubValidator struct {
	result *BookingValidation
	policy WorkingHoursPolicy

	gotRoomID       uuid.UUID
	gotDate         time.Time
	gotStart        string
	gotEnd          string
	gotParticipants int
	gotExclude      *uuid.UUID
	calls           int
}

func (s *stubValidator) Validate(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string, participants int, excludeBookingID *uuid.UUID) *BookingValidation {
	s.calls++
	s.gotRoomID = roomID
	s.gotDate = date
	s.gotStart = startTime
	s.gotEnd = endTime
	s.gotParticipants = participants
	s.gotExclude = excludeBookingID
	return s.result
}

func (s *stubValidator) Policy() WorkingHoursPolicy { return s.policy }

func passing() *BookingValidation {
	return &BookingValidation{Date: valid, WorkingHours: valid, Capacity: valid, Availability: valid}
}

func failingAvailability() *BookingValidation {
	return &BookingValidation{
		Date:         valid,
		WorkingHours: valid,
		Capacity:     valid,
		Availability: invalid(errs.CodeTimeConflict, "Room is already booked for 10:00 - 11:00"),
	}
}

type fakeBookingStore struct {
	repository.BookingRepository

	booking *entity.Booking
	findErr error

	created             *entity.Booking
	createdConsumptions []uuid.UUID
	updated             *entity.Booking
	updatedConsumptions []uuid.UUID
	deletedID           *uuid.UUID
	writeErr            error
}

func (f *fakeBookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.booking, f.findErr
}

func (f *fakeBookingStore) CreateWithConsumptions(ctx context.Context, booking *entity.Booking, consumptionIDs []uuid.UUID) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.created = booking
	f.createdConsumptions = consumptionIDs
	return nil
}

func (f *fakeBookingStore) UpdateWithConsumptions(ctx context.Context, booking *entity.Booking, consumptionIDs []uuid.UUID) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.updated = booking
	f.updatedConsumptions = consumptionIDs
	return nil
}

func (f *fakeBookingStore) DeleteWithConsumptions(ctx context.Context, id uuid.UUID) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.deletedID = &id
	return nil
}

type fakeUnitRepo struct {
	repository.UnitRepository
	unit *entity.Unit
}

func (f *fakeUnitRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	return f.unit, nil
}

type fakeConsumptionRepo struct {
	repository.ConsumptionRepository
	items map[uuid.UUID]*entity.Consumption
}

func (f *fakeConsumptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Consumption, error) {
	return f.items[id], nil
}

type fakeBookingConsumptionRepo struct {
	repository.BookingConsumptionRepository
	associations []*entity.BookingConsumption
}

func (f *fakeBookingConsumptionRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingConsumption, error) {
	return f.associations, nil
}

func (f *fakeBookingConsumptionRepo) FindConsumptionsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Consumption, error) {
	return nil, nil
}

type bookingFixture struct {
	service  *bookingService
	store    *fakeBookingStore
	validate *stubValidator

	unitID        uuid.UUID
	roomID        uuid.UUID
	consumptionID uuid.UUID
}

func newBookingFixture(result *BookingValidation) *bookingFixture {
	unitID := uuid.New()
	roomID := uuid.New()
	consumptionID := uuid.New()

	store := &fakeBookingStore{}
	validate := &stubValidator{
		result: result,
		policy: WorkingHoursPolicy{
			DayStart:           "08:00",
			DayEnd:             "18:00",
			MinDurationMinutes: 30,
			MaxDurationMinutes: 480,
		},
	}

	repo := &repository.Repository{
		MeetingRoom: &fakeRoomRepo{room: testRoom(10, true)},
		Unit:        &fakeUnitRepo{unit: &entity.Unit{Base: entity.Base{ID: unitID}, Name: "Engineering", IsActive: true}},
		Consumption: &fakeConsumptionRepo{items: map[uuid.UUID]*entity.Consumption{
			consumptionID: {Base: entity.Base{ID: consumptionID}, Name: "Coffee", IsActive: true},
		}},
		Booking:            store,
		BookingConsumption: &fakeBookingConsumptionRepo{},
	}

	return &bookingFixture{
		service: &bookingService{
			repo:      repo,
			validator: validate,
			now:       fixedNow,
			log:       zap.NewNop(),
		},
		store:         store,
		validate:      validate,
		unitID:        unitID,
		roomID:        roomID,
		consumptionID: consumptionID,
	}
}

func (f *bookingFixture) createRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		UnitID:            f.unitID.String(),
		MeetingRoomID:     f.roomID.String(),
		MeetingDate:       "2025-03-13",
		StartTime:         "09:00",
		EndTime:           "10:00",
		TotalParticipants: 5,
	}
}

func TestBookingCreate(t *testing.T) {
	t.Run("persists when validation passes", func(t *testing.T) {
		f := newBookingFixture(passing())

		resp, validation, err := f.service.Create(context.Background(), f.createRequest())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if validation != nil {
			t.Fatalf("Create() validation = %+v, want nil", validation)
		}
		if resp == nil {
			t.Fatal("Create() response = nil")
		}
		if f.store.created == nil {
			t.Fatal("booking was not persisted")
		}
		if f.store.created.StartTime != "09:00" || f.store.created.EndTime != "10:00" {
			t.Errorf("persisted slot = %s - %s, want 09:00 - 10:00", f.store.created.StartTime, f.store.created.EndTime)
		}
		if f.validate.gotExclude != nil {
			t.Errorf("overlap exclusion = %v on create, want nil", f.validate.gotExclude)
		}
	})

	t.Run("returns the validation and writes nothing on rejection", func(t *testing.T) {
		f := newBookingFixture(failingAvailability())

		resp, validation, err := f.service.Create(context.Background(), f.createRequest())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if resp != nil {
			t.Errorf("Create() response = %+v, want nil", resp)
		}
		if validation == nil {
			t.Fatal("Create() validation = nil, want the failed checks")
		}
		if code := validation.FirstError().Code; code != errs.CodeTimeConflict {
			t.Errorf("first error code = %q, want %q", code, errs.CodeTimeConflict)
		}
		if f.store.created != nil {
			t.Error("booking was persisted despite a failed validation")
		}
	})

	t.Run("deduplicates consumption selections", func(t *testing.T) {
		f := newBookingFixture(passing())
		req := f.createRequest()
		req.ConsumptionIDs = []string{f.consumptionID.String(), f.consumptionID.String()}

		if _, _, err := f.service.Create(context.Background(), req); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if len(f.store.createdConsumptions) != 1 {
			t.Errorf("persisted %d consumption links, want 1", len(f.store.createdConsumptions))
		}
	})

	t.Run("rejects unknown consumption item", func(t *testing.T) {
		f := newBookingFixture(passing())
		req := f.createRequest()
		req.ConsumptionIDs = []string{uuid.New().String()}

		_, _, err := f.service.Create(context.Background(), req)
		if !errors.Is(err, errs.ErrConsumptionNotFound) {
			t.Errorf("Create() error = %v, want %v", err, errs.ErrConsumptionNotFound)
		}
	})

	t.Run("rejects unknown unit", func(t *testing.T) {
		f := newBookingFixture(passing())
		f.service.repo.Unit = &fakeUnitRepo{unit: nil}

		_, _, err := f.service.Create(context.Background(), f.createRequest())
		if !errors.Is(err, errs.ErrUnitNotFound) {
			t.Errorf("Create() error = %v, want %v", err, errs.ErrUnitNotFound)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		f := newBookingFixture(passing())
		req := f.createRequest()
		req.MeetingDate = "13-03-2025"

		_, _, err := f.service.Create(context.Background(), req)
		if !errors.Is(err, errs.ErrInvalidDate) {
			t.Errorf("Create() error = %v, want %v", err, errs.ErrInvalidDate)
		}
	})

	t.Run("rejects malformed room ID", func(t *testing.T) {
		f := newBookingFixture(passing())
		req := f.createRequest()
		req.MeetingRoomID = "not-a-uuid"

		_, _, err := f.service.Create(context.Background(), req)
		if !errors.Is(err, errs.ErrInvalidID) {
			t.Errorf("Create() error = %v, want %v", err, errs.ErrInvalidID)
		}
	})
}

func existingBooking(roomID uuid.UUID, date time.Time, start, end string) *entity.Booking {
	return &entity.Booking{
		Base:              entity.Base{ID: uuid.New()},
		UnitID:            uuid.New(),
		MeetingRoomID:     roomID,
		MeetingDate:       date,
		StartTime:         start,
		EndTime:           end,
		TotalParticipants: 4,
	}
}

func TestBookingUpdate(t *testing.T) {
	t.Run("merges only the provided fields", func(t *testing.T) {
		f := newBookingFixture(passing())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 13), "09:00", "10:00")
		f.store.booking = booking

		newEnd := "11:00"
		_, validation, err := f.service.Update(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{EndTime: &newEnd})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if validation != nil {
			t.Fatalf("Update() validation = %+v, want nil", validation)
		}

		if f.validate.gotStart != "09:00" || f.validate.gotEnd != "11:00" {
			t.Errorf("validated slot = %s - %s, want 09:00 - 11:00", f.validate.gotStart, f.validate.gotEnd)
		}
		if f.store.updated == nil || f.store.updated.EndTime != "11:00" {
			t.Errorf("persisted booking = %+v, want end time 11:00", f.store.updated)
		}
		if f.store.updated.StartTime != "09:00" {
			t.Errorf("start time changed to %s on a partial update", f.store.updated.StartTime)
		}
	})

	t.Run("excludes itself from the overlap search", func(t *testing.T) {
		f := newBookingFixture(passing())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 13), "09:00", "10:00")
		f.store.booking = booking

		if _, _, err := f.service.Update(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if f.validate.gotExclude == nil || *f.validate.gotExclude != booking.ID {
			t.Errorf("overlap exclusion = %v, want the booking's own ID", f.validate.gotExclude)
		}
	})

	t.Run("keeps current consumptions when none are sent", func(t *testing.T) {
		f := newBookingFixture(passing())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 13), "09:00", "10:00")
		f.store.booking = booking
		f.service.repo.BookingConsumption = &fakeBookingConsumptionRepo{
			associations: []*entity.BookingConsumption{
				{BookingID: booking.ID, ConsumptionID: f.consumptionID},
			},
		}

		if _, _, err := f.service.Update(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if len(f.store.updatedConsumptions) != 1 || f.store.updatedConsumptions[0] != f.consumptionID {
			t.Errorf("persisted consumptions = %v, want the existing association kept", f.store.updatedConsumptions)
		}
	})

	t.Run("replaces consumptions when sent", func(t *testing.T) {
		f := newBookingFixture(passing())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 13), "09:00", "10:00")
		f.store.booking = booking

		replacement := []string{f.consumptionID.String()}
		if _, _, err := f.service.Update(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{ConsumptionIDs: &replacement}); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if len(f.store.updatedConsumptions) != 1 || f.store.updatedConsumptions[0] != f.consumptionID {
			t.Errorf("persisted consumptions = %v, want %v", f.store.updatedConsumptions, f.consumptionID)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(passing())

		_, _, err := f.service.Update(context.Background(), uuid.New().String(), &request.UpdateBookingRequest{})
		if !errors.Is(err, errs.ErrBookingNotFound) {
			t.Errorf("Update() error = %v, want %v", err, errs.ErrBookingNotFound)
		}
	})

	t.Run("writes nothing on rejection", func(t *testing.T) {
		f := newBookingFixture(failingAvailability())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 13), "09:00", "10:00")
		f.store.booking = booking

		_, validation, err := f.service.Update(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if validation == nil {
			t.Fatal("Update() validation = nil, want the failed checks")
		}
		if f.store.updated != nil {
			t.Error("booking was persisted despite a failed validation")
		}
	})
}

func TestBookingDelete(t *testing.T) {
	t.Run("removes a future booking with its associations", func(t *testing.T) {
		f := newBookingFixture(passing())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 13), "09:00", "10:00")
		f.store.booking = booking

		if err := f.service.Delete(context.Background(), booking.ID.String()); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if f.store.deletedID == nil || *f.store.deletedID != booking.ID {
			t.Errorf("deleted ID = %v, want %v", f.store.deletedID, booking.ID)
		}
	})

	t.Run("allows cancelling later today before the start", func(t *testing.T) {
		// Clock is fixed at 10:00; a 10:30 meeting has not started yet.
		f := newBookingFixture(passing())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 12), "10:30", "11:30")
		f.store.booking = booking

		if err := f.service.Delete(context.Background(), booking.ID.String()); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	})

	t.Run("rejects a booking already underway", func(t *testing.T) {
		f := newBookingFixture(passing())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 12), "09:00", "11:00")
		f.store.booking = booking

		err := f.service.Delete(context.Background(), booking.ID.String())
		if !errors.Is(err, errs.ErrBookingAlreadyStarted) {
			t.Errorf("Delete() error = %v, want %v", err, errs.ErrBookingAlreadyStarted)
		}
		if f.store.deletedID != nil {
			t.Error("booking was deleted despite having started")
		}
	})

	t.Run("rejects a past booking", func(t *testing.T) {
		f := newBookingFixture(passing())
		booking := existingBooking(f.roomID, localDate(2025, time.March, 10), "09:00", "10:00")
		f.store.booking = booking

		err := f.service.Delete(context.Background(), booking.ID.String())
		if !errors.Is(err, errs.ErrBookingAlreadyStarted) {
			t.Errorf("Delete() error = %v, want %v", err, errs.ErrBookingAlreadyStarted)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newBookingFixture(passing())

		err := f.service.Delete(context.Background(), uuid.New().String())
		if !errors.Is(err, errs.ErrBookingNotFound) {
			t.Errorf("Delete() error = %v, want %v", err, errs.ErrBookingNotFound)
		}
	})
}

func TestCheckAvailabilityVerdict(t *testing.T) {
	t.Run("availability stands apart from other failures", func(t *testing.T) {
		// Capacity fails but the slot itself is free: the verdict is
		// available, with the capacity failure still listed.
		f := newBookingFixture(&BookingValidation{
			Date:         valid,
			WorkingHours: valid,
			Capacity:     invalid(errs.CodeCapacityExceeded, "Room Boardroom holds at most 10 participants"),
			Availability: valid,
		})

		resp, err := f.service.CheckAvailability(context.Background(), &request.AvailabilityRequest{
			MeetingRoomID:     f.roomID.String(),
			MeetingDate:       "2025-03-13",
			StartTime:         "09:00",
			EndTime:           "10:00",
			TotalParticipants: 20,
		})
		if err != nil {
			t.Fatalf("CheckAvailability() error = %v", err)
		}
		if !resp.Available {
			t.Error("Available = false although the slot is free")
		}
		if len(resp.ValidationErrors) != 1 || resp.ValidationErrors[0].Code != errs.CodeCapacityExceeded {
			t.Errorf("ValidationErrors = %+v, want the capacity failure", resp.ValidationErrors)
		}
	})

	t.Run("taken slot is unavailable", func(t *testing.T) {
		f := newBookingFixture(failingAvailability())

		resp, err := f.service.CheckAvailability(context.Background(), &request.AvailabilityRequest{
			MeetingRoomID: f.roomID.String(),
			MeetingDate:   "2025-03-13",
			StartTime:     "10:00",
			EndTime:       "11:00",
		})
		if err != nil {
			t.Fatalf("CheckAvailability() error = %v", err)
		}
		if resp.Available {
			t.Error("Available = true for a taken slot")
		}
	})

	t.Run("participants default to one", func(t *testing.T) {
		f := newBookingFixture(passing())

		if _, err := f.service.CheckAvailability(context.Background(), &request.AvailabilityRequest{
			MeetingRoomID: f.roomID.String(),
			MeetingDate:   "2025-03-13",
			StartTime:     "09:00",
			EndTime:       "10:00",
		}); err != nil {
			t.Fatalf("CheckAvailability() error = %v", err)
		}
		if f.validate.gotParticipants != 1 {
			t.Errorf("validated participants = %d, want 1", f.validate.gotParticipants)
		}
	})
}

func TestWorkingHours(t *testing.T) {
	f := newBookingFixture(passing())

	hours := f.service.WorkingHours()
	if hours.DayStart != "08:00" || hours.DayEnd != "18:00" {
		t.Errorf("working hours = %s - %s, want 08:00 - 18:00", hours.DayStart, hours.DayEnd)
	}
	if hours.MinDurationMinutes != 30 || hours.MaxDurationMinutes != 480 {
		t.Errorf("duration bounds = %d/%d, want 30/480", hours.MinDurationMinutes, hours.MaxDurationMinutes)
	}
	if len(hours.WorkingDays) != 5 || hours.WorkingDays[0] != "Monday" || hours.WorkingDays[4] != "Friday" {
		t.Errorf("working days = %v, want Monday through Friday", hours.WorkingDays)
	}
}
