package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Wednesday, well inside working hours.
var testNow = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.Local)

func fixedNow() time.Time { return testNow }

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

type fakeRoomRepo struct {
	repository.MeetingRoomRepository
	room *entity.MeetingRoom
	err  error
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MeetingRoom, error) {
	return f.room, f.err
}

type fakeOverlapRepo struct {
	repository.BookingRepository
	conflict   *entity.Booking
	err        error
	gotExclude *uuid.UUID
}

func (f *fakeOverlapRepo) FindOverlapping(ctx context.Context, roomID uuid.UUID, date time.Time, startTime, endTime string, excludeID *uuid.UUID) (*entity.Booking, error) {
	f.gotExclude = excludeID
	return f.conflict, f.err
}

func testRoom(capacity int, active bool) *entity.MeetingRoom {
	return &entity.MeetingRoom{
		Base:     entity.Base{ID: uuid.New()},
		Name:     "Boardroom",
		Capacity: capacity,
		IsActive: active,
	}
}

func newTestValidationService(rooms *fakeRoomRepo, bookings *fakeOverlapRepo) *validationService {
	return &validationService{
		rooms:    rooms,
		bookings: bookings,
		policy: WorkingHoursPolicy{
			DayStart:           "08:00",
			DayEnd:             "18:00",
			MinDurationMinutes: 30,
			MaxDurationMinutes: 480,
		},
		now: fixedNow,
		log: zap.NewNop(),
	}
}

func TestCheckDate(t *testing.T) {
	s := newTestValidationService(&fakeRoomRepo{}, &fakeOverlapRepo{})

	tests := []struct {
		name     string
		date     time.Time
		wantCode string
	}{
		{"yesterday rejected", localDate(2025, time.March, 11), errs.CodeInvalidDatePast},
		{"last year rejected", localDate(2024, time.March, 12), errs.CodeInvalidDatePast},
		{"today accepted", localDate(2025, time.March, 12), ""},
		{"tomorrow accepted", localDate(2025, time.March, 13), ""},
		{"earlier today still accepted", time.Date(2025, time.March, 12, 0, 30, 0, 0, time.Local), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := s.checkDate(tc.date)
			if result.Code != tc.wantCode {
				t.Errorf("checkDate(%v) code = %q, want %q", tc.date, result.Code, tc.wantCode)
			}
			if result.IsValid != (tc.wantCode == "") {
				t.Errorf("checkDate(%v) IsValid = %v, want %v", tc.date, result.IsValid, tc.wantCode == "")
			}
		})
	}
}

func TestCheckWorkingHours(t *testing.T) {
	s := newTestValidationService(&fakeRoomRepo{}, &fakeOverlapRepo{})

	weekday := localDate(2025, time.March, 13)
	saturday := localDate(2025, time.March, 15)
	sunday := localDate(2025, time.March, 16)

	tests := []struct {
		name     string
		date     time.Time
		start    string
		end      string
		wantCode string
	}{
		{"full working day", weekday, "08:00", "16:00", ""},
		{"exact opening boundary", weekday, "08:00", "09:00", ""},
		{"exact closing boundary", weekday, "17:00", "18:00", ""},
		{"saturday", saturday, "09:00", "10:00", errs.CodeInvalidWorkingDay},
		{"sunday", sunday, "09:00", "10:00", errs.CodeInvalidWorkingDay},
		{"missing zero padding", weekday, "9:00", "10:00", errs.CodeInvalidTimeFormat},
		{"minute out of range", weekday, "09:00", "09:60", errs.CodeInvalidTimeFormat},
		{"hour out of range", weekday, "09:00", "24:00", errs.CodeInvalidTimeFormat},
		{"not a time at all", weekday, "morning", "noon", errs.CodeInvalidTimeFormat},
		{"starts before opening", weekday, "07:59", "09:00", errs.CodeOutsideWorkingHours},
		{"ends after closing", weekday, "17:00", "18:01", errs.CodeOutsideWorkingHours},
		{"start equals end", weekday, "10:00", "10:00", errs.CodeInvalidTimeOrder},
		{"start after end", weekday, "11:00", "10:00", errs.CodeInvalidTimeOrder},
		{"29 minutes too short", weekday, "09:00", "09:29", errs.CodeDurationTooShort},
		{"30 minutes accepted", weekday, "09:00", "09:30", ""},
		{"480 minutes accepted", weekday, "08:00", "16:00", ""},
		{"481 minutes too long", weekday, "08:00", "16:01", errs.CodeDurationTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := s.checkWorkingHours(tc.date, tc.start, tc.end)
			if result.Code != tc.wantCode {
				t.Errorf("checkWorkingHours(%s, %s) code = %q, want %q", tc.start, tc.end, result.Code, tc.wantCode)
			}
		})
	}
}

func TestCheckWorkingHoursWeekendWinsOverFormat(t *testing.T) {
	s := newTestValidationService(&fakeRoomRepo{}, &fakeOverlapRepo{})

	// The weekday sub-check runs first, so a weekend date reports
	// INVALID_WORKING_DAY even when the times are also malformed.
	result := s.checkWorkingHours(localDate(2025, time.March, 15), "bad", "worse")
	if result.Code != errs.CodeInvalidWorkingDay {
		t.Errorf("code = %q, want %q", result.Code, errs.CodeInvalidWorkingDay)
	}
}

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name         string
		room         *entity.MeetingRoom
		repoErr      error
		participants int
		wantCode     string
	}{
		{"within capacity", testRoom(10, true), nil, 5, ""},
		{"exactly at capacity", testRoom(10, true), nil, 10, ""},
		{"over capacity", testRoom(10, true), nil, 11, errs.CodeCapacityExceeded},
		{"zero participants", testRoom(10, true), nil, 0, errs.CodeInvalidParticipants},
		{"negative participants", testRoom(10, true), nil, -3, errs.CodeInvalidParticipants},
		{"room missing", nil, nil, 5, errs.CodeRoomNotFound},
		{"room inactive", testRoom(10, false), nil, 5, errs.CodeRoomInactive},
		{"store fault", nil, errors.New("connection refused"), 5, errs.CodeValidationError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestValidationService(&fakeRoomRepo{room: tc.room, err: tc.repoErr}, &fakeOverlapRepo{})
			result := s.checkCapacity(context.Background(), uuid.New(), tc.participants)
			if result.Code != tc.wantCode {
				t.Errorf("checkCapacity(%d) code = %q, want %q", tc.participants, result.Code, tc.wantCode)
			}
		})
	}
}

func TestCheckAvailability(t *testing.T) {
	conflict := &entity.Booking{StartTime: "10:00", EndTime: "11:00"}

	tests := []struct {
		name     string
		conflict *entity.Booking
		repoErr  error
		wantCode string
	}{
		{"slot free", nil, nil, ""},
		{"slot taken", conflict, nil, errs.CodeTimeConflict},
		{"store fault", nil, errors.New("connection refused"), errs.CodeValidationError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestValidationService(&fakeRoomRepo{}, &fakeOverlapRepo{conflict: tc.conflict, err: tc.repoErr})
			result := s.checkAvailability(context.Background(), uuid.New(), localDate(2025, time.March, 13), "10:30", "11:30", nil)
			if result.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", result.Code, tc.wantCode)
			}
		})
	}
}

func TestCheckAvailabilityConflictMessageNamesTheSlot(t *testing.T) {
	bookings := &fakeOverlapRepo{conflict: &entity.Booking{StartTime: "10:00", EndTime: "11:00"}}
	s := newTestValidationService(&fakeRoomRepo{}, bookings)

	result := s.checkAvailability(context.Background(), uuid.New(), localDate(2025, time.March, 13), "10:30", "11:30", nil)
	if !strings.Contains(result.Message, "10:00 - 11:00") {
		t.Errorf("message %q does not name the conflicting slot", result.Message)
	}
}

func TestCheckAvailabilityForwardsExcludeID(t *testing.T) {
	bookings := &fakeOverlapRepo{}
	s := newTestValidationService(&fakeRoomRepo{}, bookings)

	excludeID := uuid.New()
	s.checkAvailability(context.Background(), uuid.New(), localDate(2025, time.March, 13), "10:00", "11:00", &excludeID)

	if bookings.gotExclude == nil || *bookings.gotExclude != excludeID {
		t.Errorf("exclude ID not forwarded to the overlap search, got %v", bookings.gotExclude)
	}
}

func TestValidateRunsAllChecksIndependently(t *testing.T) {
	// A request broken in every dimension reports every failure, not just
	// the first one.
	s := newTestValidationService(
		&fakeRoomRepo{room: testRoom(4, true)},
		&fakeOverlapRepo{conflict: &entity.Booking{StartTime: "09:00", EndTime: "10:00"}},
	)

	validation := s.Validate(context.Background(), uuid.New(), localDate(2025, time.March, 8), "09:00", "09:30", 20, nil)

	if validation.Valid() {
		t.Fatal("Valid() = true for a fully broken request")
	}

	wantCodes := map[string]string{
		"date":          errs.CodeInvalidDatePast,
		"working hours": errs.CodeInvalidWorkingDay,
		"capacity":      errs.CodeCapacityExceeded,
		"availability":  errs.CodeTimeConflict,
	}
	gotCodes := map[string]string{
		"date":          validation.Date.Code,
		"working hours": validation.WorkingHours.Code,
		"capacity":      validation.Capacity.Code,
		"availability":  validation.Availability.Code,
	}
	for check, want := range wantCodes {
		if gotCodes[check] != want {
			t.Errorf("%s check code = %q, want %q", check, gotCodes[check], want)
		}
	}

	if len(validation.Failed()) != 4 {
		t.Errorf("Failed() returned %d results, want 4", len(validation.Failed()))
	}
	if first := validation.FirstError(); first == nil || first.Code != errs.CodeInvalidDatePast {
		t.Errorf("FirstError() = %+v, want the date failure first", first)
	}
}

func TestValidateAllChecksPass(t *testing.T) {
	s := newTestValidationService(&fakeRoomRepo{room: testRoom(10, true)}, &fakeOverlapRepo{})

	validation := s.Validate(context.Background(), uuid.New(), localDate(2025, time.March, 13), "09:00", "10:00", 5, nil)

	if !validation.Valid() {
		t.Errorf("Valid() = false, failed checks: %+v", validation.Failed())
	}
	if validation.FirstError() != nil {
		t.Errorf("FirstError() = %+v, want nil", validation.FirstError())
	}
	if len(validation.Failed()) != 0 {
		t.Errorf("Failed() = %+v, want empty", validation.Failed())
	}
}

func TestMinutesOf(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"09:45", 585},
		{"18:00", 1080},
		{"23:59", 1439},
	}

	for _, tc := range tests {
		if got := minutesOf(tc.value); got != tc.want {
			t.Errorf("minutesOf(%q) = %d, want %d", tc.value, got, tc.want)
		}
	}
}
