package get_free_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/pkg/types"
)

type fakeRepo struct {
	bookings []*domain.Booking
	listErr  error
	calls    int
}

func (f *fakeRepo) ListByDate(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func testRules(t *testing.T) domain.ScheduleRules {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	return domain.ScheduleRules{
		Location:          loc,
		WorkingWeekdays:   []int{1, 2, 3, 4, 5},
		WorkStart:         "09:00",
		WorkEnd:           "18:00",
		SlotMinutes:       30,
		BookingWindowDays: 90,
		MaxSessionMinutes: 180,
	}
}

func setup(t *testing.T, repo *fakeRepo) (*UseCase, domain.ScheduleRules) {
	t.Helper()
	rules := testRules(t)

	// "Сейчас" - понедельник 2026-09-07 08:00 по Москве
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, rules.Location)
	uc := NewUseCase(repo, rules, nopLogger{}).
		WithTimeProvider(fixedTime{t: now})

	return uc, rules
}

func TestExecute_EmptyDayFullGrid(t *testing.T) {
	repo := &fakeRepo{}
	uc, rules := setup(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 8, 0, 0, 0, 0, rules.Location),
	})
	require.NoError(t, err)

	require.Len(t, resp.FreeSlots, 18)
	assert.Equal(t, types.TimeString("09:00"), resp.FreeSlots[0])
	assert.Equal(t, types.TimeString("17:30"), resp.FreeSlots[17])
}

func TestExecute_NonWorkingDayShortCircuits(t *testing.T) {
	repo := &fakeRepo{}
	uc, rules := setup(t, repo)

	// 2026-09-12 - суббота
	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 12, 0, 0, 0, 0, rules.Location),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.FreeSlots)
	assert.Equal(t, 0, repo.calls, "repository must not be queried for non-working days")
}

func TestExecute_PastDateEmpty(t *testing.T) {
	repo := &fakeRepo{}
	uc, rules := setup(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 4, 0, 0, 0, 0, rules.Location),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.FreeSlots)
	assert.Equal(t, 0, repo.calls)
}

func TestExecute_BookingBlocksCoveredSlots(t *testing.T) {
	repo := &fakeRepo{
		bookings: []*domain.Booking{
			{ID: uuid.New(), StartTime: "10:00", DurationMinutes: 90, Status: domain.StatusActive},
		},
	}
	uc, rules := setup(t, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 8, 0, 0, 0, 0, rules.Location),
	})
	require.NoError(t, err)

	// Бронирование 10:00-11:30 закрывает слоты 10:00, 10:30 и 11:00
	assert.NotContains(t, resp.FreeSlots, types.TimeString("10:00"))
	assert.NotContains(t, resp.FreeSlots, types.TimeString("10:30"))
	assert.NotContains(t, resp.FreeSlots, types.TimeString("11:00"))

	// Смежные слоты остаются свободными
	assert.Contains(t, resp.FreeSlots, types.TimeString("09:30"))
	assert.Contains(t, resp.FreeSlots, types.TimeString("11:30"))
	assert.Len(t, resp.FreeSlots, 15)
}

func TestExecute_TodayHidesPastSlots(t *testing.T) {
	repo := &fakeRepo{}
	uc, rules := setup(t, repo)

	// "Сейчас" 08:00 - вся сетка впереди
	today := time.Date(2026, 9, 7, 0, 0, 0, 0, rules.Location)
	resp, err := uc.Execute(context.Background(), &Request{Date: today})
	require.NoError(t, err)
	assert.Len(t, resp.FreeSlots, 18)

	// В 12:10 слоты до 12:10 уже недоступны
	uc = uc.WithTimeProvider(fixedTime{t: time.Date(2026, 9, 7, 12, 10, 0, 0, rules.Location)})
	resp, err = uc.Execute(context.Background(), &Request{Date: today})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("12:30"), resp.FreeSlots[0])
	assert.Len(t, resp.FreeSlots, 11)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc, _ := setup(t, &fakeRepo{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorSurfaced(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	uc, rules := setup(t, repo)

	// Ошибка хранилища не должна выглядеть как полностью занятый день
	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 9, 8, 0, 0, 0, 0, rules.Location),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
