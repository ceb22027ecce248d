package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkostin/studio-booking/internal/domain"
	"github.com/avkostin/studio-booking/pkg/ptr"
	"github.com/avkostin/studio-booking/pkg/types"
)

// ── Фейки ──

type fakeRepo struct {
	bookings []*domain.Booking
	listErr  error
	created  *domain.Booking
}

func (f *fakeRepo) ListByDate(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
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

func setup(t *testing.T, repo *fakeRepo) (*UseCase, *fakeTxManager, domain.ScheduleRules) {
	t.Helper()
	rules := testRules(t)
	txMgr := &fakeTxManager{}

	// "Сейчас" - понедельник 2026-09-07 08:00 по Москве
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, rules.Location)
	uc := NewUseCase(repo, rules, txMgr, nopLogger{}).
		WithTimeProvider(fixedTime{t: now})

	return uc, txMgr, rules
}

func validRequest(rules domain.ScheduleRules) *Request {
	return &Request{
		Date:            time.Date(2026, 9, 8, 0, 0, 0, 0, rules.Location),
		StartTime:       "10:00",
		DurationMinutes: 60,
		ClientName:      "Анна",
		ClientPhone:     "+79161234567",
	}
}

// ── Тесты ──

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	uc, txMgr, rules := setup(t, repo)

	resp, err := uc.Execute(context.Background(), validRequest(rules))
	require.NoError(t, err)

	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, "active", resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Анна", repo.created.ClientName)
}

func TestExecute_TrimsClientFields(t *testing.T) {
	repo := &fakeRepo{}
	uc, _, rules := setup(t, repo)

	req := validRequest(rules)
	req.ClientName = "  Анна  "
	req.ClientPhone = " +79161234567 "

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Анна", repo.created.ClientName)
	assert.Equal(t, "+79161234567", repo.created.ClientPhone)
}

func TestExecute_OverlapRejected(t *testing.T) {
	repo := &fakeRepo{
		bookings: []*domain.Booking{
			{ID: uuid.New(), StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusActive},
		},
	}
	uc, _, rules := setup(t, repo)

	// 10:30-11:30 пересекается с 10:00-11:00
	req := validRequest(rules)
	req.StartTime = "10:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
}

func TestExecute_AdjacentAllowed(t *testing.T) {
	repo := &fakeRepo{
		bookings: []*domain.Booking{
			{ID: uuid.New(), StartTime: "10:00", DurationMinutes: 60, Status: domain.StatusActive},
		},
	}
	uc, _, rules := setup(t, repo)

	// 11:00-12:00 только граничит с 10:00-11:00
	req := validRequest(rules)
	req.StartTime = "11:00"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, repo.created)
}

func TestExecute_ValidationCollectsAllViolations(t *testing.T) {
	repo := &fakeRepo{}
	uc, txMgr, rules := setup(t, repo)

	longComment := strings.Repeat("ы", 1200)
	req := validRequest(rules)
	req.ClientName = "А"
	req.ClientPhone = "12345"
	req.Comment = ptr.Ptr(longComment)

	_, err := uc.Execute(context.Background(), req)

	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "phone", "comment"}, fields)

	// До хранилища дело не дошло
	assert.Equal(t, 0, txMgr.calls)
}

func TestExecute_ValidationDateAndTime(t *testing.T) {
	repo := &fakeRepo{}
	uc, _, rules := setup(t, repo)

	tests := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{
			name:   "past date",
			mutate: func(r *Request) { r.Date = time.Date(2026, 9, 4, 0, 0, 0, 0, rules.Location) },
			field:  "date",
		},
		{
			name:   "beyond booking window",
			mutate: func(r *Request) { r.Date = time.Date(2027, 1, 15, 0, 0, 0, 0, rules.Location) },
			field:  "date",
		},
		{
			name:   "weekend",
			mutate: func(r *Request) { r.Date = time.Date(2026, 9, 12, 0, 0, 0, 0, rules.Location) },
			field:  "date",
		},
		{
			name:   "off-grid start time",
			mutate: func(r *Request) { r.StartTime = "10:15" },
			field:  "start_time",
		},
		{
			name:   "duration not multiple of slot",
			mutate: func(r *Request) { r.DurationMinutes = 45 },
			field:  "duration_minutes",
		},
		{
			name:   "duration above max session",
			mutate: func(r *Request) { r.DurationMinutes = 240 },
			field:  "duration_minutes",
		},
		{
			name: "session runs past closing",
			mutate: func(r *Request) {
				r.StartTime = "17:00"
				r.DurationMinutes = 120
			},
			field: "duration_minutes",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(rules)
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			var verr domain.ValidationError
			require.ErrorAs(t, err, &verr)

			found := false
			for _, f := range verr.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected violation on field %q, got %v", tc.field, verr.Fields)
		})
	}
}

func TestExecute_PastSlotToday(t *testing.T) {
	repo := &fakeRepo{}
	uc, _, rules := setup(t, repo)

	// "Сейчас" 08:00, но для сегодняшней даты слот 09:00 валиден,
	// а если сдвинуть часы вперед - нет
	req := validRequest(rules)
	req.Date = time.Date(2026, 9, 7, 0, 0, 0, 0, rules.Location)
	req.StartTime = "09:00"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	uc = uc.WithTimeProvider(fixedTime{t: time.Date(2026, 9, 7, 12, 0, 0, 0, rules.Location)})
	repo.created = nil

	_, err = uc.Execute(context.Background(), req)
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "start_time", verr.Fields[0].Field)
}

func TestExecute_RepositoryErrorSurfaced(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	uc, _, rules := setup(t, repo)

	_, err := uc.Execute(context.Background(), validRequest(rules))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	// Репозиторий отдает только активные бронирования, но даже если
	// отмененное просочилось, окно оно не держит
	cancelled := &domain.Booking{
		ID: uuid.New(), StartTime: "10:00", DurationMinutes: 60,
		Status: domain.StatusCancelled,
	}
	assert.True(t, cancelled.Overlaps("10:00", "11:00"))
	assert.False(t, cancelled.IsActive())
}
