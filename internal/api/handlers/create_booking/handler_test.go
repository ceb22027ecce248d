package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avkostin/studio-booking/internal/domain"
	createBooking "github.com/avkostin/studio-booking/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createBooking.Response{
			ID:              uuid.New(),
			Date:            time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
			StartTime:       "10:00",
			EndTime:         "11:00",
			DurationMinutes: 60,
			Status:          "active",
			ClientName:      "Анна",
			ClientPhone:     "+79161234567",
			CreatedAt:       time.Now(),
		},
	}

	rec := doRequest(t, uc, `{"date":"2026-09-08","start_time":"10:00","duration_minutes":60,"name":"Анна","phone":"+79161234567"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-08", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, "active", resp.Status)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bad_request", resp["code"])
}

func TestHandle_UnparsableDateBecomesFieldError(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"date":"08.09.2026","start_time":"10:00","duration_minutes":60,"name":"Анна","phone":"+79161234567"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Code   string `json:"code"`
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Code)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "date", resp.Fields[0].Field)
}

func TestHandle_ValidationErrorFromUseCase(t *testing.T) {
	uc := &fakeUseCase{
		err: domain.ValidationError{}.
			Add("name", "Имя должно содержать не менее 2 символов").
			Add("phone", "Телефон должен быть в формате +7XXXXXXXXXX"),
	}

	rec := doRequest(t, uc, `{"date":"2026-09-08","start_time":"10:00","duration_minutes":60,"name":"А","phone":"123"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 2)
}

func TestHandle_SlotTaken(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotTaken}

	rec := doRequest(t, uc, `{"date":"2026-09-08","start_time":"10:00","duration_minutes":60,"name":"Анна","phone":"+79161234567"}`)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "time_taken", resp["code"])
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}

	rec := doRequest(t, uc, `{"date":"2026-09-08","start_time":"10:00","duration_minutes":60,"name":"Анна","phone":"+79161234567"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "internal_error", resp["code"])
}
