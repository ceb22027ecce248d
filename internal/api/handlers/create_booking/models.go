package create_booking

import (
	"time"

	"github.com/avkostin/studio-booking/internal/domain"
	createBooking "github.com/avkostin/studio-booking/internal/usecase/create_booking"
	"github.com/avkostin/studio-booking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date            string  `json:"date"`       // "2025-10-15"
	StartTime       string  `json:"start_time"` // "10:00"
	DurationMinutes int     `json:"duration_minutes"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Comment         *string `json:"comment,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Status          string  `json:"status"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Comment         *string `json:"comment,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ошибки формата даты и времени превращаются в полевые нарушения,
// чтобы клиент получил их в том же списке, что и остальные
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, domain.ValidationError) {
	verr := domain.ValidationError{}

	var date time.Time
	if r.Date == "" {
		verr = verr.Add("date", "Дата обязательна")
	} else {
		var err error
		date, err = time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			verr = verr.Add("date", "Дата должна быть в формате YYYY-MM-DD")
		}
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		verr = verr.Add("start_time", "Время должно быть в формате HH:MM")
	}

	if !verr.IsEmpty() {
		return nil, verr
	}

	return &createBooking.Request{
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		ClientName:      r.Name,
		ClientPhone:     r.Phone,
		Comment:         r.Comment,
	}, domain.ValidationError{}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID.String(),
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Name:            resp.ClientName,
		Phone:           resp.ClientPhone,
		Comment:         resp.Comment,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
