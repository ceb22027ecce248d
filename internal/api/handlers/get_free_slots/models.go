package get_free_slots

import (
	"github.com/avkostin/studio-booking/internal/domain"
	getFreeSlots "github.com/avkostin/studio-booking/internal/usecase/get_free_slots"
)

// Response HTTP response model
type Response struct {
	Date      string   `json:"date"`       // "2025-10-15"
	FreeSlots []string `json:"free_slots"` // ["09:00", "09:30", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *Response {
	slots := make([]string, 0, len(resp.FreeSlots))
	for _, s := range resp.FreeSlots {
		slots = append(slots, s.String())
	}
	return &Response{
		Date:      resp.Date.Format(domain.DateFormat),
		FreeSlots: slots,
	}
}
