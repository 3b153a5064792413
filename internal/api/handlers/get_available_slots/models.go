package get_available_slots

import (
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AffiliateScheduler/internal/usecase/get_available_slots"
)

// AvailableDateResponse HTTP модель одной доступной даты
type AvailableDateResponse struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
	AllDay    bool     `json:"allDay"`
}

// GetAvailableSlotsResponse HTTP response model
type GetAvailableSlotsResponse struct {
	AvailableDates    []AvailableDateResponse `json:"availableDates"`
	AffiliateSettings domain.ScheduleSettings `json:"affiliateSettings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	dates := make([]AvailableDateResponse, len(resp.AvailableDates))
	for i, day := range resp.AvailableDates {
		slots := make([]string, len(day.TimeSlots))
		for j, slot := range day.TimeSlots {
			slots[j] = string(slot)
		}
		dates[i] = AvailableDateResponse{
			Date:      day.Date.Format(domain.DateFormat),
			TimeSlots: slots,
			AllDay:    day.AllDay,
		}
	}

	return &GetAvailableSlotsResponse{
		AvailableDates:    dates,
		AffiliateSettings: resp.Settings,
	}
}
