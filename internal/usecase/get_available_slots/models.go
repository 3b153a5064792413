package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AffiliateScheduler/internal/availability"
	"github.com/m04kA/SMC-AffiliateScheduler/internal/domain"
)

// Request модель запроса на получение доступных дат
type Request struct {
	AffiliateID int64     // ID аффилиата
	StartDate   time.Time // Начало диапазона (включительно)
	EndDate     time.Time // Конец диапазона (включительно)
}

// Response модель ответа со списком доступных дат
type Response struct {
	AffiliateID    int64                      // ID аффилиата
	AvailableDates []availability.AvailableDay // Упорядоченный список доступных дат
	Settings       domain.ScheduleSettings    // Настройки окна бронирования аффилиата
}
