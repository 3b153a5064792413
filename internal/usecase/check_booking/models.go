package check_booking

import "time"

// CodeTimeslotUnavailable машиночитаемый код отказа, по которому UI
// отличает недоступный слот от некорректного запроса
const CodeTimeslotUnavailable = "TIMESLOT_UNAVAILABLE"

// Request модель запроса на проверку доступности слота
type Request struct {
	AffiliateID int64     // ID аффилиата
	Date        time.Time // Дата забора заказа (без времени)
	TimeSlot    string    // Слот: morning / afternoon / evening
}

// Response модель результата проверки
type Response struct {
	AffiliateID int64     // ID аффилиата
	Date        time.Time // Нормализованная дата
	TimeSlot    string    // Проверенный слот
	Available   bool      // Доступен ли слот для бронирования
	Code        *string   // Код отказа, заполнен при Available=false
	Message     *string   // Человекочитаемое сообщение об отказе
}
