package domain

import "time"

// OrderStatus represents the status of a pickup/delivery order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusProcessed  OrderStatus = "processed"
	StatusComplete   OrderStatus = "complete"
	StatusCancelled  OrderStatus = "cancelled"
)

// Order represents an order as seen by the scheduling engine.
// Поля заказа, не связанные с расписанием (цена, вес, комиссия),
// этому сервису не принадлежат.
type Order struct {
	ID          int64
	AffiliateID int64
	UserID      int64
	PickupDate  time.Time
	PickupTime  TimeSlot
	Status      OrderStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the order still occupies its pickup slot
func (o *Order) IsActive() bool {
	return o.Status != StatusComplete && o.Status != StatusCancelled
}

// IsTerminal returns true if the order reached a final state
func (o *Order) IsTerminal() bool {
	return o.Status == StatusComplete || o.Status == StatusCancelled
}

// TerminalStatuses статусы, в которых заказ больше не занимает слот.
// Используется при поиске конфликтов расписания.
var TerminalStatuses = []OrderStatus{
	StatusComplete,
	StatusCancelled,
}

// ActiveStatuses статусы, в которых заказ блокирует свой слот
var ActiveStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusProcessed,
}
