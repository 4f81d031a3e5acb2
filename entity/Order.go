package entity

// Order statuses. Transitions are direct-set: an admin may move an order
// between any of the three values in any direction.
const (
	OrderStatusNew       = "new"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusPreparing, OrderStatusReady:
		return true
	}
	return false
}

// Payment methods. Recorded metadata only; no payment is ever executed.
const (
	PaymentCash  = "naqd"
	PaymentPayme = "payme"
	PaymentClick = "click"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentPayme, PaymentClick:
		return true
	}
	return false
}

type Order struct {
	Base
	Status string `gorm:"size:16;default:new" json:"status"`

	TableNumber   string `json:"tableNumber"`
	Note          string `json:"note"`
	PaymentMethod string `gorm:"size:16" json:"paymentMethod"`

	RestaurantID string     `gorm:"size:36;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
