package entity

// OrderItem snapshots the menu item reference and quantity, not the price.
// Totals are always derived from the menu item's current price.
type OrderItem struct {
	Base
	Quantity int `json:"quantity"`

	OrderID string `gorm:"size:36;index" json:"orderId"`
	Order   Order  `json:"-"`

	MenuItemID string   `gorm:"size:36;index" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`
}
