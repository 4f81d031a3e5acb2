package entity

type Category struct {
	Base
	Name string `json:"name"`

	RestaurantID string     `gorm:"size:36;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	MenuItems []MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"menuItems,omitempty"`
}
