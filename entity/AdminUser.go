package entity

// AdminUser manages exactly one restaurant. Email is stored lowercased.
type AdminUser struct {
	Base
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `json:"-"`

	RestaurantID string     `gorm:"size:36;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
