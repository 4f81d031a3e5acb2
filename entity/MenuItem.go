package entity

type MenuItem struct {
	Base
	Name string `json:"name"`

	// Price is in the smallest currency unit, never negative.
	Price int64 `json:"price"`

	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Ingredients string `json:"ingredients"`
	Allergens   string `json:"allergens"`
	PortionSize string `json:"portionSize"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`

	CategoryID string   `gorm:"size:36;index" json:"categoryId"`
	Category   Category `json:"-"`
}
