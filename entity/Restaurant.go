package entity

type Restaurant struct {
	Base
	Name string `json:"name"`

	// Subdomain is the optional tenant slug ({slug}.rootdomain).
	// Nullable so path-only tenants never collide on the unique index.
	Subdomain *string `gorm:"uniqueIndex;size:63" json:"subdomain"`

	LogoURL       string `json:"logoUrl"`
	CoverImageURL string `json:"coverImageUrl"`
	PromoText     string `json:"promoText"`

	Categories []Category  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AdminUsers []AdminUser `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders     []Order     `json:"-"`
}
