package repository

import (
	"time"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("id = ?", id).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindBySubdomain(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("subdomain = ?", slug).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) SubdomainTaken(slug string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("subdomain = ?", slug).Count(&count).Error
	return count > 0, err
}

// RestaurantSummary is the super-admin console row: restaurant plus how
// many admins and orders hang off it.
type RestaurantSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Subdomain  *string   `json:"subdomain"`
	CreatedAt  time.Time `json:"createdAt"`
	AdminCount int64     `json:"adminCount"`
	OrderCount int64     `json:"orderCount"`
}

func (r *RestaurantRepository) ListSummaries() ([]RestaurantSummary, error) {
	var out []RestaurantSummary
	err := r.DB.Model(&entity.Restaurant{}).
		Select(`restaurants.id, restaurants.name, restaurants.subdomain, restaurants.created_at,
			(SELECT COUNT(*) FROM admin_users WHERE admin_users.restaurant_id = restaurants.id) AS admin_count,
			(SELECT COUNT(*) FROM orders WHERE orders.restaurant_id = restaurants.id) AS order_count`).
		Order("restaurants.created_at DESC").
		Scan(&out).Error
	return out, err
}
