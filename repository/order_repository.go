package repository

import (
	"time"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateWithItems persists the order and its lines atomically.
func (r *OrderRepository) CreateWithItems(o *entity.Order, items []entity.OrderItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		o.Items = items
		return nil
	})
}

// FindByID is the public status lookup: no tenant scope, order id is the
// capability.
func (r *OrderRepository) FindByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items.MenuItem").
		Preload("Restaurant").
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindForRestaurant scopes the lookup; a foreign tenant's order is a miss.
func (r *OrderRepository) FindForRestaurant(id, restaurantID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForRestaurant is the full re-fetch behind every polling view:
// createdAt descending, items with their current menu item preloaded so
// totals reflect live prices.
func (r *OrderRepository) ListForRestaurant(restaurantID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items.MenuItem").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) LatestForRestaurant(restaurantID string, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items.MenuItem").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(id, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *OrderRepository) CountSince(restaurantID string, since time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("restaurant_id = ? AND created_at >= ?", restaurantID, since).
		Count(&count).Error
	return count, err
}

// CountMenuItemsInRestaurant counts how many of ids resolve to menu items
// of the tenant; callers compare against len(ids) to reject cross-tenant
// or unknown references.
func (r *OrderRepository) CountMenuItemsInRestaurant(ids []string, restaurantID string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("menu_items.id IN ? AND categories.restaurant_id = ?", ids, restaurantID).
		Count(&count).Error
	return count, err
}
