package repository

import (
	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// ListByRestaurant returns every item of the tenant (category name, then
// item name), with the category preloaded for display.
func (r *MenuItemRepository) ListByRestaurant(restaurantID string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("categories.restaurant_id = ?", restaurantID).
		Order("categories.name ASC, menu_items.name ASC").
		Preload("Category").
		Find(&items).Error
	return items, err
}

// FindForRestaurant resolves an item only when its category belongs to the
// tenant; anything else is a miss.
func (r *MenuItemRepository) FindForRestaurant(id, restaurantID string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("menu_items.id = ? AND categories.restaurant_id = ?", id, restaurantID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAvailableForRestaurant is the public single-item lookup.
func (r *MenuItemRepository) FindAvailableForRestaurant(id, restaurantID string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("menu_items.id = ? AND categories.restaurant_id = ? AND menu_items.is_available = ?",
			id, restaurantID, true).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Update(id string, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuItemRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&entity.MenuItem{}).Error
}
