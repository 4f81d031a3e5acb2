package repository

import (
	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

// ListByRestaurant returns the tenant's categories with their items,
// both name-ascending.
func (r *CategoryRepository) ListByRestaurant(restaurantID string) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("restaurant_id = ?", restaurantID).
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB { return db.Order("menu_items.name ASC") }).
		Order("name ASC").
		Find(&cats).Error
	return cats, err
}

// FindForRestaurant scopes the lookup: a foreign tenant's category is a miss.
func (r *CategoryRepository) FindForRestaurant(id, restaurantID string) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) UpdateName(id, name string) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Update("name", name).Error
}

// DeleteCascade removes the category and its menu items in one
// transaction. The cascade is silent; confirmation is a UI concern.
func (r *CategoryRepository) DeleteCascade(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Category{}).Error
	})
}
