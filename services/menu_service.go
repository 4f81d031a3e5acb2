package services

import (
	"errors"
	"strings"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"github.com/alisherkhudoyberdiev/qrplatform/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	catRepo  *repository.CategoryRepository
	itemRepo *repository.MenuItemRepository
	restRepo *repository.RestaurantRepository
}

func NewMenuService(catRepo *repository.CategoryRepository, itemRepo *repository.MenuItemRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{catRepo: catRepo, itemRepo: itemRepo, restRepo: restRepo}
}

// ---------- Categories ----------

func (s *MenuService) ListCategories(restaurantID string) ([]entity.Category, error) {
	return s.catRepo.ListByRestaurant(restaurantID)
}

func (s *MenuService) CreateCategory(restaurantID, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("category name is required")
	}
	cat := entity.Category{Name: name, RestaurantID: restaurantID}
	if err := s.catRepo.Create(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *MenuService) RenameCategory(id, restaurantID, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("category name is required")
	}
	cat, err := s.catRepo.FindForRestaurant(id, restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.catRepo.UpdateName(cat.ID, name); err != nil {
		return nil, err
	}
	cat.Name = name
	return cat, nil
}

// DeleteCategory cascades to the category's menu items.
func (s *MenuService) DeleteCategory(id, restaurantID string) error {
	cat, err := s.catRepo.FindForRestaurant(id, restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return s.catRepo.DeleteCascade(cat.ID)
}

// ---------- Menu items ----------

type MenuItemInput struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Ingredients *string `json:"ingredients"`
	Allergens   *string `json:"allergens"`
	PortionSize *string `json:"portionSize"`
	CategoryID  *string `json:"categoryId"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (s *MenuService) ListItems(restaurantID string) ([]entity.MenuItem, error) {
	return s.itemRepo.ListByRestaurant(restaurantID)
}

func (s *MenuService) CreateItem(restaurantID string, in MenuItemInput) (*entity.MenuItem, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" || in.Price == nil || in.CategoryID == nil {
		return nil, validationf("name, price and category are required")
	}
	if *in.Price < 0 {
		return nil, validationf("price must not be negative")
	}

	// The category pins the item to the tenant.
	cat, err := s.catRepo.FindForRestaurant(*in.CategoryID, restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	item := entity.MenuItem{
		Name:        strings.TrimSpace(*in.Name),
		Price:       *in.Price,
		CategoryID:  cat.ID,
		IsAvailable: true,
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Ingredients != nil {
		item.Ingredients = strings.TrimSpace(*in.Ingredients)
	}
	if in.Allergens != nil {
		item.Allergens = strings.TrimSpace(*in.Allergens)
	}
	if in.PortionSize != nil {
		item.PortionSize = strings.TrimSpace(*in.PortionSize)
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}

	if err := s.itemRepo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies a partial update. Moving the item to another category
// is allowed only within the same tenant.
func (s *MenuService) UpdateItem(id, restaurantID string, in MenuItemInput) (*entity.MenuItem, error) {
	if _, err := s.itemRepo.FindForRestaurant(id, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, validationf("name must not be empty")
		}
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, validationf("price must not be negative")
		}
		updates["price"] = *in.Price
	}
	if in.Description != nil {
		updates["description"] = strings.TrimSpace(*in.Description)
	}
	if in.ImageURL != nil {
		updates["image_url"] = strings.TrimSpace(*in.ImageURL)
	}
	if in.Ingredients != nil {
		updates["ingredients"] = strings.TrimSpace(*in.Ingredients)
	}
	if in.Allergens != nil {
		updates["allergens"] = strings.TrimSpace(*in.Allergens)
	}
	if in.PortionSize != nil {
		updates["portion_size"] = strings.TrimSpace(*in.PortionSize)
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.CategoryID != nil {
		cat, err := s.catRepo.FindForRestaurant(*in.CategoryID, restaurantID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		updates["category_id"] = cat.ID
	}

	if len(updates) > 0 {
		if err := s.itemRepo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.itemRepo.FindForRestaurant(id, restaurantID)
}

func (s *MenuService) DeleteItem(id, restaurantID string) error {
	if _, err := s.itemRepo.FindForRestaurant(id, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.itemRepo.Delete(id)
}

// ---------- Public menu ----------

// PublicMenu is the unauthenticated menu payload: branding plus categories
// with only the available items.
type PublicMenu struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	LogoURL       string            `json:"logoUrl"`
	CoverImageURL string            `json:"coverImageUrl"`
	PromoText     string            `json:"promoText"`
	Categories    []entity.Category `json:"categories"`
}

func (s *MenuService) Menu(restaurantID string) (*PublicMenu, error) {
	rest, err := s.restRepo.FindByID(restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	cats, err := s.catRepo.ListByRestaurant(rest.ID)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		available := cats[i].MenuItems[:0]
		for _, item := range cats[i].MenuItems {
			if item.IsAvailable {
				available = append(available, item)
			}
		}
		cats[i].MenuItems = available
	}

	return &PublicMenu{
		ID:            rest.ID,
		Name:          rest.Name,
		LogoURL:       rest.LogoURL,
		CoverImageURL: rest.CoverImageURL,
		PromoText:     rest.PromoText,
		Categories:    cats,
	}, nil
}

func (s *MenuService) Item(restaurantID, itemID string) (*entity.MenuItem, error) {
	item, err := s.itemRepo.FindAvailableForRestaurant(itemID, restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}
