package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"github.com/alisherkhudoyberdiev/qrplatform/repository"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named in-memory database per test keeps gorm's pool on one store
	// without leaking state across tests.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Restaurant{},
		&entity.AdminUser{}, &entity.SuperAdmin{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(
		repository.NewCategoryRepository(db),
		repository.NewMenuItemRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(
		repository.NewRestaurantRepository(db),
		repository.NewAdminRepository(db),
	)
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repository.NewAdminRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	rest := entity.Restaurant{Name: name}
	require.NoError(t, db.Create(&rest).Error)
	return &rest
}

func seedCategory(t *testing.T, db *gorm.DB, restaurantID, name string) *entity.Category {
	t.Helper()
	cat := entity.Category{Name: name, RestaurantID: restaurantID}
	require.NoError(t, db.Create(&cat).Error)
	return &cat
}

func seedMenuItem(t *testing.T, db *gorm.DB, categoryID, name string, price int64) *entity.MenuItem {
	t.Helper()
	item := entity.MenuItem{Name: name, Price: price, CategoryID: categoryID, IsAvailable: true}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func seedAdmin(t *testing.T, db *gorm.DB, restaurantID, email, password string) *entity.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	admin := entity.AdminUser{Email: email, PasswordHash: hash, RestaurantID: restaurantID}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func seedSuperAdmin(t *testing.T, db *gorm.DB, email, password string) *entity.SuperAdmin {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	admin := entity.SuperAdmin{Email: email, PasswordHash: hash}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}
