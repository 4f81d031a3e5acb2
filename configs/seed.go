package configs

import (
	"log"
	"strings"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
)

// SeedSuperAdmin creates the initial platform super-admin from env.
func SeedSuperAdmin(cfg *Config) error {
	db := DB()
	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding super-admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.SuperAdmin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("super-admin already exists:", email)
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	return db.Create(&entity.SuperAdmin{Email: email, PasswordHash: hash}).Error
}

// SeedDemo loads a sample restaurant with a menu and an admin so a fresh
// checkout is clickable. Skipped in production.
func SeedDemo(cfg *Config) error {
	if cfg.Production() {
		return nil
	}
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	slug := "oshxona"
	restaurant := entity.Restaurant{Name: "Oshxona Cafe", Subdomain: &slug}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	drinks := entity.Category{Name: "Ichimliklar", RestaurantID: restaurant.ID}
	meals := entity.Category{Name: "Taomlar", RestaurantID: restaurant.ID}
	if err := db.Create(&drinks).Error; err != nil {
		return err
	}
	if err := db.Create(&meals).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{Name: "Choy", Price: 5000, Description: "Qora choy", CategoryID: drinks.ID, IsAvailable: true},
		{Name: "Kofe", Price: 15000, Description: "Americano", CategoryID: drinks.ID, IsAvailable: true},
		{Name: "Lag'mon", Price: 35000, Description: "Qovurilgan lag'mon", CategoryID: meals.ID, IsAvailable: true},
		{Name: "Osh", Price: 40000, Description: "O'zbek oshi", CategoryID: meals.ID, IsAvailable: true},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	if err := db.Create(&entity.AdminUser{
		Email:        "admin@oshxona.uz",
		PasswordHash: hash,
		RestaurantID: restaurant.ID,
	}).Error; err != nil {
		return err
	}

	log.Println("seeded demo restaurant:", restaurant.Name)
	return nil
}
