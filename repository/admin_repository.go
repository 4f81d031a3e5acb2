package repository

import (
	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"gorm.io/gorm"
)

// AdminRepository covers both credential tables: restaurant admins and
// platform super-admins.
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) CreateAdmin(a *entity.AdminUser) error {
	return r.DB.Create(a).Error
}

func (r *AdminRepository) FindAdminByEmail(email string) (*entity.AdminUser, error) {
	var a entity.AdminUser
	if err := r.DB.Preload("Restaurant").Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) FindSuperAdminByEmail(email string) (*entity.SuperAdmin, error) {
	var a entity.SuperAdmin
	if err := r.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) AdminEmailExists(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.AdminUser{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *AdminRepository) SuperAdminEmailExists(email string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.SuperAdmin{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
