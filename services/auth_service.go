package services

import (
	"errors"
	"strings"

	"github.com/alisherkhudoyberdiev/qrplatform/repository"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
	"gorm.io/gorm"
)

type AuthService struct {
	adminRepo *repository.AdminRepository
	restRepo  *repository.RestaurantRepository
}

func NewAuthService(adminRepo *repository.AdminRepository, restRepo *repository.RestaurantRepository) *AuthService {
	return &AuthService{adminRepo: adminRepo, restRepo: restRepo}
}

// LoginResult carries everything the session needs after a match.
type LoginResult struct {
	AdminID        string
	Email          string
	IsSuperAdmin   bool
	RestaurantID   string
	RestaurantName string
}

// Login checks the super-admin table and the restaurant-admin table. An
// email present in both is refused outright instead of being resolved by
// table order.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, validationf("email and password are required")
	}

	super, err := s.adminRepo.FindSuperAdminByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	admin, err := s.adminRepo.FindAdminByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if super != nil && admin != nil {
		return nil, ErrAmbiguousCredential
	}

	if super != nil {
		if !utils.CheckPassword(password, super.PasswordHash) {
			return nil, ErrUnauthenticated
		}
		return &LoginResult{AdminID: super.ID, Email: super.Email, IsSuperAdmin: true}, nil
	}

	if admin != nil {
		if !utils.CheckPassword(password, admin.PasswordHash) {
			return nil, ErrUnauthenticated
		}
		return &LoginResult{
			AdminID:        admin.ID,
			Email:          admin.Email,
			RestaurantID:   admin.RestaurantID,
			RestaurantName: admin.Restaurant.Name,
		}, nil
	}

	return nil, ErrUnauthenticated
}

// RestaurantName resolves a display name for /me; empty id means unscoped.
func (s *AuthService) RestaurantName(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	rest, err := s.restRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return rest.Name, nil
}
