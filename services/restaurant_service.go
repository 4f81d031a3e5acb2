package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/alisherkhudoyberdiev/qrplatform/entity"
	"github.com/alisherkhudoyberdiev/qrplatform/pkg/tenant"
	"github.com/alisherkhudoyberdiev/qrplatform/repository"
	"github.com/alisherkhudoyberdiev/qrplatform/utils"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// RestaurantService covers the super-admin console: tenant provisioning,
// admin provisioning and context switching.
type RestaurantService struct {
	restRepo  *repository.RestaurantRepository
	adminRepo *repository.AdminRepository
}

func NewRestaurantService(restRepo *repository.RestaurantRepository, adminRepo *repository.AdminRepository) *RestaurantService {
	return &RestaurantService{restRepo: restRepo, adminRepo: adminRepo}
}

func (s *RestaurantService) List() ([]repository.RestaurantSummary, error) {
	return s.restRepo.ListSummaries()
}

// Create provisions a tenant. The subdomain is optional (path-only tenants
// have none); when present it is lowercased and must be a DNS-safe,
// non-reserved, unique label.
func (s *RestaurantService) Create(name, subdomain string) (*entity.Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("restaurant name is required")
	}

	rest := entity.Restaurant{Name: name}
	if slug := strings.ToLower(strings.TrimSpace(subdomain)); slug != "" {
		if !slugPattern.MatchString(slug) || len(slug) > 63 {
			return nil, validationf("subdomain must be a lowercase dns label")
		}
		if tenant.IsReserved(slug) {
			return nil, validationf("subdomain %q is reserved", slug)
		}
		taken, err := s.restRepo.SubdomainTaken(slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
		rest.Subdomain = &slug
	}

	if err := s.restRepo.Create(&rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

// CreateAdmin provisions a restaurant admin. The email must be unused in
// both credential tables, otherwise login would become ambiguous.
func (s *RestaurantService) CreateAdmin(restaurantID, email, password string) (*entity.AdminUser, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	email = strings.ToLower(strings.TrimSpace(email))
	if restaurantID == "" || email == "" || password == "" {
		return nil, validationf("restaurant, email and password are required")
	}

	if _, err := s.restRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if exists, err := s.adminRepo.AdminEmailExists(email); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrConflict
	}
	if exists, err := s.adminRepo.SuperAdminEmailExists(email); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrConflict
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := entity.AdminUser{Email: email, PasswordHash: hash, RestaurantID: restaurantID}
	if err := s.adminRepo.CreateAdmin(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Switch validates a context-switch target. Empty clears the scope;
// otherwise the restaurant must exist.
func (s *RestaurantService) Switch(restaurantID string) (string, error) {
	restaurantID = strings.TrimSpace(restaurantID)
	if restaurantID == "" {
		return "", nil
	}
	if _, err := s.restRepo.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return restaurantID, nil
}

func (s *RestaurantService) FindBySubdomain(slug string) (*entity.Restaurant, error) {
	rest, err := s.restRepo.FindBySubdomain(strings.ToLower(slug))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rest, nil
}
