package services

import (
	"errors"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceHomeService defines the home service interface
type InterfaceHomeService interface {
	GetAllHomes() ([]models.Home, error)
	GetHomesForUser(userID uint) ([]models.Home, error)
	GetHomeByID(id uint) (*models.Home, error)
	CreateHome(home *models.Home) error
	UpdateHome(id uint, updates map[string]interface{}) (*models.Home, error)
	DeleteHome(id uint) error
}

// HomeService provides home related operations
type HomeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHomeService creates a new home service
func NewHomeService(db *gorm.DB, cfg *config.Config) InterfaceHomeService {
	return &HomeService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllHomes lists every home
func (s *HomeService) GetAllHomes() ([]models.Home, error) {
	var homes []models.Home
	if err := s.DB.Find(&homes).Error; err != nil {
		return nil, err
	}
	return homes, nil
}

// GetHomesForUser lists the homes a user owns
func (s *HomeService) GetHomesForUser(userID uint) ([]models.Home, error) {
	var homes []models.Home
	if err := s.DB.Where("owner_id = ?", userID).Find(&homes).Error; err != nil {
		return nil, err
	}
	return homes, nil
}

// GetHomeByID fetches a home by ID
func (s *HomeService) GetHomeByID(id uint) (*models.Home, error) {
	var home models.Home
	if err := s.DB.First(&home, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("home not found")
		}
		return nil, err
	}
	return &home, nil
}

// CreateHome creates a new home
func (s *HomeService) CreateHome(home *models.Home) error {
	return s.DB.Create(home).Error
}

// UpdateHome updates a home's attributes
func (s *HomeService) UpdateHome(id uint, updates map[string]interface{}) (*models.Home, error) {
	home, err := s.GetHomeByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(home).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetHomeByID(id)
}

// DeleteHome removes a home. Rooms, devices, memberships, invites and
// permissions cascade at the store level.
func (s *HomeService) DeleteHome(id uint) error {
	home, err := s.GetHomeByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(home).Error
}
