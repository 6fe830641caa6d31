package services

import (
	"errors"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"

	"gorm.io/gorm"
)

// InterfaceAccessPermissionService defines the access permission service interface
type InterfaceAccessPermissionService interface {
	ListPermissions(userID, homeID *uint) ([]models.AccessPermission, error)
	GetPermissionByID(id uint) (*models.AccessPermission, error)
	CreatePermission(perm *models.AccessPermission) error
	UpdatePermission(id uint, perm *models.AccessPermission) error
	DeletePermission(id uint) error
}

// AccessPermissionService provides time-window permission operations
type AccessPermissionService struct {
	DB           *gorm.DB
	Config       *config.Config
	Capabilities database.SchemaCapabilities
}

// NewAccessPermissionService creates a new access permission service
func NewAccessPermissionService(db *gorm.DB, cfg *config.Config, caps database.SchemaCapabilities) InterfaceAccessPermissionService {
	return &AccessPermissionService{
		DB:           db,
		Config:       cfg,
		Capabilities: caps,
	}
}

func (s *AccessPermissionService) requireTable() error {
	if !s.Capabilities.AccessPermissions {
		return &SchemaMissingError{Table: database.TableAccessPermissions}
	}
	return nil
}

// ListPermissions returns permissions, optionally filtered by user and/or
// home, ordered for the editing UI
func (s *AccessPermissionService) ListPermissions(userID, homeID *uint) ([]models.AccessPermission, error) {
	if err := s.requireTable(); err != nil {
		return nil, err
	}

	query := s.DB.Model(&models.AccessPermission{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if homeID != nil {
		query = query.Where("home_id = ?", *homeID)
	}

	var perms []models.AccessPermission
	if err := query.Order("day_of_week ASC, start_time ASC").Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}

// GetPermissionByID fetches one permission row
func (s *AccessPermissionService) GetPermissionByID(id uint) (*models.AccessPermission, error) {
	if err := s.requireTable(); err != nil {
		return nil, err
	}
	var perm models.AccessPermission
	if err := s.DB.First(&perm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("access permission not found")
		}
		return nil, err
	}
	return &perm, nil
}

// CreatePermission inserts a permission row
func (s *AccessPermissionService) CreatePermission(perm *models.AccessPermission) error {
	if err := s.requireTable(); err != nil {
		return err
	}
	return s.DB.Create(perm).Error
}

// UpdatePermission replaces all fields of a permission row
func (s *AccessPermissionService) UpdatePermission(id uint, perm *models.AccessPermission) error {
	if err := s.requireTable(); err != nil {
		return err
	}

	result := s.DB.Model(&models.AccessPermission{}).Where("id = ?", id).Updates(map[string]interface{}{
		"home_id":     perm.HomeID,
		"user_id":     perm.UserID,
		"day_of_week": perm.DayOfWeek,
		"start_time":  perm.StartTime,
		"end_time":    perm.EndTime,
		"room_name":   perm.RoomName,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("access permission not found")
	}
	return nil
}

// DeletePermission removes a permission row
func (s *AccessPermissionService) DeletePermission(id uint) error {
	if err := s.requireTable(); err != nil {
		return err
	}

	result := s.DB.Delete(&models.AccessPermission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("access permission not found")
	}
	return nil
}
