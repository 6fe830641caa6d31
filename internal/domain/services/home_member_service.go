package services

import (
	"errors"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InterfaceHomeMemberService defines the home member service interface
type InterfaceHomeMemberService interface {
	GetAllMembers() ([]models.HomeMember, error)
	GetMembersByHome(homeID uint) ([]models.HomeMember, error)
	GetMember(homeID, userID uint) (*models.HomeMember, error)
	AddMember(member *models.HomeMember) error
	EnsureMember(member *models.HomeMember) error
	UpdateMemberRole(homeID, userID uint, role string) (*models.HomeMember, error)
	RemoveMember(homeID, userID uint) error
}

// HomeMemberService provides membership operations
type HomeMemberService struct {
	DB           *gorm.DB
	Config       *config.Config
	Capabilities database.SchemaCapabilities
}

// NewHomeMemberService creates a new home member service
func NewHomeMemberService(db *gorm.DB, cfg *config.Config, caps database.SchemaCapabilities) InterfaceHomeMemberService {
	return &HomeMemberService{
		DB:           db,
		Config:       cfg,
		Capabilities: caps,
	}
}

func (s *HomeMemberService) requireTable() error {
	if !s.Capabilities.HomeMembers {
		return &SchemaMissingError{Table: database.TableHomeMembers}
	}
	return nil
}

// GetAllMembers lists every membership row
func (s *HomeMemberService) GetAllMembers() ([]models.HomeMember, error) {
	if err := s.requireTable(); err != nil {
		return nil, err
	}
	var members []models.HomeMember
	if err := s.DB.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetMembersByHome lists memberships of a home
func (s *HomeMemberService) GetMembersByHome(homeID uint) ([]models.HomeMember, error) {
	if err := s.requireTable(); err != nil {
		return nil, err
	}
	var members []models.HomeMember
	if err := s.DB.Where("home_id = ?", homeID).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetMember fetches one membership by its composite key
func (s *HomeMemberService) GetMember(homeID, userID uint) (*models.HomeMember, error) {
	if err := s.requireTable(); err != nil {
		return nil, err
	}
	var member models.HomeMember
	if err := s.DB.Where("home_id = ? AND user_id = ?", homeID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("member not found in this home")
		}
		return nil, err
	}
	return &member, nil
}

// AddMember inserts a membership row
func (s *HomeMemberService) AddMember(member *models.HomeMember) error {
	if err := s.requireTable(); err != nil {
		return err
	}
	if member.Role == "" {
		member.Role = "member"
	}
	return s.DB.Create(member).Error
}

// EnsureMember inserts a membership row unless one already exists for the
// composite key. The insert is conditional at the store level, so concurrent
// callers cannot create duplicates.
func (s *HomeMemberService) EnsureMember(member *models.HomeMember) error {
	if err := s.requireTable(); err != nil {
		return err
	}
	if member.Role == "" {
		member.Role = "member"
	}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error
}

// UpdateMemberRole changes the role of a membership
func (s *HomeMemberService) UpdateMemberRole(homeID, userID uint, role string) (*models.HomeMember, error) {
	if err := s.requireTable(); err != nil {
		return nil, err
	}

	result := s.DB.Model(&models.HomeMember{}).
		Where("home_id = ? AND user_id = ?", homeID, userID).
		Update("role", role)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errors.New("member not found in this home")
	}

	return s.GetMember(homeID, userID)
}

// RemoveMember deletes a membership row
func (s *HomeMemberService) RemoveMember(homeID, userID uint) error {
	if err := s.requireTable(); err != nil {
		return err
	}

	result := s.DB.Where("home_id = ? AND user_id = ?", homeID, userID).Delete(&models.HomeMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("member not found in this home")
	}
	return nil
}
