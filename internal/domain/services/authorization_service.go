package services

import (
	"errors"
	"log"
	"time"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"

	"gorm.io/gorm"
)

// HomeRole is a user's relationship to a home
type HomeRole int

const (
	RoleNone HomeRole = iota
	RoleMember
	RoleAdmin
)

func (r HomeRole) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	default:
		return "none"
	}
}

// ErrHomeNotFound is returned when the referenced home does not exist
var ErrHomeNotFound = errors.New("home not found")

// InterfaceAuthorizationService resolves a user's relationship to a home and
// which rooms are currently visible to them. Every handler that needs a
// home-level or room-level access check goes through this service.
type InterfaceAuthorizationService interface {
	ResolveHomeAccess(homeID, userID uint) (HomeRole, error)
	VisibleRooms(homeID, userID uint, now time.Time) ([]string, error)
}

// AuthorizationService is the gorm-backed resolver implementation
type AuthorizationService struct {
	DB           *gorm.DB
	Capabilities database.SchemaCapabilities
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(db *gorm.DB, caps database.SchemaCapabilities) InterfaceAuthorizationService {
	return &AuthorizationService{
		DB:           db,
		Capabilities: caps,
	}
}

// ResolveHomeAccess determines the user's relationship to the home: RoleAdmin
// for the owner, RoleMember for a membership row or, when the membership
// relation is structurally absent, an accepted invite matching the user's
// registered email. RoleNone otherwise.
func (s *AuthorizationService) ResolveHomeAccess(homeID, userID uint) (HomeRole, error) {
	var home models.Home
	if err := s.DB.Select("id", "owner_id").First(&home, homeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNone, ErrHomeNotFound
		}
		return RoleNone, err
	}

	if home.OwnerID == userID {
		return RoleAdmin, nil
	}

	if s.Capabilities.HomeMembers {
		var count int64
		if err := s.DB.Model(&models.HomeMember{}).
			Where("home_id = ? AND user_id = ?", homeID, userID).
			Count(&count).Error; err != nil {
			return RoleNone, err
		}
		if count > 0 {
			return RoleMember, nil
		}
		return RoleNone, nil
	}

	// Membership relation absent: fall back to accepted invites keyed on the
	// user's email. Fewer privileges, never a server error.
	log.Printf("[auth] home_members relation missing, falling back to accepted invites for user %d", userID)
	return s.resolveViaInvites(homeID, userID)
}

// resolveViaInvites grants RoleMember when an accepted invite exists for the
// user's registered email
func (s *AuthorizationService) resolveViaInvites(homeID, userID uint) (HomeRole, error) {
	if !s.Capabilities.HomeInvites {
		log.Printf("[auth] home_invites relation also missing, treating user %d as non-member", userID)
		return RoleNone, nil
	}

	var user models.User
	if err := s.DB.Select("id", "email").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNone, nil
		}
		return RoleNone, err
	}

	var count int64
	if err := s.DB.Model(&models.HomeInvite{}).
		Where("home_id = ? AND invitee_email = ? AND status = ?", homeID, user.Email, models.InviteStatusAccepted).
		Count(&count).Error; err != nil {
		return RoleNone, err
	}
	if count > 0 {
		return RoleMember, nil
	}
	return RoleNone, nil
}

// VisibleRooms returns the distinct room names the user may currently see.
// Admins see every room of the home regardless of time; members are filtered
// through their access permission windows against now; everyone else gets an
// empty set.
func (s *AuthorizationService) VisibleRooms(homeID, userID uint, now time.Time) ([]string, error) {
	role, err := s.ResolveHomeAccess(homeID, userID)
	if err != nil {
		return nil, err
	}

	switch role {
	case RoleAdmin:
		var names []string
		if err := s.DB.Model(&models.Room{}).
			Distinct("name").
			Where("home_id = ?", homeID).
			Pluck("name", &names).Error; err != nil {
			return nil, err
		}
		return names, nil

	case RoleMember:
		if !s.Capabilities.AccessPermissions {
			log.Printf("[auth] access_permissions relation missing, no rooms visible for user %d", userID)
			return []string{}, nil
		}

		var perms []models.AccessPermission
		if err := s.DB.
			Where("home_id = ? AND user_id = ? AND day_of_week = ?", homeID, userID, int(now.Weekday())).
			Find(&perms).Error; err != nil {
			return nil, err
		}
		return matchingRoomNames(perms, now), nil

	default:
		return []string{}, nil
	}
}
