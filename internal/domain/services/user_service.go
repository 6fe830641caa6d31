package services

import (
	"errors"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	GetAllUsers() ([]models.User, error)
	ListUsers(q models.PaginationQuery) ([]models.User, models.PaginationResult, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
	Authenticate(username, password string) (*models.User, error)
}

// UserService provides user related operations
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllUsers lists every user
func (s *UserService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListUsers lists users one page at a time
func (s *UserService) ListUsers(q models.PaginationQuery) ([]models.User, models.PaginationResult, error) {
	if q.PageNum < 1 {
		q.PageNum = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}

	var total int64
	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	order := "id asc"
	if q.Desc {
		order = "id desc"
	}

	var users []models.User
	if err := s.DB.Order(order).
		Offset((q.PageNum - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&users).Error; err != nil {
		return nil, models.PaginationResult{}, err
	}

	return users, models.NewPaginationResult(int(total), q.PageNum, q.PageSize), nil
}

// GetUserByID fetches a user by ID
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername fetches a user by username
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user. Username and email must be unique; the
// password is hashed by the model hooks.
func (s *UserService) CreateUser(user *models.User) error {
	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("user already exists")
	}

	if user.Role == "" {
		user.Role = "user"
	}

	return s.DB.Create(user).Error
}

// UpdateUser updates profile fields of a user
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUserByID(id)
}

// DeleteUser removes a user
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(user).Error
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords yield the same error.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}

	if !models.CheckPasswordHash(password, user.PasswordHash) {
		return nil, errors.New("invalid credentials")
	}

	return &user, nil
}
