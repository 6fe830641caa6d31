package services

import (
	"errors"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceRoomService defines the room service interface
type InterfaceRoomService interface {
	GetAllRooms() ([]models.Room, error)
	GetRoomsByHome(homeID uint) ([]models.Room, error)
	GetRoomByID(id uint) (*models.Room, error)
	CreateRoom(room *models.Room) error
	UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error)
	DeleteRoom(id uint) error
}

// RoomService provides room related operations
type RoomService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoomService creates a new room service
func NewRoomService(db *gorm.DB, cfg *config.Config) InterfaceRoomService {
	return &RoomService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllRooms lists every room
func (s *RoomService) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoomsByHome lists the rooms of a home
func (s *RoomService) GetRoomsByHome(homeID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("home_id = ?", homeID).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoomByID fetches a room by ID
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room not found")
		}
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a new room
func (s *RoomService) CreateRoom(room *models.Room) error {
	return s.DB.Create(room).Error
}

// UpdateRoom updates a room's name and circuit identifier
func (s *RoomService) UpdateRoom(id uint, updates map[string]interface{}) (*models.Room, error) {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetRoomByID(id)
}

// DeleteRoom removes a room and, at the store level, its devices
func (s *RoomService) DeleteRoom(id uint) error {
	room, err := s.GetRoomByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(room).Error
}
