package services

import (
	"errors"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceDeviceService defines the device service interface
type InterfaceDeviceService interface {
	GetAllDevices() ([]models.Device, error)
	GetDevicesByRoom(roomID uint) ([]models.Device, error)
	GetDeviceByID(id uint) (*models.Device, error)
	CreateDevice(device *models.Device) error
	UpdateDevice(id uint, updates map[string]interface{}) (*models.Device, error)
	DeleteDevice(id uint) error
	GetDeviceHome(deviceID uint) (*models.Home, error)
}

// DeviceService provides device related operations
type DeviceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDeviceService creates a new device service
func NewDeviceService(db *gorm.DB, cfg *config.Config) InterfaceDeviceService {
	return &DeviceService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllDevices lists every device
func (s *DeviceService) GetAllDevices() ([]models.Device, error) {
	var devices []models.Device
	if err := s.DB.Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// GetDevicesByRoom lists the devices of a room
func (s *DeviceService) GetDevicesByRoom(roomID uint) ([]models.Device, error) {
	var devices []models.Device
	if err := s.DB.Where("room_id = ?", roomID).Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// GetDeviceByID fetches a device by ID
func (s *DeviceService) GetDeviceByID(id uint) (*models.Device, error) {
	var device models.Device
	if err := s.DB.Preload("Room").First(&device, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("device not found")
		}
		return nil, err
	}
	return &device, nil
}

// CreateDevice creates a new device
func (s *DeviceService) CreateDevice(device *models.Device) error {
	if device.Status == "" {
		device.Status = models.DeviceStatusUnknown
	}
	return s.DB.Create(device).Error
}

// UpdateDevice updates a device's attributes
func (s *DeviceService) UpdateDevice(id uint, updates map[string]interface{}) (*models.Device, error) {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(device).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetDeviceByID(id)
}

// DeleteDevice removes a device
func (s *DeviceService) DeleteDevice(id uint) error {
	device, err := s.GetDeviceByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(device).Error
}

// GetDeviceHome resolves the home a device belongs to through its room
func (s *DeviceService) GetDeviceHome(deviceID uint) (*models.Home, error) {
	device, err := s.GetDeviceByID(deviceID)
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.DB.First(&room, device.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room not found")
		}
		return nil, err
	}

	var home models.Home
	if err := s.DB.First(&home, room.HomeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("home not found")
		}
		return nil, err
	}
	return &home, nil
}
