package models

import "time"

// DeviceStatus represents the reported power state of a device
type DeviceStatus string

const (
	DeviceStatusOn      DeviceStatus = "on"
	DeviceStatusOff     DeviceStatus = "off"
	DeviceStatusUnknown DeviceStatus = "unknown"
)

// Device represents a controllable appliance inside a room
type Device struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	RoomID    uint         `gorm:"not null;index" json:"room_id"`
	Name      string       `gorm:"type:varchar(100);not null" json:"name"`
	Type      string       `gorm:"type:varchar(50);not null" json:"type"`
	Status    DeviceStatus `gorm:"type:varchar(20);default:'unknown'" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	// Relations
	Room *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}
