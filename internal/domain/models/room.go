package models

import "time"

// Room belongs to exactly one home. CircuitID is the optional physical
// circuit identifier used when addressing light devices over MQTT.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HomeID    uint      `gorm:"not null;index" json:"home_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CircuitID *string   `gorm:"type:varchar(50)" json:"circuit_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Home    *Home    `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	Devices []Device `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"devices,omitempty"`
}
