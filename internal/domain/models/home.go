package models

import "time"

// Home represents a household owned by a single user
type Home struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Owner   *User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Rooms   []Room       `gorm:"foreignKey:HomeID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	Members []HomeMember `gorm:"foreignKey:HomeID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Invites []HomeInvite `gorm:"foreignKey:HomeID;constraint:OnDelete:CASCADE" json:"invites,omitempty"`
}
