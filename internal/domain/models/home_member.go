package models

import "time"

// HomeMember joins a user to a home with a role. The (home, user) pair is the
// composite primary key, so a user can hold at most one membership per home.
type HomeMember struct {
	HomeID    uint      `gorm:"primaryKey;autoIncrement:false" json:"home_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Role      string    `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Home *Home `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName overrides the default table name
func (HomeMember) TableName() string { return "home_members" }
