package models

import "time"

// AccessPermission grants a non-owner user visibility into a named room for
// one day-of-week and one time-of-day interval. StartTime and EndTime are
// "HH:MM:SS" strings matching the underlying TIME columns; a window whose
// start is later than its end spans midnight.
type AccessPermission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HomeID    uint      `gorm:"not null;index:idx_perm_home_user" json:"home_id"`
	UserID    uint      `gorm:"not null;index:idx_perm_home_user" json:"user_id"`
	RoomName  string    `gorm:"type:varchar(100);not null" json:"room_name"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"` // 0=Sunday .. 6=Saturday
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Home *Home `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
