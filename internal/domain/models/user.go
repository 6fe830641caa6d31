package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(50)" json:"last_name"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PhoneNumber  string    `gorm:"type:varchar(20)" json:"phone_number"`
	Role         string    `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	OwnedHomes []Home `gorm:"foreignKey:OwnerID" json:"owned_homes,omitempty"`
}

// BeforeCreate is a GORM hook that runs before a new record is created
func (u *User) BeforeCreate(tx *gorm.DB) error {
	// Hash the password if one was provided in plaintext
	if u.PasswordHash != "" && len(u.PasswordHash) < 60 {
		hashedPassword, err := HashPassword(u.PasswordHash)
		if err != nil {
			return err
		}
		u.PasswordHash = hashedPassword
	}
	return nil
}

// BeforeSave is a GORM hook that runs before a record is saved
func (u *User) BeforeSave(tx *gorm.DB) error {
	// bcrypt hashes are 60 characters; anything shorter is plaintext
	if u.PasswordHash != "" && len(u.PasswordHash) < 60 {
		hashedPassword, err := HashPassword(u.PasswordHash)
		if err != nil {
			return err
		}
		u.PasswordHash = hashedPassword
	}
	return nil
}
