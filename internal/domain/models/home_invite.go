package models

import "time"

// InviteStatus represents the state of a home invite
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// HomeInvite is a pending request granting a user a role in a home. The
// invitee is identified by email so they need not have an account yet.
// Declined invites are deleted rather than kept in a terminal state.
type HomeInvite struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	HomeID       uint         `gorm:"not null;index" json:"home_id"`
	InvitedBy    uint         `gorm:"not null" json:"invited_by"`
	InviteeEmail string       `gorm:"type:varchar(100);not null;index" json:"invitee_email"`
	Role         string       `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Status       InviteStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	Home    *Home `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	Inviter *User `gorm:"foreignKey:InvitedBy" json:"inviter,omitempty"`
}
