package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is addressed either to one user or, when UserID is nil,
// to every user (a global notification).
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    *uuid.UUID       `json:"user_id,omitempty" db:"user_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// Global reports whether the notification is visible to every user.
func (n *Notification) Global() bool {
	return n.UserID == nil
}

type NotificationType string

const (
	NotifAdoption     NotificationType = "adoption"
	NotifAnnouncement NotificationType = "announcement"
	NotifReminder     NotificationType = "reminder"
	NotifAlert        NotificationType = "alert"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotifAdoption, NotifAnnouncement, NotifReminder, NotifAlert:
		return true
	}
	return false
}

type CreateNotificationInput struct {
	UserID  *uuid.UUID `json:"user_id,omitempty"`
	Title   string     `json:"title" validate:"required"`
	Message string     `json:"message" validate:"required"`
	Type    string     `json:"type"`
}

// UpdateNotificationInput carries a partial document; every field present
// overwrites the stored one.
type UpdateNotificationInput struct {
	UserID  *uuid.UUID `json:"user_id"`
	Title   *string    `json:"title"`
	Message *string    `json:"message"`
	Type    *string    `json:"type"`
	IsRead  *bool      `json:"is_read"`
}
