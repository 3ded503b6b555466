package domain

import "time"

const (
	RecipientStatusSent   = "sent"
	RecipientStatusFailed = "failed"
)

// Notification is one dispatched broadcast. Rows are written once per send
// and never updated or deleted.
type Notification struct {
	ID     string    `json:"id" gorm:"primaryKey"`
	Title  string    `json:"title" gorm:"not null"`
	Body   string    `json:"body" gorm:"not null"`
	SentAt time.Time `json:"sent_at"`
}

// NotificationRecipient records the per-token delivery outcome of a send.
// One row per requested token, in request order. FCMToken is a point-in-time
// copy of the token string, not a reference to the fcm_tokens table; deleting
// a device token leaves recipient rows untouched.
type NotificationRecipient struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	NotificationID string    `json:"notification_id" gorm:"index;not null"`
	FCMToken       string    `json:"fcm_token" gorm:"column:fcm_token;index;not null"`
	Status         string    `json:"status" gorm:"not null"` // "sent" | "failed"
	CreatedAt      time.Time `json:"created_at"`
}
