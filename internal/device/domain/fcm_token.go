package domain

import "time"

// FCMToken is a registered device token. One row per installed app instance
// or browser subscription; rows are pruned when the provider reports the
// token as invalid, or manually by an operator.
type FCMToken struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	Platform  string    `json:"platform"` // "ios", "android", "web"
	CreatedAt time.Time `json:"created_at"`
}

func (FCMToken) TableName() string {
	return "fcm_tokens"
}
