package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	devicedomain "pushadmin-backend/internal/device/domain"
)

// FCMTokenRepository defines the operations on the fcm_tokens table.
type FCMTokenRepository interface {
	SaveToken(token, platform string) error
	ListTokens() ([]devicedomain.FCMToken, error)
	DeleteByID(id string) error
	DeleteToken(token string) error
	DeleteTokens(tokens []string) error
}

type fcmTokenRepository struct {
	db *gorm.DB
}

func NewFCMTokenRepository(db *gorm.DB) FCMTokenRepository {
	return &fcmTokenRepository{db: db}
}

// SaveToken registers a device token (atomic upsert on the token string).
func (r *fcmTokenRepository) SaveToken(token, platform string) error {
	fcmToken := &devicedomain.FCMToken{
		ID:        uuid.New().String(),
		Token:     token,
		Platform:  platform,
		CreatedAt: time.Now(),
	}

	// INSERT ... ON CONFLICT (token) DO UPDATE
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"platform"}),
	}).Create(fcmToken).Error
}

// ListTokens returns all registered tokens, newest first.
func (r *fcmTokenRepository) ListTokens() ([]devicedomain.FCMToken, error) {
	var tokens []devicedomain.FCMToken
	err := r.db.Order("created_at DESC").Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// DeleteByID removes a single token row. Deleting a missing id is a no-op.
func (r *fcmTokenRepository) DeleteByID(id string) error {
	return r.db.Where("id = ?", id).Delete(&devicedomain.FCMToken{}).Error
}

// DeleteToken removes the row matching the token string, if any.
func (r *fcmTokenRepository) DeleteToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&devicedomain.FCMToken{}).Error
}

// DeleteTokens removes every row whose token is in the given list. Tokens
// with no matching row are skipped silently, so the call is idempotent.
func (r *fcmTokenRepository) DeleteTokens(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return r.db.Where("token IN ?", tokens).Delete(&devicedomain.FCMToken{}).Error
}
