package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notifdomain "pushadmin-backend/internal/notification/domain"
	notifdto "pushadmin-backend/internal/notification/dto"
)

// NotificationRepository persists dispatch bookkeeping and serves the
// per-token lookup.
type NotificationRepository interface {
	CreateNotification(title, body string) (*notifdomain.Notification, error)
	CreateRecipients(recipients []notifdomain.NotificationRecipient) error
	GetHistoryByToken(token string) ([]notifdto.NotificationHistoryItem, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification inserts the notification row, assigning id and send
// timestamp server-side.
func (r *notificationRepository) CreateNotification(title, body string) (*notifdomain.Notification, error) {
	notification := &notifdomain.Notification{
		ID:     uuid.New().String(),
		Title:  title,
		Body:   body,
		SentAt: time.Now(),
	}
	if err := r.db.Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

// CreateRecipients inserts all recipient rows in one batch. Rows are created
// in slice order so their creation order matches the provider response order.
func (r *notificationRepository) CreateRecipients(recipients []notifdomain.NotificationRecipient) error {
	if len(recipients) == 0 {
		return nil
	}
	return r.db.Create(&recipients).Error
}

// GetHistoryByToken returns every notification sent to the given token with
// its delivery status, most recent first. An empty result is not an error.
func (r *notificationRepository) GetHistoryByToken(token string) ([]notifdto.NotificationHistoryItem, error) {
	items := []notifdto.NotificationHistoryItem{}
	err := r.db.Table("notification_recipients").
		Select("notifications.id, notifications.title, notifications.body, notifications.sent_at, notification_recipients.status").
		Joins("JOIN notifications ON notifications.id = notification_recipients.notification_id").
		Where("notification_recipients.fcm_token = ?", token).
		Order("notification_recipients.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
