package dto

import "time"

type SendNotificationRequest struct {
	Tokens []string `json:"tokens"`
	Title  string   `json:"title"`
	Body   string   `json:"body"`
}

type FailedToken struct {
	Token string `json:"token"`
	Error string `json:"error"`
}

// SendResult is the dispatch outcome as reported by the provider. Counts come
// from the provider response, never from persistence.
type SendResult struct {
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	FailedTokens []FailedToken `json:"failedTokens"`
}

// NotificationHistoryItem is one entry of the per-token lookup: the parent
// notification joined with the recipient row's delivery status.
type NotificationHistoryItem struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	SentAt time.Time `json:"sent_at"`
	Status string    `json:"status"`
}
