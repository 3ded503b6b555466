package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	notifdomain "pushadmin-backend/internal/notification/domain"
	notifdto "pushadmin-backend/internal/notification/dto"
	notifrepo "pushadmin-backend/internal/notification/repository"
	"pushadmin-backend/pkg/fcm"
)

// Validation errors, surfaced verbatim as the HTTP error body.
var (
	ErrNoTokens          = errors.New("No tokens provided")
	ErrTitleBodyRequired = errors.New("Title and body are required")
)

// MulticastSender is the provider-side bulk send. The returned outcomes are
// aligned index-for-index with the tokens argument.
type MulticastSender interface {
	SendMulticast(ctx context.Context, tokens []string, title, body string) (*fcm.MulticastResult, error)
}

type DispatchUsecase interface {
	SendNotification(ctx context.Context, tokens []string, title, body string) (*notifdto.SendResult, error)
	GetNotificationsForToken(token string) ([]notifdto.NotificationHistoryItem, error)
}

type dispatchUsecase struct {
	sender    MulticastSender
	notifRepo notifrepo.NotificationRepository
}

func NewDispatchUsecase(sender MulticastSender, notifRepo notifrepo.NotificationRepository) DispatchUsecase {
	return &dispatchUsecase{
		sender:    sender,
		notifRepo: notifRepo,
	}
}

// SendNotification fans one notification out to all tokens in a single
// provider call, records the outcome, and returns the provider's counts.
//
// Validation failures short-circuit before the provider is called. A provider
// failure aborts the whole operation with nothing persisted. Persistence
// after a successful send is best-effort bookkeeping: the send has already
// happened and cannot be undone, so store errors are logged and the result
// is still reported as whatever the provider said.
func (u *dispatchUsecase) SendNotification(ctx context.Context, tokens []string, title, body string) (*notifdto.SendResult, error) {
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	if title == "" || body == "" {
		return nil, ErrTitleBodyRequired
	}

	result, err := u.sender.SendMulticast(ctx, tokens, title, body)
	if err != nil {
		return nil, err
	}

	u.persistOutcome(tokens, title, body, result)

	failedTokens := []notifdto.FailedToken{}
	for i, outcome := range result.Outcomes {
		if !outcome.Success {
			failedTokens = append(failedTokens, notifdto.FailedToken{
				Token: tokens[i],
				Error: outcome.Error,
			})
		}
	}

	return &notifdto.SendResult{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		FailedTokens: failedTokens,
	}, nil
}

// persistOutcome writes the notification row and one recipient row per token,
// preserving request order. Failures are logged, never returned.
func (u *dispatchUsecase) persistOutcome(tokens []string, title, body string, result *fcm.MulticastResult) {
	notification, err := u.notifRepo.CreateNotification(title, body)
	if err != nil {
		log.Printf("[Dispatch] Failed to persist notification record: %v", err)
		return
	}

	recipients := make([]notifdomain.NotificationRecipient, 0, len(tokens))
	for i, token := range tokens {
		status := notifdomain.RecipientStatusSent
		if i < len(result.Outcomes) && !result.Outcomes[i].Success {
			status = notifdomain.RecipientStatusFailed
		}
		recipients = append(recipients, notifdomain.NotificationRecipient{
			ID:             uuid.New().String(),
			NotificationID: notification.ID,
			FCMToken:       token,
			Status:         status,
		})
	}

	if err := u.notifRepo.CreateRecipients(recipients); err != nil {
		log.Printf("[Dispatch] Failed to persist recipient records: %v", err)
	}
}

func (u *dispatchUsecase) GetNotificationsForToken(token string) ([]notifdto.NotificationHistoryItem, error) {
	return u.notifRepo.GetHistoryByToken(token)
}
