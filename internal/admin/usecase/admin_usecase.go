package usecase

import (
	"context"
	"errors"
	"log"

	devicedomain "pushadmin-backend/internal/device/domain"
	devicerepo "pushadmin-backend/internal/device/repository"
	notifdto "pushadmin-backend/internal/notification/dto"
)

// Local validation errors, raised before any network call.
var (
	ErrTitleBodyMissing = errors.New("Please enter both title and body")
	ErrNoDevices        = errors.New("No devices registered")
)

// DispatchClient is the admin console's view of the dispatch service.
type DispatchClient interface {
	Send(ctx context.Context, tokens []string, title, body string) (*notifdto.SendResult, error)
}

// ReconcileResult is the dispatch outcome plus the device list as it stands
// after failed tokens were pruned.
type ReconcileResult struct {
	notifdto.SendResult
	Tokens []devicedomain.FCMToken `json:"tokens"`
}

type AdminUsecase interface {
	ListTokens() ([]devicedomain.FCMToken, error)
	DeleteToken(id string) error
	SendAndReconcile(ctx context.Context, tokens []string, title, body string) (*ReconcileResult, error)
}

type adminUsecase struct {
	dispatch  DispatchClient
	tokenRepo devicerepo.FCMTokenRepository
}

func NewAdminUsecase(dispatch DispatchClient, tokenRepo devicerepo.FCMTokenRepository) AdminUsecase {
	return &adminUsecase{
		dispatch:  dispatch,
		tokenRepo: tokenRepo,
	}
}

func (u *adminUsecase) ListTokens() ([]devicedomain.FCMToken, error) {
	return u.tokenRepo.ListTokens()
}

func (u *adminUsecase) DeleteToken(id string) error {
	return u.tokenRepo.DeleteByID(id)
}

// SendAndReconcile sends a notification through the dispatch service and
// prunes every token the provider rejected, so future batches stop
// re-attempting them. This is the system's only self-healing mechanism.
//
// A dispatch failure stops the flow before any deletion. Pruning failures are
// logged but do not fail the send, which has already happened.
func (u *adminUsecase) SendAndReconcile(ctx context.Context, tokens []string, title, body string) (*ReconcileResult, error) {
	if title == "" || body == "" {
		return nil, ErrTitleBodyMissing
	}
	if len(tokens) == 0 {
		return nil, ErrNoDevices
	}

	result, err := u.dispatch.Send(ctx, tokens, title, body)
	if err != nil {
		return nil, err
	}

	if len(result.FailedTokens) > 0 {
		failed := make([]string, len(result.FailedTokens))
		for i, ft := range result.FailedTokens {
			failed[i] = ft.Token
		}
		log.Printf("[Admin] Pruning %d failed tokens", len(failed))
		if err := u.tokenRepo.DeleteTokens(failed); err != nil {
			log.Printf("[Admin] Failed to prune tokens: %v", err)
		}
	}

	remaining, err := u.tokenRepo.ListTokens()
	if err != nil {
		return nil, err
	}

	return &ReconcileResult{
		SendResult: *result,
		Tokens:     remaining,
	}, nil
}
