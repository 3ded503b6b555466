package fcm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"pushadmin-backend/pkg/config"
)

// MessagingClient is the subset of the Firebase Messaging API the client
// uses. *messaging.Client satisfies it; tests substitute a mock.
type MessagingClient interface {
	SendEachForMulticast(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// Client wraps Firebase Cloud Messaging multicast sends.
type Client struct {
	messagingClient MessagingClient
}

// NewClient creates an FCM client from the configured credentials. The
// explicit project-id/private-key/client-email triple takes precedence;
// otherwise a credentials file is used if configured.
func NewClient(cfg *config.Config) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	switch {
	case cfg.FirebaseProjectID != "" && cfg.FirebasePrivateKey != "" && cfg.FirebaseClientEmail != "":
		credJSON, err := serviceAccountJSON(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsJSON(credJSON))
	case cfg.FirebaseCredentials != "":
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{messagingClient: messagingClient}, nil
}

// NewClientWithMessaging wires an existing messaging client, mainly for tests.
func NewClientWithMessaging(m MessagingClient) *Client {
	return &Client{messagingClient: m}
}

func serviceAccountJSON(cfg *config.Config) ([]byte, error) {
	sa := map[string]string{
		"type":         "service_account",
		"project_id":   cfg.FirebaseProjectID,
		"private_key":  cfg.FirebasePrivateKey,
		"client_email": cfg.FirebaseClientEmail,
		"token_uri":    "https://oauth2.googleapis.com/token",
	}
	credJSON, err := json.Marshal(sa)
	if err != nil {
		return nil, fmt.Errorf("failed to build service account credentials: %w", err)
	}
	return credJSON, nil
}

// SendOutcome is the per-token result of a multicast send.
type SendOutcome struct {
	Success bool
	Error   string
}

// MulticastResult mirrors the provider's batch response. Outcomes is aligned
// index-for-index with the tokens passed to SendMulticast; callers rely on
// that ordering to match outcomes back to tokens.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
	Outcomes     []SendOutcome
}

// SendMulticast sends one notification to every token in a single provider
// call. Tokens are passed through as given: no reordering, no deduplication.
func (c *Client) SendMulticast(ctx context.Context, tokens []string, title, body string) (*MulticastResult, error) {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title: title,
				Body:  body,
			},
		},
	}

	response, err := c.messagingClient.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("failed to send FCM multicast message: %w", err)
	}

	log.Printf("[FCM] Multicast sent: %d success, %d failures", response.SuccessCount, response.FailureCount)

	result := &MulticastResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Outcomes:     make([]SendOutcome, len(response.Responses)),
	}
	for i, resp := range response.Responses {
		outcome := SendOutcome{Success: resp.Success}
		if !resp.Success && resp.Error != nil {
			outcome.Error = resp.Error.Error()
		}
		result.Outcomes[i] = outcome
	}

	return result, nil
}
