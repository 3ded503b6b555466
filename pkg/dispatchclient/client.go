package dispatchclient

import (
	"context"
	"fmt"

	"github.com/carlmjohnson/requests"

	notifdto "pushadmin-backend/internal/notification/dto"
)

// Client calls the dispatch service over HTTP.
type Client struct {
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// Send posts a batch send request and decodes the dispatch result. A non-2xx
// response surfaces the server-supplied error message.
func (c *Client) Send(ctx context.Context, tokens []string, title, body string) (*notifdto.SendResult, error) {
	var result notifdto.SendResult
	var apiErr struct {
		Error string `json:"error"`
	}

	err := requests.URL(c.baseURL).
		Path("/api/send-notification").
		BodyJSON(&notifdto.SendNotificationRequest{
			Tokens: tokens,
			Title:  title,
			Body:   body,
		}).
		ToJSON(&result).
		ErrorJSON(&apiErr).
		Fetch(ctx)
	if err != nil {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("dispatch service: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("dispatch service unreachable: %w", err)
	}

	return &result, nil
}
