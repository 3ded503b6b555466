package dispatchclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notifdto "pushadmin-backend/internal/notification/dto"
	"pushadmin-backend/pkg/dispatchclient"
)

func TestSend(t *testing.T) {
	t.Run("decodes dispatch result", func(t *testing.T) {
		var gotReq notifdto.SendNotificationRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/send-notification", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			json.NewEncoder(w).Encode(notifdto.SendResult{
				SuccessCount: 1,
				FailureCount: 1,
				FailedTokens: []notifdto.FailedToken{{Token: "tok2", Error: "not-registered"}},
			})
		}))
		defer srv.Close()

		client := dispatchclient.New(srv.URL)
		result, err := client.Send(context.Background(), []string{"tok1", "tok2"}, "Sale", "50% off")
		require.NoError(t, err)

		assert.Equal(t, []string{"tok1", "tok2"}, gotReq.Tokens)
		assert.Equal(t, "Sale", gotReq.Title)
		assert.Equal(t, 1, result.SuccessCount)
		require.Len(t, result.FailedTokens, 1)
		assert.Equal(t, "tok2", result.FailedTokens[0].Token)
	})

	t.Run("surfaces server error message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "No tokens provided"})
		}))
		defer srv.Close()

		client := dispatchclient.New(srv.URL)
		_, err := client.Send(context.Background(), nil, "Sale", "50% off")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "No tokens provided")
	})

	t.Run("unreachable service", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // shut down before calling

		client := dispatchclient.New(srv.URL)
		_, err := client.Send(context.Background(), []string{"tok1"}, "Sale", "50% off")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unreachable")
	})
}
