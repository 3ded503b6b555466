package fcm_test

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pushadmin-backend/pkg/fcm"
)

type mockMessagingClient struct {
	mock.Mock
}

func (m *mockMessagingClient) SendEachForMulticast(ctx context.Context, msg *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messaging.BatchResponse), args.Error(1)
}

func TestSendMulticast(t *testing.T) {
	ctx := context.Background()

	t.Run("all success", func(t *testing.T) {
		mockClient := new(mockMessagingClient)
		client := fcm.NewClientWithMessaging(mockClient)

		mockClient.On("SendEachForMulticast", ctx, mock.Anything).Return(&messaging.BatchResponse{
			SuccessCount: 2,
			FailureCount: 0,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "msg-1"},
				{Success: true, MessageID: "msg-2"},
			},
		}, nil)

		result, err := client.SendMulticast(ctx, []string{"tok1", "tok2"}, "Sale", "50% off")
		require.NoError(t, err)
		assert.Equal(t, 2, result.SuccessCount)
		assert.Equal(t, 0, result.FailureCount)
		require.Len(t, result.Outcomes, 2)
		assert.True(t, result.Outcomes[0].Success)
		assert.True(t, result.Outcomes[1].Success)
		mockClient.AssertExpectations(t)
	})

	t.Run("partial failure preserves positions", func(t *testing.T) {
		mockClient := new(mockMessagingClient)
		client := fcm.NewClientWithMessaging(mockClient)

		mockClient.On("SendEachForMulticast", ctx, mock.Anything).Return(&messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "msg-1"},
				{Success: false, Error: errors.New("not-registered")},
			},
		}, nil)

		result, err := client.SendMulticast(ctx, []string{"tok1", "tok2"}, "Sale", "50% off")
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.FailureCount)
		require.Len(t, result.Outcomes, 2)
		assert.True(t, result.Outcomes[0].Success)
		assert.False(t, result.Outcomes[1].Success)
		assert.Equal(t, "not-registered", result.Outcomes[1].Error)
	})

	t.Run("tokens passed through unmodified", func(t *testing.T) {
		mockClient := new(mockMessagingClient)
		client := fcm.NewClientWithMessaging(mockClient)

		tokens := []string{"b", "a", "a"}
		mockClient.On("SendEachForMulticast", ctx, mock.MatchedBy(func(msg *messaging.MulticastMessage) bool {
			return assert.ObjectsAreEqual(tokens, msg.Tokens) &&
				msg.Notification.Title == "T" && msg.Notification.Body == "B"
		})).Return(&messaging.BatchResponse{
			SuccessCount: 3,
			Responses: []*messaging.SendResponse{
				{Success: true}, {Success: true}, {Success: true},
			},
		}, nil)

		_, err := client.SendMulticast(ctx, tokens, "T", "B")
		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("transport failure", func(t *testing.T) {
		mockClient := new(mockMessagingClient)
		client := fcm.NewClientWithMessaging(mockClient)

		mockClient.On("SendEachForMulticast", ctx, mock.Anything).Return(nil, errors.New("network down"))

		result, err := client.SendMulticast(ctx, []string{"tok1"}, "Sale", "50% off")
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "network down")
	})
}
