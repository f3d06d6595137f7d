package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan models.TierAchieved, 1)
	require.NoError(t, bus.Subscribe(ctx, TopicTierAchieved, func(ctx context.Context, msg *message.Message) error {
		var ev models.TierAchieved
		if err := Decode(msg, &ev); err != nil {
			return err
		}
		got <- ev
		return nil
	}))

	require.NoError(t, bus.Publish(ctx, TopicTierAchieved, &models.TierAchieved{UserID: "u1", Tier: "Gold"}))

	select {
	case ev := <-got:
		require.Equal(t, "u1", ev.UserID)
		require.Equal(t, "Gold", ev.Tier)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestHandlerErrorStillAcks(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 4)
	require.NoError(t, bus.Subscribe(ctx, TopicRoleExpired, func(ctx context.Context, msg *message.Message) error {
		calls <- struct{}{}
		return errors.New("dm closed")
	}))

	require.NoError(t, bus.Publish(ctx, TopicRoleExpired, &models.RoleExpired{UserID: "u1", RoleID: "r1"}))
	require.NoError(t, bus.Publish(ctx, TopicRoleExpired, &models.RoleExpired{UserID: "u2", RoleID: "r1"}))

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("second message blocked behind a failed one")
		}
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	bus := New(nil)
	defer bus.Close()

	require.NoError(t, bus.Publish(context.Background(), TopicTierAchieved, &models.TierAchieved{UserID: "u1"}))
}
