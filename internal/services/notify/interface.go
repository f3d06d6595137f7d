package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_channel.go github.com/KirkDiggler/rewardsbot/internal/services/notify Channel

import "context"

// Channel delivers notifications to members and to the staff log
type Channel interface {
	SendDirectMessage(ctx context.Context, userID, content string) error

	// SendLogMessage posts to the configured log channel.
	// It returns models.ErrNotFound when no log channel is configured.
	SendLogMessage(ctx context.Context, content string) error
}
