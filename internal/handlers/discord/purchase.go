package discord

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/bwmarrin/discordgo"
)

// purchasePattern matches "<userId> <item> [<type>] (USD|$)<price> <transactionId>"
var purchasePattern = regexp.MustCompile(`(\d+)\s+(.*?)\s+\[(.*?)\]\s+(?:USD|USD\s+|\$)(\d+\.?\d*)\s+((?:pi_[A-Za-z0-9]+|[A-Z0-9]+))`)

// PurchaseLine is a parsed purchase log entry
type PurchaseLine struct {
	UserID        string
	Item          string
	Type          string
	Price         float64
	TransactionID string
}

// Label is the item as recorded on the purchase, "item [type]"
func (p *PurchaseLine) Label() string {
	return fmt.Sprintf("%s [%s]", p.Item, p.Type)
}

// ParsePurchaseLine extracts a purchase from a log message. ok is false when
// the message carries no purchase.
func ParsePurchaseLine(content string) (line *PurchaseLine, ok bool) {
	m := purchasePattern.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}

	price, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return nil, false
	}

	return &PurchaseLine{
		UserID:        m[1],
		Item:          m[2],
		Type:          m[3],
		Price:         price,
		TransactionID: m[5],
	}, true
}

// handlePurchaseMessage applies purchase log lines posted in the purchase channel
func (b *Bot) handlePurchaseMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.ChannelID != b.config.PurchaseChannelID || b.config.PurchaseChannelID == "" {
		return
	}

	line, ok := ParsePurchaseLine(m.Content)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	username := ""
	if user, err := s.User(line.UserID, discordgo.WithContext(ctx)); err == nil {
		username = displayName(user)
	} else {
		b.logger.WarnContext(ctx, "Failed to fetch purchaser",
			slog.String("user_id", line.UserID),
			slog.Any("error", err))
	}

	out, err := b.points.ApplyPurchase(ctx, &points.ApplyPurchaseInput{
		UserID:        line.UserID,
		Username:      username,
		Item:          line.Label(),
		Price:         line.Price,
		TransactionID: line.TransactionID,
	})
	if err != nil {
		b.logger.ErrorContext(ctx, "Failed to apply purchase",
			slog.String("user_id", line.UserID),
			slog.String("transaction_id", line.TransactionID),
			slog.Any("error", err))
		return
	}

	embed := renderPurchase(line, out)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed, discordgo.WithContext(ctx)); err != nil {
		b.logger.WarnContext(ctx, "Failed to confirm purchase",
			slog.String("transaction_id", line.TransactionID),
			slog.Any("error", err))
	}
}

func displayName(user *discordgo.User) string {
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
