package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/leaderboard"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/KirkDiggler/rewardsbot/internal/services/shop"
	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorInfo    = 0x59deff
	colorWaiting = 0xffa500
)

// renderPurchase builds the confirmation posted under a purchase log line
func renderPurchase(line *PurchaseLine, out *points.ApplyPurchaseOutput) *discordgo.MessageEmbed {
	if out.Replayed {
		return &discordgo.MessageEmbed{
			Title:       "🔄 Purchase Updated",
			Description: fmt.Sprintf("Added item to transaction for <@%s>", line.UserID),
			Color:       colorInfo,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Added Item", Value: line.Label(), Inline: true},
				{Name: "Transaction Price", Value: fmt.Sprintf("$%.2f", purchasePrice(out, line)), Inline: true},
				{Name: "Transaction ID", Value: line.TransactionID},
			},
		}
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Item", Value: line.Label(), Inline: true},
		{Name: "Price", Value: fmt.Sprintf("$%.2f", line.Price), Inline: true},
		{Name: "Points Awarded", Value: fmt.Sprintf("%d", out.PointsAwarded), Inline: true},
		{Name: "New Balance", Value: fmt.Sprintf("%d", out.Points), Inline: true},
		{Name: "Transaction ID", Value: line.TransactionID},
	}
	if out.Multiplier > 1 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Multiplier",
			Value:  fmt.Sprintf("%gx", out.Multiplier),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "✅ Purchase Recorded",
		Description: fmt.Sprintf("Points added for <@%s>", line.UserID),
		Color:       colorSuccess,
		Fields:      fields,
	}
}

func purchasePrice(out *points.ApplyPurchaseOutput, line *PurchaseLine) float64 {
	if out.Purchase != nil {
		return out.Purchase.Price
	}
	return line.Price
}

// renderBalance shows a member's standing
func renderBalance(user *discordgo.User, out *points.BalanceOutput, currency string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: titleCase(currency), Value: fmt.Sprintf("%d", out.Points), Inline: true},
		{Name: "Tier", Value: out.Tier.String(), Inline: true},
	}
	if out.Tier != out.PointsTier {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Retained",
			Value:  fmt.Sprintf("%s held by retention, balance qualifies for %s", out.Tier, out.PointsTier),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s's Balance", displayName(user)),
		Color:  colorInfo,
		Fields: fields,
	}
}

// renderDaily announces a daily claim
func renderDaily(user *discordgo.User, out *points.ClaimDailyOutput, currency string) *discordgo.MessageEmbed {
	description := fmt.Sprintf("<@%s> claimed **%d %s**", user.ID, out.Amount, currency)
	if out.Multiplier > 1 {
		description += fmt.Sprintf(" (rolled %d × %gx tier bonus)", out.Roll, out.Multiplier)
	}

	return &discordgo.MessageEmbed{
		Title:       "🎁 Daily Reward",
		Description: description,
		Color:       colorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "New Balance", Value: fmt.Sprintf("%d", out.Points), Inline: true},
		},
	}
}

// renderCooldown tells a member when the next claim opens
func renderCooldown(next time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "⏳ Already Claimed",
		Description: fmt.Sprintf("Your next daily reward is available <t:%d:R>.", next.Unix()),
		Color:       colorWaiting,
	}
}

// renderLeaderboard lists ranked entries
func renderLeaderboard(out *leaderboard.TopOutput, currency string) *discordgo.MessageEmbed {
	title := "🏆 Leaderboard"
	unit := currency
	switch out.Period {
	case models.PeriodWeekly:
		title = "🏆 Weekly Top Spenders"
		unit = "spent"
	case models.PeriodMonthly:
		title = "🏆 Monthly Top Spenders"
		unit = "spent"
	}

	if len(out.Entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "No entries yet.",
			Color:       colorInfo,
		}
	}

	var b strings.Builder
	for _, e := range out.Entries {
		name := e.Username
		if name == "" {
			name = fmt.Sprintf("<@%s>", e.UserID)
		}
		fmt.Fprintf(&b, "%s **%s** %g %s\n", rankBadge(e.Rank), name, e.Score, unit)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: b.String(),
		Color:       colorInfo,
	}
}

// renderCatalog lists the shop at the member's price
func renderCatalog(out *shop.CatalogOutput, currency string) *discordgo.MessageEmbed {
	description := "Nothing is for sale right now."
	if len(out.Items) > 0 {
		var b strings.Builder
		for _, item := range out.Items {
			fmt.Fprintf(&b, "<@&%s> **%d %s**", item.Product.RoleID, item.Price, currency)
			if item.Product.Temporary() {
				fmt.Fprintf(&b, " for %dh", item.Product.Hours)
			}
			b.WriteString("\n")
		}
		description = b.String()
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🛒 Role Shop",
		Description: description,
		Color:       colorInfo,
	}
	if out.Discount > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s members save %d%%", out.Tier, out.Discount),
		}
	}
	return embed
}

// renderBuy confirms a shop purchase
func renderBuy(user *discordgo.User, out *shop.BuyOutput, currency string) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Paid", Value: fmt.Sprintf("%d %s", out.Price, currency), Inline: true},
		{Name: "Balance", Value: fmt.Sprintf("%d", out.Points), Inline: true},
	}
	if !out.ExpiresAt.IsZero() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Expires",
			Value:  fmt.Sprintf("<t:%d:R>", out.ExpiresAt.Unix()),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "🛍️ Role Purchased",
		Description: fmt.Sprintf("<@%s> bought <@&%s>", user.ID, out.Product.RoleID),
		Color:       colorSuccess,
		Fields:      fields,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func rankBadge(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", rank)
	}
}
