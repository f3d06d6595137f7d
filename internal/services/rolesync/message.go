package rolesync

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// defaultExpiryDays is shown as the tier expiry when the tier has no retention window
const defaultExpiryDays = 30

// MessageData fills the placeholders of a tier message template
type MessageData struct {
	Tier         tier.Tier
	Points       int
	CurrencyName string
	ExpireAt     time.Time
	UserID       string
	Username     string

	// NextTier is empty at the top tier
	NextTier       tier.Tier
	NextTierPoints int
}

// RenderTierMessage substitutes every placeholder in template.
// Dates use Discord timestamp markup.
func RenderTierMessage(template string, d *MessageData) string {
	ts := d.ExpireAt.Unix()

	nextTier := "Max Tier"
	nextTierPoints := "Max Tier Reached"
	if d.NextTier != "" {
		nextTier = d.NextTier.String()
		nextTierPoints = strconv.Itoa(d.NextTierPoints)
	}

	return strings.NewReplacer(
		"{Tier}", d.Tier.String(),
		"{Points}", strconv.Itoa(d.Points),
		"{CurrencyName}", d.CurrencyName,
		"{ExpireDate}", fmt.Sprintf("<t:%d:f>", ts),
		"{ExpireDateRelative}", fmt.Sprintf("<t:%d:R>", ts),
		"{Username}", d.Username,
		"{UserMention}", fmt.Sprintf("<@%s>", d.UserID),
		"{NextTier}", nextTier,
		"{NextTierPoints}", nextTierPoints,
	).Replace(template)
}
