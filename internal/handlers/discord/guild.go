package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Guild adapts a discordgo session to the role and notification channel of one guild
type Guild struct {
	session      *discordgo.Session
	guildID      string
	logChannelID string
}

// GuildConfig holds the configuration for a guild adapter
type GuildConfig struct {
	Session *discordgo.Session
	GuildID string

	// LogChannelID receives log notices. Empty disables them.
	LogChannelID string
}

// NewGuild creates a guild adapter
func NewGuild(cfg *GuildConfig) (*Guild, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.GuildID == "" {
		return nil, errors.New("guild id cannot be empty")
	}

	return &Guild{
		session:      cfg.Session,
		guildID:      cfg.GuildID,
		logChannelID: cfg.LogChannelID,
	}, nil
}

// HasRole reports whether the member holds the role. A user who left the guild holds nothing.
func (g *Guild) HasRole(ctx context.Context, userID, roleID string) (bool, error) {
	member, err := g.session.GuildMember(g.guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownMember(err) {
			return false, nil
		}
		return false, classify("get member", err)
	}

	return memberHasRole(member, roleID), nil
}

// AddRole grants a role to a member
func (g *Guild) AddRole(ctx context.Context, userID, roleID string) error {
	if err := g.session.GuildMemberRoleAdd(g.guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return classify("add role", err)
	}
	return nil
}

// RemoveRole takes a role from a member
func (g *Guild) RemoveRole(ctx context.Context, userID, roleID string) error {
	if err := g.session.GuildMemberRoleRemove(g.guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return classify("remove role", err)
	}
	return nil
}

// SendDirectMessage opens a DM channel with the user and posts content
func (g *Guild) SendDirectMessage(ctx context.Context, userID, content string) error {
	channel, err := g.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return classify("open dm", err)
	}

	if _, err := g.session.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return classify("send dm", err)
	}
	return nil
}

// SendLogMessage posts content to the configured log channel
func (g *Guild) SendLogMessage(ctx context.Context, content string) error {
	if g.logChannelID == "" {
		return fmt.Errorf("log channel: %w", models.ErrNotFound)
	}

	if _, err := g.session.ChannelMessageSend(g.logChannelID, content, discordgo.WithContext(ctx)); err != nil {
		return classify("send log", err)
	}
	return nil
}

func memberHasRole(member *discordgo.Member, roleID string) bool {
	if member == nil {
		return false
	}
	return slices.Contains(member.Roles, roleID)
}

func isUnknownMember(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMember {
		return true
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

// classify maps a discord failure onto the error kinds. Missing users and roles
// are invalid targets; everything else is the channel being unavailable.
func classify(op string, err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusNotFound, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %w", models.ErrInvalidTarget, op, err)
		}
	}
	return models.Unavailable(op, err)
}
