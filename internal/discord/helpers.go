package discord

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rootsofthewild/rootsbot/internal/domain"
	"github.com/rootsofthewild/rootsbot/internal/metrics"
)

// FooterRootsBot is the standard footer for embeds
const FooterRootsBot = "Roots of the Wild"

// deferResponse acknowledges an interaction with a deferred message.
// Required before any operation that might take longer than 3 seconds.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	return deferWithFlags(s, i, 0)
}

// deferEphemeral defers with an ephemeral (caller-only) response. Gift
// exchange replies go through this so assignments stay secret.
func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	return deferWithFlags(s, i, discordgo.MessageFlagsEphemeral)
}

func deferWithFlags(s *discordgo.Session, i *discordgo.InteractionCreate, flags discordgo.MessageFlags) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: flags},
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// respondError sends a plain error message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondFriendlyError maps a domain error to a friendly message, records
// the failure, and responds
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, command string, err error) {
	slog.Error("Command failed", "command", command, "error", err)
	metrics.CommandErrorsTotal.WithLabelValues(command).Inc()
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError translates domain errors into user-facing messages
func formatFriendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrSignupsClosed):
		return MsgSignupsClosed
	case errors.Is(err, domain.ErrParticipantAlreadyJoined):
		return MsgAlreadyJoined
	case errors.Is(err, domain.ErrParticipantNotFound):
		return MsgNotJoined
	case errors.Is(err, domain.ErrInsufficientParticipants):
		return MsgNotEnoughParticipants
	case errors.Is(err, domain.ErrMatchingInProgress):
		return MsgMatchingInProgress
	case errors.Is(err, domain.ErrNoMatchesFound):
		return MsgNoAssignment
	case errors.Is(err, domain.ErrCharacterNotFound):
		return MsgCharacterNotFound
	case errors.Is(err, domain.ErrAlreadyInfected):
		return MsgAlreadyBlighted
	case errors.Is(err, domain.ErrNotInfected):
		return MsgNotBlighted
	case errors.Is(err, domain.ErrCharacterDead):
		return MsgCharacterDead
	case errors.Is(err, domain.ErrNoWeatherRecorded):
		return MsgNoWeather
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidInput
	default:
		return MsgGenericError
	}
}

// sendEmbed sends an embed response, logging send failures internally
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed creates a standard embed with the community footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterRootsBot,
		},
	}
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getDisplayName picks the best label for the caller: server nickname,
// then global display name, then username
func getDisplayName(i *discordgo.InteractionCreate, user *discordgo.User) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// findOption looks up a named option within a subcommand's options
func findOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range opts {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// parseNameList splits a comma-separated list of names, trimming blanks
func parseNameList(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
