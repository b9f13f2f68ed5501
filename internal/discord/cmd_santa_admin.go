package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/rootsofthewild/rootsbot/internal/event"
)

// SantaAdminCommand returns the moderator-facing exchange command
func SantaAdminCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "santa-admin",
		Description:              "Moderator controls for the gift exchange",
		DefaultMemberPermissions: &[]int64{discordgo.PermissionAdministrator}[0],
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "open",
				Description: "Open signups",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "close",
				Description: "Close signups",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "deadline",
				Description: "Set the gift deadline",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "date",
						Description: "Deadline date (YYYY-MM-DD)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "match",
				Description: "Run the matching and DM everyone their giftee",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "matches",
				Description: "Show the full pairing list (moderators only)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remind",
				Description: "Send a deadline reminder to the announcement channel",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferEphemeral(s, i) {
			return
		}

		ctx := context.Background()
		sub := getOptions(i)[0]

		switch sub.Name {
		case "open":
			handleAdminOpen(ctx, s, i, deps)
		case "close":
			handleAdminClose(ctx, s, i, deps)
		case "deadline":
			handleAdminDeadline(ctx, s, i, deps, sub)
		case "match":
			handleAdminMatch(ctx, s, i, deps)
		case "matches":
			handleAdminMatches(ctx, s, i, deps)
		case "remind":
			handleAdminRemind(ctx, s, i, deps)
		}
	}

	return cmd, handler
}

func handleAdminOpen(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if err := deps.Santa.OpenSignups(ctx); err != nil {
		respondFriendlyError(s, i, "santa-admin", err)
		return
	}
	sendEmbed(s, i, createEmbed("🎄 Signups Open", "The gift exchange is now taking signups.", 0x2ecc71))
}

func handleAdminClose(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if err := deps.Santa.CloseSignups(ctx); err != nil {
		respondFriendlyError(s, i, "santa-admin", err)
		return
	}
	sendEmbed(s, i, createEmbed("🔒 Signups Closed", "No new signups will be accepted.", 0x95a5a6))
}

func handleAdminDeadline(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, sub *discordgo.ApplicationCommandInteractionDataOption) {
	raw := ""
	if opt := findOption(sub.Options, "date"); opt != nil {
		raw = opt.StringValue()
	}

	deadline, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondError(s, i, MsgBadDate)
		return
	}

	if err := deps.Santa.SetDeadline(ctx, deadline); err != nil {
		respondFriendlyError(s, i, "santa-admin", err)
		return
	}
	sendEmbed(s, i, createEmbed("📅 Deadline Set",
		fmt.Sprintf("Gifts are due **%s**.", deadline.Format("January 2, 2006")), 0x3498db))
}

func handleAdminMatch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	result, err := deps.Santa.RunMatching(ctx)
	if err != nil {
		respondFriendlyError(s, i, "santa-admin", err)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Paired **%d** participants in **%d** attempt(s).\n", len(result.Matches), result.Attempts))
	if result.Swaps > 0 {
		sb.WriteString(fmt.Sprintf("Swap repairs: %d\n", result.Swaps))
	}
	if result.UsedFallback() {
		sb.WriteString(fmt.Sprintf("⚠️ %d pairing(s) ignored avoid lists - no valid arrangement was found in budget.\n", result.Fallbacks))
	}
	for _, u := range result.Unmatched {
		sb.WriteString(fmt.Sprintf("⚠️ **%s** unmatched: %s\n", u.Participant.Name(), u.Reason))
	}
	sb.WriteString("\nAssignments are being sent by DM.")

	color := 0x2ecc71
	if !result.Success || result.UsedFallback() {
		color = 0xf39c12
	}
	sendEmbed(s, i, createEmbed("🎁 Matching Complete", sb.String(), color))
}

func handleAdminMatches(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	matches, err := deps.Santa.ListMatches(ctx)
	if err != nil {
		respondFriendlyError(s, i, "santa-admin", err)
		return
	}

	participants, err := deps.Santa.Participants(ctx)
	if err != nil {
		respondFriendlyError(s, i, "santa-admin", err)
		return
	}
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name()
	}

	var sb strings.Builder
	for _, m := range matches {
		line := fmt.Sprintf("**%s** → **%s**", displayLabel(names, m.SenderID), displayLabel(names, m.ReceiverID))
		if m.Forced {
			line += " ⚠️ (forced)"
		}
		sb.WriteString(line + "\n")
	}

	sendEmbed(s, i, createEmbed("📜 Current Pairings", sb.String(), 0x9b59b6))
}

func handleAdminRemind(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	settings, err := deps.Santa.Settings(ctx)
	if err != nil {
		respondFriendlyError(s, i, "santa-admin", err)
		return
	}
	if settings.Deadline == nil {
		respondError(s, i, MsgBadDate)
		return
	}

	now := time.Now().UTC()
	daysLeft := int(settings.Deadline.Sub(now).Hours() / 24)
	evt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SantaReminderDue,
		Payload: event.ReminderDuePayloadV1{
			Deadline:  settings.Deadline.Unix(),
			DaysLeft:  daysLeft,
			Timestamp: now.Unix(),
		},
	}
	if err := deps.EventBus.Publish(ctx, evt); err != nil {
		respondFriendlyError(s, i, "santa-admin", err)
		return
	}

	sendEmbed(s, i, createEmbed("🔔 Reminder Sent", "The deadline reminder has been posted.", 0x3498db))
}

func displayLabel(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
