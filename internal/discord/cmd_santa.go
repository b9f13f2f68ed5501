package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// SantaCommand returns the gift exchange command definition and handler
func SantaCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "santa",
		Description: "Secret Santa gift exchange",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "join",
				Description: "Sign up for the gift exchange",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "leave",
				Description: "Withdraw from the gift exchange",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "avoid",
				Description: "Set the people you'd rather not be paired with",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "names",
						Description: "Comma-separated names or handles (blank to clear)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Check your signup and, after matching, your giftee",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		// Everything here is secret-sensitive, so replies are ephemeral
		if !deferEphemeral(s, i) {
			return
		}

		ctx := context.Background()
		user := getInteractionUser(i)
		sub := getOptions(i)[0]

		switch sub.Name {
		case "join":
			handleSantaJoin(ctx, s, i, deps, user)
		case "leave":
			handleSantaLeave(ctx, s, i, deps, user)
		case "avoid":
			handleSantaAvoid(ctx, s, i, deps, user, sub)
		case "status":
			handleSantaStatus(ctx, s, i, deps, user)
		}
	}

	return cmd, handler
}

func handleSantaJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, user *discordgo.User) {
	p := domain.Participant{
		ID:          user.ID,
		DisplayName: getDisplayName(i, user),
		Handle:      user.Username,
		Eligible:    true,
	}
	if err := deps.Santa.Join(ctx, p); err != nil {
		respondFriendlyError(s, i, "santa", err)
		return
	}

	description := fmt.Sprintf("Welcome to the exchange, **%s**!\n\nUse `/santa avoid` if there's anyone you'd rather not draw, and `/santa status` to check on things.", p.Name())
	sendEmbed(s, i, createEmbed("🎄 You're In!", description, 0x2ecc71))
}

func handleSantaLeave(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, user *discordgo.User) {
	if err := deps.Santa.Leave(ctx, user.ID); err != nil {
		respondFriendlyError(s, i, "santa", err)
		return
	}
	sendEmbed(s, i, createEmbed("👋 Signed Off", "You've been removed from the exchange. Join again any time signups are open.", 0x95a5a6))
}

func handleSantaAvoid(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, user *discordgo.User, sub *discordgo.ApplicationCommandInteractionDataOption) {
	var raw string
	if opt := findOption(sub.Options, "names"); opt != nil {
		raw = opt.StringValue()
	}
	avoid := parseNameList(raw)

	if err := deps.Santa.SetAvoidList(ctx, user.ID, avoid); err != nil {
		respondFriendlyError(s, i, "santa", err)
		return
	}

	var description string
	if len(avoid) == 0 {
		description = "Your avoid list is now empty."
	} else {
		description = fmt.Sprintf("You won't be paired with: **%s**\n\n(Entries under 3 characters only block exact name matches.)", strings.Join(avoid, "**, **"))
	}
	sendEmbed(s, i, createEmbed("🙈 Avoid List Updated", description, 0x3498db))
}

func handleSantaStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, user *discordgo.User) {
	p, settings, err := deps.Santa.Status(ctx, user.ID)
	if err != nil {
		respondFriendlyError(s, i, "santa", err)
		return
	}

	var sb strings.Builder
	if settings.SignupsOpen {
		sb.WriteString("Signups: **open**\n")
	} else {
		sb.WriteString("Signups: **closed**\n")
	}
	if settings.Deadline != nil {
		sb.WriteString(fmt.Sprintf("Gift deadline: **%s**\n", settings.Deadline.Format("January 2, 2006")))
	}

	if p == nil {
		sb.WriteString("\nYou're not signed up. Use `/santa join` to get on the list!")
		sendEmbed(s, i, createEmbed("🎄 Exchange Status", sb.String(), 0x3498db))
		return
	}

	sb.WriteString(fmt.Sprintf("\nSigned up as **%s** on %s\n", p.Name(), p.JoinedAt.Format("January 2")))
	if len(p.AvoidList) > 0 {
		sb.WriteString(fmt.Sprintf("Avoiding: %s\n", strings.Join(p.AvoidList, ", ")))
	}

	if settings.MatchedAt != nil {
		giftee, err := deps.Santa.Assignment(ctx, user.ID)
		switch {
		case errors.Is(err, domain.ErrNoMatchesFound):
			sb.WriteString("\nYou weren't assigned a giftee this round.")
		case err != nil:
			respondFriendlyError(s, i, "santa", err)
			return
		default:
			sb.WriteString(fmt.Sprintf("\n🎁 You're gifting: **%s**\nKeep it secret!", giftee.Name()))
		}
	}

	sendEmbed(s, i, createEmbed("🎄 Exchange Status", sb.String(), 0x3498db))
}
