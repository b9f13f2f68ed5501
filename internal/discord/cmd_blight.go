package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

var stageEmoji = map[domain.BlightStage]string{
	domain.BlightHealthy:   "🌿",
	domain.BlightStage1:    "🍂",
	domain.BlightStage2:    "🥀",
	domain.BlightStage3:    "🦠",
	domain.BlightRecovered: "💚",
	domain.BlightDead:      "💀",
}

// BlightCommand returns the blight role-play command definition and handler
func BlightCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	nameOption := func(desc string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "character",
			Description: desc,
			Required:    true,
		}
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "blight",
		Description: "The creeping blight afflicting the wilds",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "register",
				Description: "Register a character of yours",
				Options:     []*discordgo.ApplicationCommandOption{nameOption("Character name")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "infect",
				Description: "Let the blight take hold of your character",
				Options:     []*discordgo.ApplicationCommandOption{nameOption("Character to infect")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "heal",
				Description: "Attempt a treatment roll on your character",
				Options:     []*discordgo.ApplicationCommandOption{nameOption("Character to treat")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Check on your characters",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i) {
			return
		}

		ctx := context.Background()
		user := getInteractionUser(i)
		sub := getOptions(i)[0]

		name := ""
		if opt := findOption(sub.Options, "character"); opt != nil {
			name = strings.TrimSpace(opt.StringValue())
		}

		switch sub.Name {
		case "register":
			handleBlightRegister(ctx, s, i, deps, user, name)
		case "infect":
			handleBlightInfect(ctx, s, i, deps, user, name)
		case "heal":
			handleBlightHeal(ctx, s, i, deps, user, name)
		case "status":
			handleBlightStatus(ctx, s, i, deps, user)
		}
	}

	return cmd, handler
}

// characterID derives a stable per-owner character key
func characterID(ownerID, name string) string {
	return ownerID + ":" + strings.ToLower(strings.TrimSpace(name))
}

func handleBlightRegister(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, user *discordgo.User, name string) {
	if err := deps.Blight.Register(ctx, characterID(user.ID, name), user.ID, name); err != nil {
		respondFriendlyError(s, i, "blight", err)
		return
	}
	sendEmbed(s, i, createEmbed("🌿 Character Registered",
		fmt.Sprintf("**%s** walks the wilds, healthy... for now.", name), 0x2ecc71))
}

func handleBlightInfect(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, user *discordgo.User, name string) {
	if err := deps.Blight.Infect(ctx, characterID(user.ID, name)); err != nil {
		respondFriendlyError(s, i, "blight", err)
		return
	}
	sendEmbed(s, i, createEmbed("🍂 The Blight Takes Hold",
		fmt.Sprintf("**%s** has been infected. Seek treatment with `/blight heal` before it spreads.", name), 0xe67e22))
}

func handleBlightHeal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, user *discordgo.User, name string) {
	outcome, err := deps.Blight.Heal(ctx, characterID(user.ID, name))
	if err != nil {
		respondFriendlyError(s, i, "blight", err)
		return
	}

	if !outcome.Succeeded {
		sendEmbed(s, i, createEmbed("🥀 Treatment Failed",
			fmt.Sprintf("The remedy didn't take (rolled %d). **%s** remains at %s.", outcome.Roll, name, outcome.Stage), 0xe74c3c))
		return
	}

	description := fmt.Sprintf("The remedy worked (rolled %d)! **%s** improves to **%s**.", outcome.Roll, name, outcome.Stage)
	if outcome.Stage == domain.BlightRecovered {
		description = fmt.Sprintf("The remedy worked (rolled %d)! **%s** has fully recovered. 💚", outcome.Roll, name)
	}
	sendEmbed(s, i, createEmbed("💚 Treatment Successful", description, 0x2ecc71))
}

func handleBlightStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, user *discordgo.User) {
	records, err := deps.Blight.Status(ctx, user.ID)
	if err != nil {
		respondFriendlyError(s, i, "blight", err)
		return
	}

	if len(records) == 0 {
		sendEmbed(s, i, createEmbed("🌿 Blight Status",
			"You have no registered characters. Use `/blight register` to add one.", 0x95a5a6))
		return
	}

	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("%s **%s** - %s\n", stageEmoji[r.Stage], r.Name, r.Stage))
	}
	sendEmbed(s, i, createEmbed("🌿 Blight Status", sb.String(), 0x3498db))
}
