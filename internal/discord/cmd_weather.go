package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

var seasonEmoji = map[domain.Season]string{
	domain.SeasonSpring: "🌱",
	domain.SeasonSummer: "☀️",
	domain.SeasonAutumn: "🍂",
	domain.SeasonWinter: "❄️",
}

// WeatherCommand returns the daily weather command definition and handler
func WeatherCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "weather",
		Description: "Today's weather in the wilds",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
		if !deferResponse(s, i) {
			return
		}

		w, err := deps.Weather.Current(context.Background())
		if err != nil {
			respondFriendlyError(s, i, "weather", err)
			return
		}

		sendEmbed(s, i, weatherEmbed(w))
	}

	return cmd, handler
}

func weatherEmbed(w *domain.Weather) *discordgo.MessageEmbed {
	emoji := seasonEmoji[w.Season]
	title := fmt.Sprintf("%s Today's Weather", emoji)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s**, %d°C (%s)\n", capitalize(w.Condition), w.Temperature, w.Season))
	if w.Special != "" {
		sb.WriteString(fmt.Sprintf("\n✨ **%s**\n", w.Special))
	}

	return createEmbed(title, sb.String(), 0x3498db)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
