package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rootsofthewild/rootsbot/internal/event"
	"github.com/rootsofthewild/rootsbot/internal/logger"
	"github.com/rootsofthewild/rootsbot/internal/metrics"
	"github.com/rootsofthewild/rootsbot/internal/santa"
	"github.com/rootsofthewild/rootsbot/internal/worker"
)

// Notifier bridges bus events to Discord: assignment DMs go through the
// worker pool, announcements go to the configured channel.
type Notifier struct {
	session   *discordgo.Session
	pool      *worker.Pool
	santa     santa.Service
	channelID string
}

// NewNotifier creates a new notifier. channelID may be empty, in which
// case channel announcements are skipped.
func NewNotifier(session *discordgo.Session, pool *worker.Pool, santaSvc santa.Service, channelID string) *Notifier {
	return &Notifier{
		session:   session,
		pool:      pool,
		santa:     santaSvc,
		channelID: channelID,
	}
}

// Subscribe registers the notifier's event handlers on the bus
func (n *Notifier) Subscribe(bus event.Bus) {
	bus.Subscribe(event.SantaMatchesCompleted, n.handleMatchesCompleted)
	bus.Subscribe(event.SantaReminderDue, n.handleReminderDue)
	bus.Subscribe(event.WeatherUpdated, n.handleWeatherUpdated)
	bus.Subscribe(event.BlightProgressed, n.handleBlightProgressed)
}

func (n *Notifier) handleMatchesCompleted(ctx context.Context, e event.Event) error {
	payload, ok := e.Payload.(event.MatchesCompletedPayloadV1)
	if !ok {
		return nil
	}

	for _, m := range payload.Matches {
		n.pool.Enqueue(&assignmentDM{
			session:  n.session,
			santa:    n.santa,
			senderID: m.SenderID,
		})
	}
	logger.FromContext(ctx).Info(LogMsgAssignmentDMsQueued, "count", len(payload.Matches))

	n.announce(ctx, createEmbed("🎁 The Matching Is Done!",
		fmt.Sprintf("**%d** gifters have been paired. Check your DMs for your giftee!", len(payload.Matches)), 0x2ecc71))
	return nil
}

func (n *Notifier) handleReminderDue(ctx context.Context, e event.Event) error {
	payload, ok := e.Payload.(event.ReminderDuePayloadV1)
	if !ok {
		return nil
	}

	var description string
	switch {
	case payload.DaysLeft <= 0:
		description = "🎄 Gifts are due **today**! Get them in!"
	case payload.DaysLeft == 1:
		description = "🎄 Only **1 day** left to send your gift!"
	default:
		description = fmt.Sprintf("🎄 **%d days** left to send your gift!", payload.DaysLeft)
	}

	n.announce(ctx, createEmbed("🔔 Gift Deadline Reminder", description, 0xe67e22))
	return nil
}

func (n *Notifier) handleWeatherUpdated(ctx context.Context, e event.Event) error {
	payload, ok := e.Payload.(event.WeatherUpdatedPayloadV1)
	if !ok {
		return nil
	}
	n.announce(ctx, weatherEmbed(&payload.Weather))
	return nil
}

func (n *Notifier) handleBlightProgressed(ctx context.Context, e event.Event) error {
	payload, ok := e.Payload.(event.BlightProgressedPayloadV1)
	if !ok {
		return nil
	}
	if payload.Worsened == 0 && payload.Recovered == 0 && payload.Died == 0 {
		return nil
	}

	description := fmt.Sprintf("The blight shifts: **%d** worsened, **%d** recovered, **%d** lost.",
		payload.Worsened, payload.Recovered, payload.Died)
	n.announce(ctx, createEmbed("🍂 Blight Report", description, 0x8e44ad))
	return nil
}

func (n *Notifier) announce(ctx context.Context, embed *discordgo.MessageEmbed) {
	if n.channelID == "" {
		return
	}
	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		logger.FromContext(ctx).Error(LogMsgAnnounceFailed, "error", err)
	}
}

// assignmentDM delivers one sender's giftee by direct message
type assignmentDM struct {
	session  *discordgo.Session
	santa    santa.Service
	senderID string
}

// Process looks up the assignment fresh from the store and DMs it
func (j *assignmentDM) Process(ctx context.Context) error {
	giftee, err := j.santa.Assignment(ctx, j.senderID)
	if err != nil {
		metrics.DMFailuresTotal.Inc()
		return fmt.Errorf("failed to load assignment for %s: %w", j.senderID, err)
	}

	channel, err := j.session.UserChannelCreate(j.senderID)
	if err != nil {
		metrics.DMFailuresTotal.Inc()
		return fmt.Errorf("failed to open DM channel for %s: %w", j.senderID, err)
	}

	embed := createEmbed("🎁 Your Secret Santa Assignment",
		fmt.Sprintf("You're gifting: **%s**\n\nKeep it secret, keep it safe! 🤫", giftee.Name()), 0x2ecc71)
	if _, err := j.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		metrics.DMFailuresTotal.Inc()
		return fmt.Errorf("failed to DM %s: %w", j.senderID, err)
	}

	metrics.DMsSentTotal.Inc()
	return nil
}
