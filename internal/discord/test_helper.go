package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a mock Discord session whose HTTP traffic is
// intercepted and recorded.
type TestContext struct {
	Session *discordgo.Session

	// Captured interaction response edits
	LastEmbed   *discordgo.MessageEmbed
	LastContent string
}

// SetupTestContext creates a Discord session with an intercepted transport.
// Interaction deferrals succeed silently; response edits are recorded on
// the context for assertions.
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{Session: session}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodPatch && req.Body != nil {
				var body discordgo.WebhookEdit
				_ = json.NewDecoder(req.Body).Decode(&body)
				if body.Embeds != nil && len(*body.Embeds) > 0 {
					ctx.LastEmbed = (*body.Embeds)[0]
				}
				if body.Content != nil {
					ctx.LastContent = *body.Content
				}
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}}

	return ctx
}

// NewSubcommandInteraction builds an application command interaction with a
// single subcommand invocation
func NewSubcommandInteraction(command, sub string, user *discordgo.User, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: command,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name:    sub,
						Type:    discordgo.ApplicationCommandOptionSubCommand,
						Options: opts,
					},
				},
			},
			Member: &discordgo.Member{
				User: user,
			},
		},
	}
}

// StringOption builds a string option value for test interactions
func StringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}
