package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
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

// TestContext bundles a mock CharacterForge API, a client pointed at it and a
// Discord session whose HTTP traffic is captured instead of sent
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu            sync.Mutex
	CapturedEdits []*discordgo.WebhookEdit
	Responses     []*discordgo.InteractionResponse
}

// SetupTestContext sets up the mock API and the intercepted Discord session
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: NewAPIClient(server.URL, "test-api-key"),
		Session:   session,
	}

	// Interaction callbacks are POSTs, response edits are PATCHes
	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Body != nil {
				raw, _ := io.ReadAll(req.Body)
				ctx.capture(req.Method, raw)
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(server.Close)
	return ctx
}

func (c *TestContext) capture(method string, raw []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch method {
	case http.MethodPatch:
		var edit discordgo.WebhookEdit
		if json.Unmarshal(raw, &edit) == nil {
			c.CapturedEdits = append(c.CapturedEdits, &edit)
		}
	case http.MethodPost:
		var resp discordgo.InteractionResponse
		if json.Unmarshal(raw, &resp) == nil {
			c.Responses = append(c.Responses, &resp)
		}
	}
}

// LastEmbed returns the first embed of the most recent response edit, or nil
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx := len(c.CapturedEdits) - 1; idx >= 0; idx-- {
		if e := c.CapturedEdits[idx].Embeds; e != nil && len(*e) > 0 {
			return (*e)[0]
		}
	}
	return nil
}

// LastContent returns the content of the most recent response edit, or ""
func (c *TestContext) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for idx := len(c.CapturedEdits) - 1; idx >= 0; idx-- {
		if c.CapturedEdits[idx].Content != nil {
			return *c.CapturedEdits[idx].Content
		}
	}
	return ""
}

// newInteraction builds a slash command interaction with the given options
func newInteraction(commandName string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    commandName,
				Options: options,
			},
			User: &discordgo.User{ID: "test-user-123", Username: "TestUser"},
		},
	}
}

// stringOption builds a string option as Discord sends it
func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}
