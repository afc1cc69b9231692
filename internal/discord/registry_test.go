package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRegistry_DefaultCommands(t *testing.T) {
	registry := NewCommandRegistry()
	registry.RegisterAll(DefaultCommands())

	var names []string
	for _, def := range registry.Definitions() {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{"ping", "glyphs", "potion", "crystal"}, names)
	assert.NotNil(t, registry.commands["crystal"].autocomplete)
}

func TestCommandRegistry_Dispatch(t *testing.T) {
	var calls []string
	registry := NewCommandRegistry()
	registry.Register(&discordgo.ApplicationCommand{Name: "crystal"}, func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) {
		calls = append(calls, "command")
	})
	registry.RegisterAutocomplete("crystal", func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) {
		calls = append(calls, "autocomplete")
	})
	registry.RegisterAutocomplete("missing", func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) {})

	before := commandCounter.Load()
	registry.Handle(nil, newInteraction("crystal"), nil)

	auto := newInteraction("crystal")
	auto.Type = discordgo.InteractionApplicationCommandAutocomplete
	registry.Handle(nil, auto, nil)

	registry.Handle(nil, newInteraction("unknown"), nil)

	assert.Equal(t, []string{"command", "autocomplete"}, calls)
	assert.Equal(t, before+1, commandCounter.Load(), "only slash commands are counted")
}

func TestCommandRegistry_ReplaceKeepsOrder(t *testing.T) {
	registry := NewCommandRegistry()
	noop := func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) {}
	registry.Register(&discordgo.ApplicationCommand{Name: "a"}, noop)
	registry.Register(&discordgo.ApplicationCommand{Name: "b"}, noop)
	registry.Register(&discordgo.ApplicationCommand{Name: "a", Description: "v2"}, noop)

	defs := registry.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "a", defs[0].Name)
	assert.Equal(t, "v2", defs[0].Description)
}

func TestCommandRegistry_RecoversPanics(t *testing.T) {
	registry := NewCommandRegistry()
	registry.Register(&discordgo.ApplicationCommand{Name: "boom"}, func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) {
		panic("handler bug")
	})

	assert.NotPanics(t, func() { registry.Handle(nil, newInteraction("boom"), nil) })
}

func TestCommandRegistry_IgnoresComponents(t *testing.T) {
	registry := NewCommandRegistry()
	called := false
	registry.Register(&discordgo.ApplicationCommand{Name: "ping"}, func(*discordgo.Session, *discordgo.InteractionCreate, *APIClient) {
		called = true
	})

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionMessageComponent,
		Data: discordgo.MessageComponentInteractionData{CustomID: "button"},
	}}

	assert.NotPanics(t, func() { registry.Handle(nil, i, nil) })
	assert.False(t, called)
}

func TestRecordCommand(t *testing.T) {
	before := commandCounter.Load()

	RecordCommand()
	RecordCommand()

	assert.Equal(t, before+2, commandCounter.Load())
	assert.NotZero(t, lastCommandNano.Load())
}
