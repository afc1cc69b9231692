package discord

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// AutocompleteHandler answers an autocomplete interaction for one command
type AutocompleteHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandFactory builds a command definition and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, CommandHandler)

type registeredCommand struct {
	definition   *discordgo.ApplicationCommand
	handle       CommandHandler
	autocomplete AutocompleteHandler
}

// CommandRegistry routes interactions to commands. Definitions keep their
// registration order so the payload sent to Discord is stable.
type CommandRegistry struct {
	order    []string
	commands map[string]*registeredCommand
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]*registeredCommand)}
}

// DefaultCommands is every slash command the bot serves
func DefaultCommands() []CommandFactory {
	return []CommandFactory{
		PingCommand,
		GlyphsCommand,
		PotionCommand,
		CrystalCommand,
	}
}

// RegisterAll registers each factory's command. Autocomplete handlers for
// the built-in commands are attached as well.
func (r *CommandRegistry) RegisterAll(factories []CommandFactory) {
	for _, factory := range factories {
		r.Register(factory())
	}
	if _, ok := r.commands["crystal"]; ok {
		r.RegisterAutocomplete("crystal", HandleCrystalAutocomplete)
	}
}

// Register adds or replaces a command.
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	if existing, ok := r.commands[cmd.Name]; ok {
		existing.definition = cmd
		existing.handle = handler
		return
	}
	r.order = append(r.order, cmd.Name)
	r.commands[cmd.Name] = &registeredCommand{definition: cmd, handle: handler}
}

// RegisterAutocomplete attaches an autocomplete handler to a registered command.
func (r *CommandRegistry) RegisterAutocomplete(name string, handler AutocompleteHandler) {
	if c, ok := r.commands[name]; ok {
		c.autocomplete = handler
		return
	}
	slog.Warn("Autocomplete registered for unknown command", "command", name)
}

// Definitions returns the command definitions in registration order.
func (r *CommandRegistry) Definitions() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.commands[name].definition)
	}
	return defs
}

// Handle dispatches an interaction. Component and modal interactions are
// ignored, and a panicking handler is logged instead of killing the gateway loop.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	var (
		c  *registeredCommand
		ok bool
	)
	switch i.Type {
	case discordgo.InteractionApplicationCommand, discordgo.InteractionApplicationCommandAutocomplete:
		c, ok = r.commands[i.ApplicationCommandData().Name]
	}
	if !ok {
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Command handler panicked",
				"command", c.definition.Name,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()))
		}
	}()

	if i.Type == discordgo.InteractionApplicationCommandAutocomplete {
		if c.autocomplete != nil {
			c.autocomplete(s, i, client)
		}
		return
	}
	RecordCommand()
	c.handle(s, i, client)
}
