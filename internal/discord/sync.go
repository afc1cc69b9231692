package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// SyncCommands pushes the registry to Discord with a bulk overwrite, skipping
// the call when Discord already holds identical definitions. force always overwrites.
func (b *Bot) SyncCommands(registry *CommandRegistry, force bool) error {
	desired := registry.Definitions()

	if !force {
		existing, err := b.Session.ApplicationCommands(b.AppID, "")
		if err != nil {
			return fmt.Errorf("failed to fetch existing commands: %w", err)
		}
		if commandsEqual(existing, desired) {
			slog.Info("Discord commands unchanged", "count", len(existing))
			return nil
		}
		slog.Info("Discord commands changed", "existing", len(existing), "desired", len(desired))
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("failed to overwrite commands: %w", err)
	}
	slog.Info("Discord commands registered", "count", len(desired), "forced", force)
	return nil
}

// commandShape is the part of a command definition Discord echoes back.
// IDs, versions and localisations are server-assigned and left out.
type commandShape struct {
	Name        string        `json:"n"`
	Description string        `json:"d"`
	Permissions *int64        `json:"p,omitempty"`
	Options     []optionShape `json:"o,omitempty"`
}

type optionShape struct {
	Type         discordgo.ApplicationCommandOptionType `json:"t"`
	Name         string                                 `json:"n"`
	Description  string                                 `json:"d"`
	Required     bool                                   `json:"r,omitempty"`
	Autocomplete bool                                   `json:"a,omitempty"`
	MaxLength    int                                    `json:"ml,omitempty"`
	Choices      [][2]interface{}                       `json:"c,omitempty"`
	Options      []optionShape                          `json:"o,omitempty"`
}

func shapeOptions(opts []*discordgo.ApplicationCommandOption) []optionShape {
	if len(opts) == 0 {
		return nil
	}
	out := make([]optionShape, len(opts))
	for idx, o := range opts {
		shape := optionShape{
			Type:         o.Type,
			Name:         o.Name,
			Description:  o.Description,
			Required:     o.Required,
			Autocomplete: o.Autocomplete,
			MaxLength:    o.MaxLength,
			Options:      shapeOptions(o.Options),
		}
		for _, c := range o.Choices {
			shape.Choices = append(shape.Choices, [2]interface{}{c.Name, c.Value})
		}
		out[idx] = shape
	}
	return out
}

// fingerprint serialises the comparable shape of a command
func fingerprint(cmd *discordgo.ApplicationCommand) string {
	raw, err := json.Marshal(commandShape{
		Name:        cmd.Name,
		Description: cmd.Description,
		Permissions: cmd.DefaultMemberPermissions,
		Options:     shapeOptions(cmd.Options),
	})
	if err != nil {
		// Unreachable with the fixed shape types; force an update
		return cmd.Name + "\x00unencodable"
	}
	return string(raw)
}

// commandsEqual reports whether both sets hold the same commands, in any order.
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}
	have := make(map[string]string, len(existing))
	for _, cmd := range existing {
		have[cmd.Name] = fingerprint(cmd)
	}
	for _, cmd := range desired {
		if have[cmd.Name] != fingerprint(cmd) {
			return false
		}
	}
	return true
}
