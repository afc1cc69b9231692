package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

// Embed footers
const (
	FooterCharacterForge = "CharacterForge"
	FooterSystemUpdate   = "System Update"
)

// friendlyErrors maps API error fragments to player-facing text, first match wins
var friendlyErrors = []struct {
	fragment string
	message  string
}{
	{domain.ErrMsgUnknownGlyph, MsgUnknownGlyph},
	{domain.ErrMsgGlyphLocked, MsgGlyphLocked},
	{domain.ErrMsgIngredientNotFound, MsgIngredientMissing},
	{domain.ErrMsgUnknownRank, MsgUnknownRank},
	{domain.ErrMsgUnknownRefinement, MsgUnknownRefinement},
	{domain.ErrMsgCatalogUnavailable, MsgCatalogUnavailable},
}

const invalidRequestFragment = "Invalid request"

// formatFriendlyError turns an API error string into a chat message.
// Validation failures keep the offending field after the first ": ".
func formatFriendlyError(msg string) string {
	msg = strings.TrimPrefix(msg, apiErrorPrefix)

	for _, fe := range friendlyErrors {
		if strings.Contains(msg, fe.fragment) {
			return fe.message
		}
	}
	if strings.Contains(msg, invalidRequestFragment) {
		if _, detail, ok := strings.Cut(msg, ": "); ok {
			return MsgInvalidInput + "\n" + detail
		}
		return MsgInvalidInput
	}
	return "❌ " + msg
}

// responder edits the deferred reply of one interaction.
type responder struct {
	s *discordgo.Session
	i *discordgo.InteractionCreate
}

// deferReply acknowledges the interaction so the handler may take longer than
// Discord's three second window. A false return means the handler must stop.
func deferReply(s *discordgo.Session, i *discordgo.InteractionCreate) (responder, bool) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		slog.Error("Failed to defer interaction", "error", err)
		return responder{}, false
	}
	return responder{s: s, i: i}, true
}

func (r responder) edit(edit *discordgo.WebhookEdit) {
	if _, err := r.s.InteractionResponseEdit(r.i.Interaction, edit); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

func (r responder) text(message string) {
	r.edit(&discordgo.WebhookEdit{Content: &message})
}

func (r responder) embed(e *discordgo.MessageEmbed) {
	r.edit(&discordgo.WebhookEdit{Embeds: &[]*discordgo.MessageEmbed{e}})
}

// fail logs err against the command and shows its friendly form.
func (r responder) fail(command string, err error) {
	slog.Error("Discord command failed", "command", command, "error", err)
	r.text(formatFriendlyError(err.Error()))
}

// replyWithEmbed defers, runs render and sends its output as an embed
// titled title, or the friendly error when render fails.
func replyWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title string, color int, render func() (string, error)) {
	r, ok := deferReply(s, i)
	if !ok {
		return
	}
	body, err := render()
	if err != nil {
		r.fail(i.ApplicationCommandData().Name, err)
		return
	}
	r.embed(newEmbed(title, body, color, ""))
}

// newEmbed builds an embed, defaulting the footer to FooterCharacterForge
func newEmbed(title, description string, color int, footer string) *discordgo.MessageEmbed {
	if footer == "" {
		footer = FooterCharacterForge
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
	}
}

// options indexes the interaction's options by name
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsOf(i *discordgo.InteractionCreate) options {
	raw := i.ApplicationCommandData().Options
	m := make(options, len(raw))
	for _, opt := range raw {
		m[opt.Name] = opt
	}
	return m
}

// str returns the named string option, or "" when it was omitted
func (o options) str(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// focused returns the option the user is typing in during autocomplete
func (o options) focused() *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range o {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

func describeCount(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
