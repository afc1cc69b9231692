package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CharacterForge_Go/internal/domain"
)

const (
	glyphColor      = 0x9b59b6
	maxListedGlyphs = 20
)

// GlyphsCommand returns the glyph analysis command definition and handler
func GlyphsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "glyphs",
		Description: "Detect glyphs in a spell description and total their cost",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Glyph names or emoji, separated by spaces or commas",
				Required:    true,
				MaxLength:   2000,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		r, ok := deferReply(s, i)
		if !ok {
			return
		}

		detection, err := client.AnalyzeGlyphs(optionsOf(i).str("text"))
		if err != nil {
			r.fail(cmd.Name, err)
			return
		}
		r.embed(glyphEmbed(detection))
	}

	return cmd, handler
}

// glyphEmbed renders a detection as an embed with one field per section
func glyphEmbed(d *domain.GlyphDetection) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("**Mana:** %d\n**Difficulty:** %d", d.Totals.Mana, d.Totals.Diff)
	if len(d.Detected) == 0 {
		desc = "No glyph recognised.\n" + desc
	}
	embed := newEmbed("✨ Glyph Analysis", desc, glyphColor, "")

	if len(d.Detected) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Detected",
			Value: joinMatches(d.Detected),
		})
	}
	if len(d.Unknown) > 0 {
		lines := make([]string, 0, len(d.Unknown))
		for _, tok := range d.Unknown {
			line := "`" + tok + "`"
			if alts := d.Suggestions[tok]; len(alts) > 0 {
				line += " → " + strings.Join(alts, ", ")
			}
			lines = append(lines, line)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Unknown",
			Value: strings.Join(lines, "\n"),
		})
	}
	return embed
}

func joinMatches(matches []domain.GlyphMatch) string {
	names := make([]string, 0, len(matches))
	for idx, m := range matches {
		if idx == maxListedGlyphs {
			names = append(names, fmt.Sprintf("… and %d more", len(matches)-maxListedGlyphs))
			break
		}
		names = append(names, m.Name)
	}
	return strings.Join(names, "\n")
}
