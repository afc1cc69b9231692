package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const potionColor = 0x2ecc71

// PotionCommand returns the potion compute command definition and handler
func PotionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "potion",
		Description: "Compute the difficulty and recipe of an ingredient combination",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "binder",
				Description: "Binder ingredient",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "catalyst",
				Description: "Catalyst ingredient",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reactants",
				Description: "Reactant ingredients, comma separated",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := optionsOf(i)
		replyWithEmbed(s, i, "🧪 Potion", potionColor, func() (string, error) {
			result, err := client.ComputePotion(opts.str("binder"), opts.str("catalyst"), splitList(opts.str("reactants")))
			if err != nil {
				return "", err
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "**Difficulty:** %d\n", result.TotalDifficulty)
			if result.Breakdown != "" {
				fmt.Fprintf(&sb, "`%s`\n", result.Breakdown)
			}
			if result.Recipe != nil {
				fmt.Fprintf(&sb, "\n%s **%s**\n%s", result.Recipe.Emoji, result.Recipe.Name, result.Recipe.Desc)
			} else {
				sb.WriteString("\nNo known recipe matches this combination.")
			}
			return sb.String(), nil
		})
	}

	return cmd, handler
}

// splitList splits a comma separated option into trimmed, non-empty names
func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
