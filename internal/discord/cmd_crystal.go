package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CharacterForge_Go/internal/crystal"
	"github.com/osse101/CharacterForge_Go/internal/utils"
)

const (
	crystalColor      = 0x3498db
	maxAutocompletion = 25
)

// CrystalCommand returns the crystal evaluation command definition and handler
func CrystalCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "crystal",
		Description: "Evaluate the budget, difficulty and fragility of a crystal",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "rank",
				Description:  "Crystal rank (default rank if omitted)",
				Required:     false,
				Autocomplete: true,
			},
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "refine",
				Description:  "Refinement (default refinement if omitted)",
				Required:     false,
				Autocomplete: true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := optionsOf(i)
		replyWithEmbed(s, i, "💎 Crystal", crystalColor, func() (string, error) {
			report, err := client.EvaluateCrystal(opts.str("rank"), opts.str("refine"), nil)
			if err != nil {
				return "", err
			}
			return formatCrystalReport(report), nil
		})
	}

	return cmd, handler
}

func formatCrystalReport(r *crystal.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** · **%s**\n", r.RankLabel, r.RefineLabel)
	fmt.Fprintf(&sb, "Base tier: %d\n", r.BaseTier)
	fmt.Fprintf(&sb, "Points: %d / %d\n", r.PointsSpent, r.Budget)
	fmt.Fprintf(&sb, "Difficulty: %d\n", r.Difficulty)
	fmt.Fprintf(&sb, "Fragility: %s (%s)\n", r.Fragility.Label, describeCount(r.Fragility.Uses, "use"))
	if r.Export != "" {
		fmt.Fprintf(&sb, "`%s`", r.Export)
	}
	return sb.String()
}

// HandleCrystalAutocomplete offers the rank and refinement keys from the live config
func HandleCrystalAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	focused := optionsOf(i).focused()
	if focused == nil {
		return
	}

	cfg, err := client.GetCrystalConfig()
	if err != nil {
		slog.Warn("Failed to fetch crystal config for autocomplete", "error", err)
		respondAutocomplete(s, i, nil)
		return
	}

	respondAutocomplete(s, i, crystalChoices(cfg, focused.Name, focused.StringValue()))
}

// crystalChoices lists the keys of the focused option whose key or label contains typed
func crystalChoices(cfg *crystal.Config, option, typed string) []*discordgo.ApplicationCommandOptionChoice {
	needle := utils.FoldFrench(typed)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxAutocompletion)
	add := func(key, label string) {
		if len(choices) >= maxAutocompletion {
			return
		}
		if needle != "" && !strings.Contains(utils.FoldFrench(key+" "+label), needle) {
			return
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: label, Value: key})
	}

	switch option {
	case "rank":
		for _, r := range cfg.Ranks {
			add(r.Key, r.Label)
		}
	case "refine":
		for _, r := range cfg.Refinements {
			add(r.Key, r.Label)
		}
	}
	return choices
}

func respondAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	if choices == nil {
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
