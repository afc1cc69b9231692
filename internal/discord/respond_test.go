package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown rank", "API error: unknown rank: DIAMANT", MsgUnknownRank},
		{"unknown refinement", "API error: unknown refinement: X", MsgUnknownRefinement},
		{"ingredient not found", "API error: ingredient not found: Bave", MsgIngredientMissing},
		{"glyph locked", "API error: glyph is not unlocked: 🌌 Zone", MsgGlyphLocked},
		{"invalid request with detail", "API error: Invalid request: text: This field is required", MsgInvalidInput + "\ntext: This field is required"},
		{"invalid request alone", "Invalid request", MsgInvalidInput},
		{"anything else", "connection refused", "❌ connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.input))
		})
	}
}

func TestOptions(t *testing.T) {
	i := newInteraction("crystal",
		stringOption("rank", "PIERRE"),
		&discordgo.ApplicationCommandInteractionDataOption{
			Name: "refine", Type: discordgo.ApplicationCommandOptionString, Value: "bru", Focused: true,
		},
	)
	opts := optionsOf(i)

	assert.Equal(t, "PIERRE", opts.str("rank"))
	assert.Equal(t, "", opts.str("tiers"))
	require.NotNil(t, opts.focused())
	assert.Equal(t, "refine", opts.focused().Name)

	assert.Nil(t, optionsOf(newInteraction("crystal")).focused())
}

func TestNewEmbed_Footer(t *testing.T) {
	assert.Equal(t, FooterCharacterForge, newEmbed("t", "d", 0, "").Footer.Text)
	assert.Equal(t, FooterSystemUpdate, newEmbed("t", "d", 0, FooterSystemUpdate).Footer.Text)
}

func TestDescribeCount(t *testing.T) {
	assert.Equal(t, "1 use", describeCount(1, "use"))
	assert.Equal(t, "5 uses", describeCount(5, "use"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Sel", "Miel"}, splitList(" Sel, ,Miel ,"))
	assert.Equal(t, []string{}, splitList(""))
}
