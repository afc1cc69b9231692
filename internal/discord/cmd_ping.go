package discord

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// PingCommand reports gateway latency and the API round trip
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot and the CharacterForge API are alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		started := time.Now()
		err := client.Ping()
		if err != nil {
			slog.Warn("API ping failed", "error", err)
		}

		content := pingReport(s.HeartbeatLatency(), time.Since(started), err)
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: content},
		}); err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}

func pingReport(gateway, api time.Duration, apiErr error) string {
	apiPart := fmt.Sprintf("API %dms", api.Milliseconds())
	if apiErr != nil {
		apiPart = "API unreachable"
	}
	return fmt.Sprintf("Pong! 🏓 gateway %dms · %s", gateway.Milliseconds(), apiPart)
}
