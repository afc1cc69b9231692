package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot
type Bot struct {
	Session      *discordgo.Session
	Client       *APIClient
	AppID        string
	DevChannelID string
	Registry     *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token        string
	AppID        string
	APIURL       string
	APIKey       string
	DevChannelID string
}

// New creates a new Discord bot
func New(cfg Config) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:      s,
		Client:       NewAPIClient(cfg.APIURL, cfg.APIKey),
		AppID:        cfg.AppID,
		DevChannelID: cfg.DevChannelID,
		Registry:     NewCommandRegistry(),
	}, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot connected", "app_id", b.AppID)
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run keeps the gateway connection open until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	slog.Info("Discord bot shutting down")
	return nil
}

// ErrNoDevChannel is returned by SendDevMessage when DISCORD_DEV_CHANNEL_ID is unset
var ErrNoDevChannel = errors.New("no developer channel configured")

// SendDevMessage posts an embed to the configured developer channel
func (b *Bot) SendDevMessage(embed *discordgo.MessageEmbed) error {
	if b.DevChannelID == "" {
		return ErrNoDevChannel
	}
	if _, err := b.Session.ChannelMessageSendEmbed(b.DevChannelID, embed); err != nil {
		return fmt.Errorf("failed to send to channel %s: %w", b.DevChannelID, err)
	}
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Client)
	}
}
