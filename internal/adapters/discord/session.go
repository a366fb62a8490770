package discord

import (
	"log/slog"

	"dinogen-tracker/internal/config"

	"github.com/bwmarrin/discordgo"
)

// Intents requested at identify. Slash commands arrive as interactions, so
// message content is never needed.
const Intents = discordgo.IntentsGuilds

func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	discord, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		slog.Error("Failed to create discord session", "error", err)
		return nil, err
	}

	discord.Identify.Intents = Intents

	return discord, nil
}
