package commands

import (
	"context"

	"dinogen-tracker/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type CommandSession interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// PlayerLookup is the query surface the commands need.
type PlayerLookup interface {
	FetchPlayer(ctx context.Context, username string) (*domain.PlayerProfile, error)
	FetchLeaderboard(ctx context.Context, category domain.Category) (*domain.LeaderboardSnapshot, error)
	ResolveEntry(ctx context.Context, snap *domain.LeaderboardSnapshot, rank int) (*domain.PlayerProfile, error)
	FetchConnectedPlayerCount(ctx context.Context) (int, error)
	IsPlayerBanned(ctx context.Context, username string) (bool, error)
}
