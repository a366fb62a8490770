package commands

import (
	"log/slog"

	"dinogen-tracker/internal/adapters/discord/formatting"
	"dinogen-tracker/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

const (
	CmdPlayer      = "player"
	CmdBanned      = "banned"
	CmdLeaderboard = "leaderboard"
	CmdOnline      = "online"
	CmdTopHistory  = "top-history"
)

var minRank = float64(1)

func GetApplicationCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CmdPlayer,
			Description: "Show a Dinogen Online player's profile",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("username", "Dinogen Online username", true),
			},
		},
		{
			Name:        CmdBanned,
			Description: "Check whether a player is banned from the account server",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("username", "Dinogen Online username", true),
			},
		},
		{
			Name:        CmdLeaderboard,
			Description: "Show the top 10 of a leaderboard, or the profile at one rank",
			Options: []*discordgo.ApplicationCommandOption{
				categoryOption(),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "rank",
					Description: "Show the full profile of the player at this rank (1-10)",
					MinValue:    &minRank,
					MaxValue:    domain.TopSize,
				},
			},
		},
		{
			Name:        CmdOnline,
			Description: "Count players connected to the US account server",
		},
		{
			Name:        CmdTopHistory,
			Description: "Show who led a leaderboard in previously recorded snapshots",
			Options: []*discordgo.ApplicationCommandOption{
				categoryOption(),
			},
		},
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func categoryOption() *discordgo.ApplicationCommandOption {
	opt := stringOption("category", "Leaderboard category", true)
	for _, c := range domain.Categories() {
		opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  formatting.CategoryTitle(c),
			Value: string(c),
		})
	}
	return opt
}

func RegisterCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) []*discordgo.ApplicationCommand {
	registered := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		result, err := session.ApplicationCommandCreate(userID, guildID, cmd)
		if err != nil {
			slog.Error("Cannot create command", "name", cmd.Name, "error", err)
			continue
		}
		registered[i] = result
		slog.Info("Registered command", "name", cmd.Name, "guild", guildID)
	}

	return registered
}

func CleanupCommands(session CommandSession, commands []*discordgo.ApplicationCommand, userID, guildID string) {
	for _, cmd := range commands {
		if cmd == nil {
			continue
		}
		if err := session.ApplicationCommandDelete(userID, guildID, cmd.ID); err != nil {
			slog.Error("Cannot delete command", "name", cmd.Name, "error", err)
		}
	}
}
