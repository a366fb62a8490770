package commands

import (
	"context"
	"log/slog"
	"time"

	"dinogen-tracker/internal/adapters/discord/formatting"
	"dinogen-tracker/internal/config"
	"dinogen-tracker/internal/core/domain"
	"dinogen-tracker/internal/core/ports"
	"dinogen-tracker/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

// commandTimeout covers the longest command: a leaderboard fetch followed by
// a two-request profile resolution.
const commandTimeout = 45 * time.Second

type BotHandler struct {
	Config *config.Config
	Lookup PlayerLookup
	// Archive is nil when no database is configured.
	Archive ports.SnapshotRepository
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("Dinogen tracker is online!", "user", session.State.User.Username)
}

func (h *BotHandler) Player(s DiscordSession, i *discordgo.InteractionCreate) {
	username := getStringOption(i.ApplicationCommandData().Options, "username")
	if username == "" {
		respond(s, i, formatting.MsgUsernameRequired, true)
		return
	}

	h.run(s, i, CmdPlayer, func(ctx context.Context) (string, error) {
		p, err := h.Lookup.FetchPlayer(ctx, username)
		if err != nil {
			return formatting.MsgForError(err, username, 0), err
		}
		return formatting.MsgProfile(p), nil
	})
}

func (h *BotHandler) Banned(s DiscordSession, i *discordgo.InteractionCreate) {
	username := getStringOption(i.ApplicationCommandData().Options, "username")
	if username == "" {
		respond(s, i, formatting.MsgUsernameRequired, true)
		return
	}

	h.run(s, i, CmdBanned, func(ctx context.Context) (string, error) {
		banned, err := h.Lookup.IsPlayerBanned(ctx, username)
		if err != nil {
			return formatting.MsgForError(err, username, 0), err
		}
		return formatting.MsgBanStatus(username, banned), nil
	})
}

func (h *BotHandler) Leaderboard(s DiscordSession, i *discordgo.InteractionCreate) {
	opts := i.ApplicationCommandData().Options
	category := domain.ParseCategory(getStringOption(opts, "category"))
	if category == "" {
		respond(s, i, formatting.MsgCategoryRequired, true)
		return
	}
	rank, byRank := getIntOption(opts, "rank")

	h.run(s, i, CmdLeaderboard, func(ctx context.Context) (string, error) {
		snap, err := h.Lookup.FetchLeaderboard(ctx, category)
		if err != nil {
			return formatting.MsgForError(err, "", rank), err
		}
		h.archive(ctx, snap)

		if !byRank {
			return formatting.MsgLeaderboard(snap), nil
		}

		var username string
		if entry, err := snap.Rank(rank); err == nil {
			username = entry.Username
		}
		p, err := h.Lookup.ResolveEntry(ctx, snap, rank)
		if err != nil {
			return formatting.MsgForError(err, username, rank), err
		}
		return formatting.MsgProfile(p), nil
	})
}

func (h *BotHandler) Online(s DiscordSession, i *discordgo.InteractionCreate) {
	h.run(s, i, CmdOnline, func(ctx context.Context) (string, error) {
		count, err := h.Lookup.FetchConnectedPlayerCount(ctx)
		if err != nil {
			return formatting.MsgForError(err, "", 0), err
		}
		return formatting.MsgConnectedPlayers(count), nil
	})
}

func (h *BotHandler) TopHistory(s DiscordSession, i *discordgo.InteractionCreate) {
	if h.Archive == nil {
		respond(s, i, formatting.MsgHistoryDisabled, true)
		return
	}

	category := domain.ParseCategory(getStringOption(i.ApplicationCommandData().Options, "category"))
	if category == "" {
		respond(s, i, formatting.MsgCategoryRequired, true)
		return
	}

	h.run(s, i, CmdTopHistory, func(ctx context.Context) (string, error) {
		records, err := h.Archive.TopScoreHistory(ctx, category, h.historyLimit())
		if err != nil {
			return formatting.MsgInternalError, err
		}
		if len(records) == 0 {
			return formatting.MsgNoHistory, nil
		}
		return formatting.MsgTopHistory(category, records), nil
	})
}

// run defers the reply, executes query under a timeout and edits the reply
// with whatever message query produced.
func (h *BotHandler) run(s DiscordSession, i *discordgo.InteractionCreate, name string, query func(ctx context.Context) (string, error)) {
	if err := deferResponse(s, i); err != nil {
		slog.Error("Failed to defer interaction", "command", name, "error", err)
		metrics.CommandsHandled.WithLabelValues(name, "error").Inc()
		return
	}

	// Once deferred, the interaction only accepts edits, so a panic from here
	// on is reported through the deferred reply.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Command query panicked", "command", name, "panic", r)
			metrics.CommandsHandled.WithLabelValues(name, "panic").Inc()
			editResponse(s, i, formatting.MsgInternalError)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	msg, err := query(ctx)
	status := "ok"
	if err != nil {
		status = domain.KindOf(err).String()
		slog.Warn("Command failed", "command", name, "kind", status, "error", err)
	}
	metrics.CommandsHandled.WithLabelValues(name, status).Inc()

	editResponse(s, i, msg)
}

func (h *BotHandler) archive(ctx context.Context, snap *domain.LeaderboardSnapshot) {
	if h.Archive == nil {
		return
	}
	if err := h.Archive.RecordLeaderboard(ctx, snap); err != nil {
		slog.Warn("Failed to archive leaderboard snapshot", "category", snap.Category, "error", err)
	}
}

func (h *BotHandler) historyLimit() int {
	if h.Config == nil || h.Config.HistoryLimit <= 0 {
		return 10
	}
	return h.Config.HistoryLimit
}
