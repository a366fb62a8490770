package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"dinogen-tracker/internal/adapters/dinogen"
	"dinogen-tracker/internal/adapters/dinogen/api"
	"dinogen-tracker/internal/adapters/discord"
	"dinogen-tracker/internal/adapters/discord/commands"
	"dinogen-tracker/internal/adapters/storage/postgres"
	"dinogen-tracker/internal/config"
	"dinogen-tracker/internal/core/ports"
	"dinogen-tracker/internal/core/services/lookup"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config             *config.Config
	store              ports.SnapshotRepository
	discord            *discordgo.Session
	router             *commands.Router
	metricsServer      *http.Server
	registeredCommands []*discordgo.ApplicationCommand
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	service := lookup.NewService(dinogen.NewAdapter(client))

	app := &App{config: cfg}

	if cfg.ArchiveEnabled() {
		store, err := postgres.NewSnapshotStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to snapshot archive: %w", err)
		}
		app.store = store
	} else {
		slog.Info("DATABASE_URL not set, leaderboard history disabled")
	}

	session, err := discord.NewSession(cfg)
	if err != nil {
		app.closeStore()
		return nil, err
	}
	app.discord = session

	bot := &commands.BotHandler{Config: cfg, Lookup: service}
	if app.store != nil {
		bot.Archive = app.store
	}
	app.router = newRouter(bot)

	session.AddHandler(commands.ReadyHandler)
	session.AddHandler(app.router.HandleFunc())

	return app, nil
}

func newRouter(bot *commands.BotHandler) *commands.Router {
	router := commands.NewRouter()
	routes := map[string]commands.CommandHandler{
		commands.CmdPlayer:      bot.Player,
		commands.CmdBanned:      bot.Banned,
		commands.CmdLeaderboard: bot.Leaderboard,
		commands.CmdOnline:      bot.Online,
		commands.CmdTopHistory:  bot.TopHistory,
	}
	for name, h := range routes {
		router.Register(name, commands.Chain(h, commands.WithRecover(name)))
	}
	return router
}

func (a *App) Run() error {
	a.startMetricsServer()

	if err := a.discord.Open(); err != nil {
		slog.Error("Failed to open discord session", "error", err)
		return err
	}

	userID := a.discord.State.User.ID
	a.registeredCommands = commands.RegisterCommands(a.discord, commands.GetApplicationCommands(), userID, a.config.DiscordGuildID)

	slog.Info("Dinogen tracker started", "guild", a.config.DiscordGuildID, "archive", a.store != nil)
	return nil
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{Addr: a.config.MetricsAddr, Handler: mux}
	go func() {
		slog.Info("Metrics server listening", "addr", a.config.MetricsAddr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	var errs []error

	if a.discord != nil {
		if a.config.DiscordGuildID != "" && a.discord.State != nil && a.discord.State.User != nil {
			commands.CleanupCommands(a.discord, a.registeredCommands, a.discord.State.User.ID, a.config.DiscordGuildID)
		}
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord session: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
	}

	a.closeStore()

	return errors.Join(errs...)
}

func (a *App) closeStore() {
	if a.store != nil {
		a.store.Close()
	}
}
