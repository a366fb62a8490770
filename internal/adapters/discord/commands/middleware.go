package commands

import (
	"log/slog"

	"dinogen-tracker/internal/adapters/discord/formatting"
	"dinogen-tracker/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(CommandHandler) CommandHandler

// WithRecover keeps a panicking handler from taking the gateway loop down.
// It answers panics raised before the reply is deferred; later ones are
// handled by run.
func WithRecover(name string) Middleware {
	return func(next CommandHandler) CommandHandler {
		return func(s DiscordSession, i *discordgo.InteractionCreate) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Command handler panicked", "command", name, "panic", r)
					metrics.CommandsHandled.WithLabelValues(name, "panic").Inc()
					respond(s, i, formatting.MsgInternalError, true)
				}
			}()
			next(s, i)
		}
	}
}

func Chain(h CommandHandler, mws ...Middleware) CommandHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
