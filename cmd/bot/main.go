package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"mainroles/config"
	directory "mainroles/internal/adapters/discord"
	delivery "mainroles/internal/delivery/discord"
	"mainroles/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logger.Error("failed to create discord session", "err", err)
		os.Exit(1)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	syncService := services.NewRoleSyncService(directory.NewDirectory(session), logger)
	handler := delivery.NewHandler(logger, syncService)

	session.AddHandler(handler.HandleInteraction)
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("connected", "user", r.User.Username)
		if err := delivery.RegisterCommands(s, cfg.GuildID); err != nil {
			logger.Error("failed to register commands", "err", err)
		}
	})

	if err := session.Open(); err != nil {
		logger.Error("failed to open gateway connection", "err", err)
		os.Exit(1)
	}
	defer session.Close()

	logger.Info("bot running", "guild", cfg.GuildID)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")
}
