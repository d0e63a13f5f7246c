package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/mirefen/GloamBot_Go/internal/config"
	"github.com/mirefen/GloamBot_Go/internal/discord"
	"github.com/mirefen/GloamBot_Go/internal/logger"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func commandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.VentureCommand,
		discord.HealCommand,
		discord.ProfileCommand,
		discord.InventoryCommand,
		discord.LocationsCommand,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	loggerConfig := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "gloambot-discord", "", cfg.Environment, false)
	logger.InitLogger(loggerConfig)

	if cfg.DiscordToken == "" || cfg.DiscordAppID == "" {
		slog.Error("DISCORD_TOKEN and DISCORD_APP_ID must be set")
		os.Exit(1)
	}

	bot, err := discord.New(discord.Config{
		Token:  cfg.DiscordToken,
		AppID:  cfg.DiscordAppID,
		APIURL: cfg.DiscordAPIURL,
		APIKey: cfg.APIKey,
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	for _, factory := range commandFactories() {
		bot.Registry.Register(factory())
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		os.Exit(1)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}
}
