package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"CmdBot/core"
	"CmdBot/core/database"
	"CmdBot/core/dispatch"
	"CmdBot/core/dispatch/handlers"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

// Variables used for command line parameters
var (
	settingsFile string
)

func init() {
	flag.StringVar(&settingsFile, "c", "config-dev.json", "Configuration path")
	flag.Parse()
}

func main() {
	if err := godotenv.Load(); err != nil {
		core.LogDebug("No .env file found, using system environment only")
	}
	core.LoadSettings(settingsFile)
	database.InitializeDatabase()
	defer database.Close()

	sc := make(chan os.Signal, 1)

	registry := dispatch.NewRegistry()
	if err := handlers.RegisterAll(registry); err != nil {
		core.LogFatal("Failed to register commands: ", err)
	}
	// Owner-only shutdown, usable over DM.
	_, err := registry.Register("shutdown", dispatch.CommandOptions{
		Description: "Shut the bot down (owners only)",
		AllowPM:     true,
		Level: func(m *dispatch.Message) bool {
			return core.Settings.IsOwner(m.Author.ID)
		},
		Execute: func(m *dispatch.Message) {
			m.ReplyToChannel("Shutting down.")
			sc <- syscall.SIGTERM
		},
	})
	if err != nil {
		core.LogFatal("Failed to register commands: ", err)
	}

	// Create a new Discord session using the provided bot token.
	dg, err := discordgo.New("Bot " + core.Settings.AuthToken())
	if err != nil {
		core.LogFatal("error creating Discord session,", err)
		return
	}

	dispatcher := dispatch.New(dispatch.WrapSession(dg), registry, core.Settings.CommandPrefix(),
		dispatch.WithPrefixResolver(func(m *discordgo.Message) string {
			// guilds can override the default prefix via the prefix command
			if m.GuildID != "" {
				if prefix := database.FetchGuildPrefix(m.GuildID); prefix != "" {
					return prefix
				}
			}
			return core.Settings.CommandPrefix()
		}))

	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		go dispatcher.Dispatch(m.Message)
	})
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageUpdate) {
		go dispatcher.Dispatch(m.Message)
	})

	// Open a websocket connection to Discord and begin listening.
	err = dg.Open()
	if err != nil {
		core.LogFatal("error opening connection,", err)
		return
	}
	defer dg.Close()

	// Wait here until CTRL-C or other term signal is received.
	core.LogInfoF("Bot is now running.  Press CTRL-C to exit.")
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
