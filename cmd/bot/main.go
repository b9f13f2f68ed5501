package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/rootsofthewild/rootsbot/internal/blight"
	"github.com/rootsofthewild/rootsbot/internal/config"
	"github.com/rootsofthewild/rootsbot/internal/database"
	"github.com/rootsofthewild/rootsbot/internal/database/postgres"
	"github.com/rootsofthewild/rootsbot/internal/discord"
	"github.com/rootsofthewild/rootsbot/internal/event"
	"github.com/rootsofthewild/rootsbot/internal/santa"
	"github.com/rootsofthewild/rootsbot/internal/scheduler"
	"github.com/rootsofthewild/rootsbot/internal/server"
	"github.com/rootsofthewild/rootsbot/internal/weather"
	"github.com/rootsofthewild/rootsbot/internal/worker"
)

// ShutdownTimeout bounds graceful HTTP server shutdown
const ShutdownTimeout = 10 * time.Second

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	log := slog.Default()

	ctx := context.Background()
	connString := cfg.GetDBConnString()

	if err := database.Migrate(ctx, connString); err != nil {
		log.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	eventBus := event.NewMemoryBus()

	santaService := santa.NewService(postgres.NewSantaRepository(dbPool), eventBus, cfg.MatchMaxAttempts)
	weatherService := weather.NewService(postgres.NewWeatherRepository(dbPool), eventBus)
	blightService := blight.NewService(postgres.NewBlightRepository(dbPool), eventBus)

	workerPool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	workerPool.Start()

	sched := scheduler.New(workerPool)
	sched.Schedule(cfg.WeatherUpdateInterval, worker.NewWeatherJob(weatherService))
	sched.Schedule(cfg.BlightTickInterval, worker.NewBlightJob(blightService))
	sched.Schedule(cfg.ReminderInterval, worker.NewReminderJob(santaService, eventBus))

	srv := server.NewServer(cfg.Port, dbPool)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", "error", err)
		}
	}()

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, &discord.Deps{
		Santa:    santaService,
		Weather:  weatherService,
		Blight:   blightService,
		EventBus: eventBus,
	})
	if err != nil {
		log.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	registerCommands(bot, getCommandFactories())

	if cfg.ForceCommandUpdate {
		log.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		log.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	notifier := discord.NewNotifier(bot.Session, workerPool, santaService, cfg.AnnounceChannelID)
	notifier.Subscribe(eventBus)

	if err := bot.Start(); err != nil {
		log.Error("Bot failed to start", "error", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	bot.Stop()
	sched.Stop()
	workerPool.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", "error", err)
	}
}

// getCommandFactories returns a list of all available Discord command factories.
// This provides a single place to see and manage all registered commands.
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.SantaCommand,
		discord.SantaAdminCommand,
		discord.WeatherCommand,
		discord.BlightCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
