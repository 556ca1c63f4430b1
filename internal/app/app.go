package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/pagebot/pagebot/docs" // Import Swagger docs
	"github.com/pagebot/pagebot/internal/botconfig"
	"github.com/pagebot/pagebot/internal/config"
	"github.com/pagebot/pagebot/internal/controllers/messenger"
	"github.com/pagebot/pagebot/internal/services/dedupe"
	"github.com/pagebot/pagebot/internal/services/graphapi"
	"github.com/pagebot/pagebot/internal/services/replypolicy"
	"github.com/rs/zerolog"
)

// CreateServers loads the bot config file, resolves the effective settings
// and assembles the web server.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	path := settings.BotConfigFile
	if path == "" {
		path = botconfig.DefaultPath
	}
	botCfg, err := botconfig.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load bot config: %w", err)
	}
	settings.ApplyBotConfig(botCfg)

	if settings.VerifyToken == "" {
		return nil, fmt.Errorf("no verify token configured; set VERIFY_TOKEN or add verify_token to %s", path)
	}
	if settings.PageAccessToken == "" {
		logger.Warn().Msg("No page access token configured, replies will be logged but not sent")
	}

	policy := replypolicy.New(botCfg.Replies, botCfg.DefaultReply)
	sender := graphapi.NewSender(nil, settings.GraphAPIURL, settings.PageAccessToken)

	app, err := CreateFiberApp(logger, settings, policy, sender)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the routes and middleware for the webhook server.
func CreateFiberApp(logger zerolog.Logger, settings *config.Settings, policy messenger.ReplyPolicy, sender messenger.ReplySender) (*fiber.App, error) {
	logger.Info().Msg("Starting Page Reply Bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Page Reply Bot!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := messenger.NewWebhookController(settings.VerifyToken, policy, sender, dedupe.New())
	logger.Info().Msg("Registering routes...")

	app.Get("/webhook", webhookController.VerifyHandshake)
	app.Post("/webhook", messenger.SignatureMiddleware(settings.AppSecret), webhookController.HandleEvents)

	return app, nil
}
