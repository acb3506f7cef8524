package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"dazuai_backend/internal/controller"
	"dazuai_backend/internal/model"
	"dazuai_backend/pkg/assistant"
	"dazuai_backend/pkg/config"
	"dazuai_backend/pkg/cron"
	"dazuai_backend/pkg/database"
	"dazuai_backend/pkg/email"
	"dazuai_backend/pkg/notify"
	"dazuai_backend/pkg/sheets"
)

func setupRoutes(app *fiber.App) {
	app.Get("/courses", controller.ListCourses)
	app.Post("/register", controller.CreateRegistration)
	app.Post("/subscribe", controller.CreateSubscription)

	// AI panels
	ai := app.Group("/assistant")
	ai.Post("/chat", controller.AssistantChat)
	ai.Post("/ask", controller.AssistantAsk)
	ai.Post("/prompt", controller.AssistantPrompt)
	ai.Post("/image", controller.AssistantImage)
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.Mail.APIKey == "" {
		log.Println("[WARNING] RESEND_API_KEY is not set. Email notifications for new registrations will NOT be sent.")
	} else if err := email.InitEmailService(cfg.Mail.APIKey, cfg.Mail.AdminEmail); err != nil {
		log.Printf("[WARNING] Could not initialize email service: %v", err)
	}

	if cfg.Sheets.SpreadsheetID == "" || cfg.Sheets.Credentials == "" {
		log.Println("[WARNING] Google Sheets environment variables (SPREADSHEET_ID, GOOGLE_SHEETS_CREDENTIALS) are not set. Registration data will NOT be sent to Google Sheets.")
	} else if err := sheets.InitClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.Credentials); err != nil {
		log.Printf("[WARNING] Could not initialize Google Sheets client: %v", err)
	}

	if cfg.Gemini.APIKey == "" {
		log.Println("[WARNING] GEMINI_API_KEY is not set. The AI assistant endpoints will be unavailable.")
	} else if err := assistant.InitService(ctx, cfg.Gemini.APIKey); err != nil {
		log.Printf("[WARNING] Could not initialize Gemini client: %v", err)
	}

	database.InitDB(cfg.Database.URL, cfg.Database.Path)
	err := database.MigrateDatabase(
		&model.Registration{},
		&model.Subscriber{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	// Both channels stay nil-safe: an unset integration only disables itself.
	var appender notify.RowAppender
	if sheets.GlobalClient != nil {
		appender = sheets.GlobalClient
	}
	var mailer notify.Mailer
	if email.GlobalEmailService != nil {
		mailer = email.GlobalEmailService
	}
	notify.InitSink(appender, mailer)

	cron.InitDailyDigestCron()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
