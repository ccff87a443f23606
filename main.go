package main

import (
	"embed"
	"log"

	"recipe-bot/config"
	"recipe-bot/internal/bot"
	"recipe-bot/internal/localization"
	"recipe-bot/internal/scheduler"
	"recipe-bot/internal/storage"
)

//go:embed locales
var localeFiles embed.FS

func main() {
	log.Println("Starting Recipe Bot...")

	cfg := config.LoadConfig()

	dbStorage, err := storage.NewStorage(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer dbStorage.Close()

	for _, adminID := range cfg.AdminIDs {
		if err := dbStorage.SetUserAdmin(adminID, true); err != nil {
			log.Fatalf("Failed to ensure admin %d in db: %v", adminID, err)
		}
	}
	log.Printf("%d operator(s) from configuration ensured.", len(cfg.AdminIDs))

	localizer := localization.NewLocalizer(localeFiles)
	appScheduler, err := scheduler.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	defer appScheduler.Shutdown()

	telegramBot, err := bot.NewBot(&cfg, localizer, appScheduler, dbStorage)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}
	log.Println("Bot is running...")
	telegramBot.Start()
}
