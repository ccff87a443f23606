package bot

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"recipe-bot/config"
	"recipe-bot/internal/gate"
	"recipe-bot/internal/localization"
	"recipe-bot/internal/publish"
	"recipe-bot/internal/recipes"
	"recipe-bot/internal/scheduler"
	"recipe-bot/internal/storage"
)

type TelegramBot struct {
	api       *tgbotapi.BotAPI
	cfg       *config.Config
	localizer *localization.Localizer
	storage   *storage.Storage
	scheduler *scheduler.Scheduler
	drafts    *recipes.Store
	publisher *publish.Publisher
	gate      *gate.Gate
}

func NewBot(
	cfg *config.Config,
	localizer *localization.Localizer,
	appScheduler *scheduler.Scheduler,
	dbStorage *storage.Storage,
) (*TelegramBot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, err
	}

	client := &telegramClient{api: api}
	revealLabel := localizer.GetMessage(cfg.DefaultLanguage, "btn_show_recipe")

	bot := &TelegramBot{
		api:       api,
		cfg:       cfg,
		localizer: localizer,
		storage:   dbStorage,
		scheduler: appScheduler,
		drafts:    recipes.NewStore(),
		publisher: publish.NewPublisher(client, dbStorage, cfg.ChannelID, revealLabel),
		gate:      gate.NewGate(&registryReader{store: dbStorage}, gate.NewVerifier(client, cfg.ChannelID)),
	}
	return bot, nil
}

func (b *TelegramBot) Start() {
	b.api.Debug = false
	log.Printf("Authorized on account %s", b.api.Self.UserName)
	b.scheduleDraftSweep()
	b.scheduler.Start()
	b.listenForUpdates()
}

func (b *TelegramBot) scheduleDraftSweep() {
	ttl := time.Duration(b.cfg.DraftTTLMinutes) * time.Minute
	log.Printf("Scheduling stale draft sweep. TTL: %s", ttl)
	b.scheduler.AddJob(draftSweepJobTag, ttl/2, func() {
		if n := b.drafts.SweepStale(ttl); n > 0 {
			log.Printf("Swept %d stale draft(s)", n)
		}
	})
}

func (b *TelegramBot) listenForUpdates() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)
	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallbackQuery(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}
		if update.Message.From == nil || !b.isOperator(update.Message.From.ID) {
			continue
		}
		draft, err := b.drafts.Get(update.Message.From.ID)
		if err != nil {
			continue
		}
		b.handleDraftMessage(update.Message, draft)
	}
}
