package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBotToken string  `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	ChannelID        int64   `envconfig:"CHANNEL_ID"         required:"true"`
	AdminIDs         []int64 `envconfig:"ADMIN_IDS"          required:"true"`
	DefaultLanguage  string  `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	DatabasePath     string  `envconfig:"DATABASE_PATH"    default:"recipebot.db"`
	DraftTTLMinutes  int     `envconfig:"DRAFT_TTL_MINUTES" default:"360"`
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading from environment variables")
	}

	var cfg Config
	err = envconfig.Process("", &cfg)
	if err != nil {
		log.Fatalf("Failed to process configuration: %v", err)
	}

	return cfg
}

// IsOperator reports whether the user is on the static operator list.
// Admins added at runtime live in storage, not here.
func (c *Config) IsOperator(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
