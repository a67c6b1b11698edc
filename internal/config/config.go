package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
	LLM         LLM
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type ESPNAPI struct {
	Year     string `envconfig:"YEAR" required:"true"`
	LeagueID string `envconfig:"LEAGUE_ID" required:"true"`
	SWID     string `envconfig:"SWID"`
	ESPNS2   string `envconfig:"ESPN_S2"`
}

type LLM struct {
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
