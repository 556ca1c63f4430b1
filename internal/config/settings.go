package config

import "github.com/pagebot/pagebot/internal/botconfig"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// GraphAPIURL is the base URL of the vendor message-send API.
	GraphAPIURL string `env:"GRAPH_API_URL"`
	// VerifyToken is the secret compared against hub.verify_token during the
	// webhook handshake.
	VerifyToken string `env:"VERIFY_TOKEN"`
	// PageAccessToken authorizes outbound sends. When empty the sender runs
	// in dry-run mode and performs no network calls.
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN"`
	// AppSecret enables X-Hub-Signature-256 validation on webhook POSTs.
	AppSecret string `env:"APP_SECRET"`
	// BotConfigFile is the path to the JSON bot config edited by botctl.
	BotConfigFile string `env:"BOT_CONFIG_FILE"`
}

// ApplyBotConfig fills settings left unset by the environment from the bot
// config file. Environment values always win.
func (s *Settings) ApplyBotConfig(cfg *botconfig.Config) {
	if s.VerifyToken == "" {
		s.VerifyToken = cfg.VerifyToken
	}
	if s.PageAccessToken == "" {
		s.PageAccessToken = cfg.PageAccessToken
	}
	if s.AppSecret == "" {
		s.AppSecret = cfg.AppSecret
	}
}
