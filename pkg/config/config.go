package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	DataDir      string
	IsProduction bool

	// CORSAllowedOrigins lists origins allowed to call the API. A single
	// "*" entry allows any origin.
	CORSAllowedOrigins []string

	// RateLimit is an ulule/limiter formatted rate, e.g. "300-M".
	RateLimit string

	// InvoiceFontPath optionally points to a UTF-8 TTF used for Vietnamese
	// text on invoice PDFs. When unset the renderer falls back to a
	// built-in font.
	InvoiceFontPath string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every setting has a workable default: the server runs without
// any environment at all, persisting next to the working directory.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATA_DIR", ".")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("INVOICE_FONT_PATH", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		DataDir:         viper.GetString("DATA_DIR"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
		InvoiceFontPath: viper.GetString("INVOICE_FONT_PATH"),
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
