package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini API key for the assistant.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// SMTP configuration for booking emails. Emails are skipped with a log
	// line when these are unset.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Admin dashboard access.
	AdminPIN   string `mapstructure:"ADMIN_PIN"`
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	// Business identity used in the assistant persona and email content.
	BusinessName    string `mapstructure:"BUSINESS_NAME"`
	BusinessAddress string `mapstructure:"BUSINESS_ADDRESS"`
	BusinessContact string `mapstructure:"BUSINESS_CONTACT"`
	InstagramHandle string `mapstructure:"INSTAGRAM_HANDLE"`
	TikTokHandle    string `mapstructure:"TIKTOK_HANDLE"`
	SiteURL         string `mapstructure:"SITE_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("ADMIN_PIN", "1825")
	viper.SetDefault("BUSINESS_NAME", "Lash Studio")
	viper.SetDefault("BUSINESS_CONTACT", "447438289674")
	viper.SetDefault("SITE_URL", "https://lashstudio.example.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
