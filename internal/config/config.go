package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Conf holds the application configuration, making it accessible globally.
var Conf *Config

// Config struct is the top-level configuration structure.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Uploads     UploadsConfig     `mapstructure:"uploads"`
}

// ServerConfig holds server-related settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// AuthConfig holds token issuance settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"`
	TokenTTLMinutes      int    `mapstructure:"token_ttl_minutes"`
	ResetTokenTTLMinutes int    `mapstructure:"reset_token_ttl_minutes"`
}

// LeaderboardConfig holds settings for the rank reconciliation pass.
type LeaderboardConfig struct {
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds"`
}

// UploadsConfig covers media attachments on performance submissions. These
// settings lived in a key/value settings table in an earlier iteration; they
// are plain configuration now and reload through the file watch below.
type UploadsConfig struct {
	MaxFileSizeMB       int      `mapstructure:"max_file_size_mb"`
	AllowedVideoFormats []string `mapstructure:"allowed_video_formats"`
	AllowedImageFormats []string `mapstructure:"allowed_image_formats"`
	AutoVerify          bool     `mapstructure:"auto_verify"`
	EmailNotifications  bool     `mapstructure:"email_notifications"`
}

// setDefaults sets the default values for the configuration.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")

	// Database defaults
	v.SetDefault("database.host", "db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "user")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.dbname", "fittrack-db")

	// Auth defaults. The secret default is for local development only.
	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl_minutes", 60)
	v.SetDefault("auth.reset_token_ttl_minutes", 30)

	// Leaderboard defaults
	v.SetDefault("leaderboard.refresh_interval_seconds", 60)

	// Upload defaults
	v.SetDefault("uploads.max_file_size_mb", 50)
	v.SetDefault("uploads.allowed_video_formats", []string{"mp4", "mov", "avi"})
	v.SetDefault("uploads.allowed_image_formats", []string{"jpg", "jpeg", "png", "webp"})
	v.SetDefault("uploads.auto_verify", false)
	v.SetDefault("uploads.email_notifications", true)
}

// Init initializes the configuration with Viper.
func Init(projectRoot string, log *zap.Logger) error {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// --- File Configuration ---
	v.AddConfigPath(filepath.Join(projectRoot, "config")) // Search for config file in the config directory
	v.SetConfigName("config")                             // Name of config file (without extension)
	v.SetConfigType("yaml")                               // Type of config file

	// --- Environment Variable Binding ---
	v.SetEnvPrefix("FITTRACK") // e.g., FITTRACK_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read the initial configuration from the file.
	// It's okay if the file doesn't exist; defaults and env vars will be used.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal the config into our global Conf variable
	if err := v.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Set up a watch for configuration changes for hot-reloading
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		if err := v.Unmarshal(&Conf); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
		}
	})

	log.Info("Configuration loaded successfully")
	return nil
}
