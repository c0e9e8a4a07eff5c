package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// BookingConfig holds the working-hours policy the validation engine is
// constructed with. Times are fixed-width 24-hour HH:MM strings.
type BookingConfig struct {
	DayStart           string
	DayEnd             string
	MinDurationMinutes int
	MaxDurationMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BOOKING_DAY_START", "08:00")
	viper.SetDefault("BOOKING_DAY_END", "18:00")
	viper.SetDefault("BOOKING_MIN_DURATION_MINUTES", 30)
	viper.SetDefault("BOOKING_MAX_DURATION_MINUTES", 480)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Booking: BookingConfig{
			DayStart:           viper.GetString("BOOKING_DAY_START"),
			DayEnd:             viper.GetString("BOOKING_DAY_END"),
			MinDurationMinutes: viper.GetInt("BOOKING_MIN_DURATION_MINUTES"),
			MaxDurationMinutes: viper.GetInt("BOOKING_MAX_DURATION_MINUTES"),
		},
	}

	return config, nil
}
