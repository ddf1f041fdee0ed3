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
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	APIKey            string `mapstructure:"API_KEY"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Data backend: "mongo" for production, "memory" for demo mode with the
	// seeded company directory.
	DataBackend string `mapstructure:"DATA_BACKEND"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Slot search configuration. Day bounds are minutes from midnight.
	WorkDayStartMin           int  `mapstructure:"WORK_DAY_START_MIN"`
	WorkDayEndMin             int  `mapstructure:"WORK_DAY_END_MIN"`
	SlotBucketMinutes         int  `mapstructure:"SLOT_BUCKET_MINUTES"`
	UnknownCountsAsAvailable  bool `mapstructure:"UNKNOWN_COUNTS_AS_AVAILABLE"`
	ConflictSearchDays        int  `mapstructure:"CONFLICT_SEARCH_DAYS"`
	RescheduleSearchDays      int  `mapstructure:"RESCHEDULE_SEARCH_DAYS"`
	SessionTTLMinutes         int  `mapstructure:"SESSION_TTL_MINUTES"`
	ReminderLeadMinutes       int  `mapstructure:"REMINDER_LEAD_MINUTES"`
	DefaultDurationMinutes    int  `mapstructure:"DEFAULT_DURATION_MINUTES"`
	ReminderWorkerConcurrency int  `mapstructure:"REMINDER_WORKER_CONCURRENCY"`
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
	viper.SetDefault("DATA_BACKEND", "mongo")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("WORK_DAY_START_MIN", 540)
	viper.SetDefault("WORK_DAY_END_MIN", 1020)
	viper.SetDefault("SLOT_BUCKET_MINUTES", 30)
	viper.SetDefault("UNKNOWN_COUNTS_AS_AVAILABLE", true)
	viper.SetDefault("CONFLICT_SEARCH_DAYS", 2)
	viper.SetDefault("RESCHEDULE_SEARCH_DAYS", 3)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 15)
	viper.SetDefault("DEFAULT_DURATION_MINUTES", 60)
	viper.SetDefault("REMINDER_WORKER_CONCURRENCY", 10)

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
