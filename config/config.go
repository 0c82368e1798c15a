package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSearchDB int    `mapstructure:"REDIS_SEARCH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// AI search (Gemini) and speech-to-text credentials.
	GeminiAPIKey       string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel        string `mapstructure:"GEMINI_MODEL"`
	SpeechCredsFile    string `mapstructure:"SPEECH_CREDS_FILE"`
	SearchTimeoutSecs  int    `mapstructure:"SEARCH_TIMEOUT_SECS"`
	SearchCacheTTLMins int    `mapstructure:"SEARCH_CACHE_TTL_MINS"`

	// Cloudinary image storage.
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Discovery feed tunables.
	AdTTLHours       int     `mapstructure:"AD_TTL_HOURS"`
	MaxRadiusKm      float64 `mapstructure:"MAX_RADIUS_KM"` // values at or above this mean "anywhere"
	DefaultRadiusKm  float64 `mapstructure:"DEFAULT_RADIUS_KM"`
	CarouselSlotSize int     `mapstructure:"CAROUSEL_SLOT_SIZE"`
	RotateMinSecs    int     `mapstructure:"ROTATE_MIN_SECS"`
	RotateMaxSecs    int     `mapstructure:"ROTATE_MAX_SECS"`

	// Fallback viewer location used when geolocation is denied.
	DefaultCity  string  `mapstructure:"DEFAULT_CITY"`
	DefaultState string  `mapstructure:"DEFAULT_STATE"`
	DefaultLat   float64 `mapstructure:"DEFAULT_LAT"`
	DefaultLng   float64 `mapstructure:"DEFAULT_LNG"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SEARCH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-flash")
	viper.SetDefault("SPEECH_CREDS_FILE", "")
	viper.SetDefault("SEARCH_TIMEOUT_SECS", 20)
	viper.SetDefault("SEARCH_CACHE_TTL_MINS", 10)
	viper.SetDefault("AD_TTL_HOURS", 24)
	viper.SetDefault("MAX_RADIUS_KM", 100.0)
	viper.SetDefault("DEFAULT_RADIUS_KM", 50.0)
	viper.SetDefault("CAROUSEL_SLOT_SIZE", 6)
	viper.SetDefault("ROTATE_MIN_SECS", 3)
	viper.SetDefault("ROTATE_MAX_SECS", 6)
	viper.SetDefault("DEFAULT_CITY", "Lagos Island")
	viper.SetDefault("DEFAULT_STATE", "Lagos")
	viper.SetDefault("DEFAULT_LAT", 6.5244)
	viper.SetDefault("DEFAULT_LNG", 3.3792)

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

// AdTTL returns how long a freshly posted or renewed ad stays live.
func AdTTL() time.Duration {
	return time.Duration(AppConfig.AdTTLHours) * time.Hour
}

// SearchTimeout bounds every call to the external AI search collaborator.
func SearchTimeout() time.Duration {
	return time.Duration(AppConfig.SearchTimeoutSecs) * time.Second
}

// SearchCacheTTL is how long a resolved search result stays cached.
func SearchCacheTTL() time.Duration {
	return time.Duration(AppConfig.SearchCacheTTLMins) * time.Minute
}
