package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	ServerPort     string
	ServerHost     string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestBody int64

	// Database
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Kafka
	KafkaBrokers []string
	KafkaGroupID string

	// OIDC
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string

	// Environmental data providers
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	PerplexityAPIKey   string
	PerplexityBaseURL  string
	PerplexityModel    string
	ProviderTimeout    time.Duration

	// Risk engine
	InteractionRulesPath string

	// Reports
	ReportsKafkaTopic string
	ReportCacheTTL    time.Duration
	ReportRetention   time.Duration

	// Gateway specific
	ReportBaseURL         string
	AlertsBaseURL         string
	GatewayRequestTimeout time.Duration
	GatewayRateLimitRPS   int
	GatewayRateLimitBurst int
}

func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ReadTimeout:    getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:   getDuration("WRITE_TIMEOUT", 30*time.Second),
		MaxRequestBody: int64(getIntEnv("MAX_REQUEST_BODY_BYTES", 1024*1024)),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "envirohealth"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "envirohealth123"),
		PostgresDB:       getEnv("POSTGRES_DB", "envirohealth"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		KafkaBrokers: getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "envirohealth-platform"),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),

		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		PerplexityAPIKey:   getEnv("PERPLEXITY_API_KEY", ""),
		PerplexityBaseURL:  getEnv("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
		PerplexityModel:    getEnv("PERPLEXITY_MODEL", "sonar"),
		ProviderTimeout:    getDuration("PROVIDER_TIMEOUT", 30*time.Second),

		InteractionRulesPath: getEnv("INTERACTION_RULES_PATH", ""),

		ReportsKafkaTopic: getEnv("REPORTS_KAFKA_TOPIC", "health-reports"),
		ReportCacheTTL:    getDuration("REPORT_CACHE_TTL", 15*time.Minute),
		ReportRetention:   getDuration("REPORT_RETENTION", 90*24*time.Hour),

		ReportBaseURL:         getEnv("REPORT_BASE_URL", "http://localhost:8081"),
		AlertsBaseURL:         getEnv("ALERTS_BASE_URL", "http://localhost:8082"),
		GatewayRequestTimeout: getDuration("GATEWAY_REQUEST_TIMEOUT", 45*time.Second),
		GatewayRateLimitRPS:   getIntEnv("GATEWAY_RATE_LIMIT_RPS", 50),
		GatewayRateLimitBurst: getIntEnv("GATEWAY_RATE_LIMIT_BURST", 100),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return []string{value}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
