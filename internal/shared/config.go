package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	// catalog backend: "file" (JSON files in DataDir) or "mysql"
	CatalogBackend string
	DataDir        string
	MySQLDSN       string

	RedisAddr string
	RedisDB   int
	RedisPass string

	WeatherBase    string
	WeatherKey     string
	WeatherTimeout time.Duration
	WeatherRPS     int

	OpenAIKey   string
	OpenAIModel string

	CacheTTL time.Duration
}

func Load() Config {
	// .env is a developer convenience; absence is not an error
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		CatalogBackend: env("CATALOG_BACKEND", "file"),
		DataDir:        env("DATA_DIR", "data"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/catalog?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		WeatherBase:    env("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherKey:     env("OPENWEATHER_API_KEY", ""),
		WeatherTimeout: time.Duration(atoi("WEATHER_TIMEOUT_SECONDS", 10)) * time.Second,
		WeatherRPS:     atoi("WEATHER_RPS", 5),
		OpenAIKey:      env("OPENAI_API_KEY", ""),
		OpenAIModel:    env("OPENAI_MODEL", "gpt-4o-mini"),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 600)) * time.Second,
	}
	if c.WeatherKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY is empty; weather lookups will degrade to unknown")
	}
	if c.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is empty; itinerary composition is disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
