package config

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	Endpoint        string
}

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	JWTSecret string
	TokenTTL  time.Duration

	// SeedSource is "json" or "database".
	SeedSource string
	DataDir    string
	DBDriver   string
	DB_URL     string
	BcryptCost int

	// UploadBackend is "local" or "r2".
	UploadBackend string
	UploadDir     string
	MaxUploadMB   int64
	R2            R2Config

	PicsumBaseURL  string
	ProxyCacheSize int
	ProxyTimeout   time.Duration

	LoginRatePerMinute int
	LoginBurst         int
	// TrustProxy keys the login limiter by X-Forwarded-For. Enable it only
	// behind a reverse proxy that sets the header.
	TrustProxy bool

	CorsConfig cors.Options
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads ENV_FILE (default .env) if present and builds the configuration
// from the environment.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Debug("no env file found", "file", envFile)
	}

	return Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", "not-so-secret-now-is-it?"),
		TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),

		SeedSource: getEnv("SEED_SOURCE", "json"),
		DataDir:    getEnv("DATA_DIR", ""),
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DB_URL:     getEnv("DB_URL", ""),
		BcryptCost: getInt("BCRYPT_COST", 10),

		UploadBackend: getEnv("UPLOAD_BACKEND", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/posts"),
		MaxUploadMB:   int64(getInt("MAX_UPLOAD_MB", 5)),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			Endpoint:        getEnv("R2_ENDPOINT", ""),
		},

		PicsumBaseURL:  getEnv("PICSUM_BASE_URL", "https://picsum.photos"),
		ProxyCacheSize: getInt("PROXY_CACHE_SIZE", 256),
		ProxyTimeout:   getDuration("PROXY_TIMEOUT", 10*time.Second),

		LoginRatePerMinute: getInt("LOGIN_RATE_PER_MIN", 10),
		LoginBurst:         getInt("LOGIN_BURST", 5),
		TrustProxy:         getBool("TRUST_PROXY", false),

		CorsConfig: CorsConfig(getList("CORS_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})),
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", raw)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", raw)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", raw)
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func CorsConfig(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
