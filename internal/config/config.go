package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	AllowOrigins []string
	LogSinkAddr  string

	IdentityBaseURL string

	TransportSource  string
	TransportBaseURL string
	TransportAppID   string
	TransportAppKey  string
	MockSeed         int64

	DataDir string

	DefaultLatitude  float64
	DefaultLongitude float64
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := Config{
		Port:             getenv("PORT", "8080"),
		AllowOrigins:     splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogSinkAddr:      getenv("LOG_SINK_ADDR", ""),
		IdentityBaseURL:  getenv("IDENTITY_BASE_URL", "https://dummyjson.com"),
		TransportSource:  getenv("TRANSPORT_SOURCE", "mock"),
		TransportBaseURL: getenv("TRANSPORT_BASE_URL", "https://transportapi.com/v3"),
		TransportAppID:   getenv("TRANSPORT_APP_ID", ""),
		TransportAppKey:  getenv("TRANSPORT_APP_KEY", ""),
		DataDir:          getenv("DATA_DIR", "data"),
		DefaultLatitude:  getfloat("DEFAULT_LATITUDE", 51.5074),
		DefaultLongitude: getfloat("DEFAULT_LONGITUDE", -0.1278),
	}

	if v, err := strconv.ParseInt(getenv("MOCK_SEED", "0"), 10, 64); err == nil {
		cfg.MockSeed = v
	}

	if cfg.TransportSource == "live" && (cfg.TransportAppID == "" || cfg.TransportAppKey == "") {
		panic("TRANSPORT_SOURCE=live requires TRANSPORT_APP_ID and TRANSPORT_APP_KEY")
	}

	return cfg
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getfloat(k string, d float64) float64 {
	raw := os.Getenv(k)
	if raw == "" {
		return d
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using default", k, raw)
		return d
	}
	return v
}
