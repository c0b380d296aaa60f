package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	LogLevel    string

	DBType   string
	DBHost   string
	DBPort   string
	DBName   string
	DBUser   string
	DBPassword string
	DBSSLMode  string
	SQLitePath string

	DefaultCurrency string

	// Device-pixel scale factors used by the raster export path.
	PDFCaptureScale  float64
	JPEGCaptureScale float64
	JPEGQuality      int
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "inkvoice"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		DBType:     normalizeDBType(getenv("DATABASE_TYPE", DBTypeSQLite)),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "inkvoice"),
		DBUser:     getenv("DATABASE_USER", "inkvoice"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),
		SQLitePath: getenv("DATABASE_SQLITE_PATH", "inkvoice.db"),

		DefaultCurrency: strings.ToUpper(getenv("DEFAULT_CURRENCY", "USD")),

		PDFCaptureScale:  getenvFloat("EXPORT_PDF_SCALE", 2.0),
		JPEGCaptureScale: getenvFloat("EXPORT_JPEG_SCALE", 1.5),
		JPEGQuality:      getenvInt("EXPORT_JPEG_QUALITY", 90),
	}
}

const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

func normalizeDBType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case DBTypePostgres:
		return DBTypePostgres
	default:
		return DBTypeSQLite
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}
