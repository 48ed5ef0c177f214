// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/acollard/mp-register/internal/extract"
)

// Config holds all application configuration loaded from environment
// variables. The reporting-period bounds and annualization divisors are
// configuration rather than constants because they change with each register
// year.
type Config struct {
	IndexURL string
	BaseURL  string

	DataDir    string
	RosterPath string

	PeriodStart    time.Time
	PeriodEnd      time.Time
	DaysPerMonth   float64
	DaysPerQuarter float64

	UseBrowser   bool
	ChromeBin    string
	FetchWaitMs  int
	RateLimitMs  int
	FetchTimeout time.Duration

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file (when present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		IndexURL: getEnv("REGISTER_INDEX_URL",
			"https://publications.parliament.uk/pa/cm/cmregmem/220503/contents.htm"),
		BaseURL: getEnv("REGISTER_BASE_URL",
			"https://publications.parliament.uk/pa/cm/cmregmem/220503/"),

		DataDir:    getEnv("DATA_DIR", "~/.local/share/mp-register"),
		RosterPath: getEnv("ROSTER_PATH", "./mps.csv"),

		PeriodStart:    getEnvDate("PERIOD_START", time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC)),
		PeriodEnd:      getEnvDate("PERIOD_END", time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC)),
		DaysPerMonth:   getEnvFloat("DAYS_PER_MONTH", 30.4),
		DaysPerQuarter: getEnvFloat("DAYS_PER_QUARTER", 91.3),

		UseBrowser:   getEnvBool("USE_BROWSER", false),
		ChromeBin:    getEnv("CHROME_BIN", ""),
		FetchWaitMs:  getEnvInt("FETCH_WAIT_MS", 10000),
		RateLimitMs:  getEnvInt("RATE_LIMIT_MS", 2000),
		FetchTimeout: time.Duration(getEnvInt("FETCH_TIMEOUT_MS", 30000)) * time.Millisecond,

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "register"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:       getEnv("POSTGRES_DB", "mp_register"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// Extract returns the reporting-period configuration for the extractor.
func (c *Config) Extract() extract.Config {
	return extract.Config{
		PeriodStart:    c.PeriodStart,
		PeriodEnd:      c.PeriodEnd,
		DaysPerMonth:   c.DaysPerMonth,
		DaysPerQuarter: c.DaysPerQuarter,
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDate(key string, fallback time.Time) time.Time {
	if val := os.Getenv(key); val != "" {
		t, err := time.Parse(time.DateOnly, val)
		if err == nil {
			return t
		}
		fmt.Fprintf(os.Stderr, "[config] ignoring malformed %s=%q (want YYYY-MM-DD)\n", key, val)
	}
	return fallback
}
