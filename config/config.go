package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const EnvProduction = "production"

type Config struct {
	Port              string
	Env               string
	BaseURL           string
	ExecutablePath    string
	UserAgent         string
	Headless          bool
	LaunchTimeout     time.Duration
	NavigationTimeout time.Duration
	RenderTimeout     time.Duration
	MaxBrowsers       int
	ParallelTracks    bool
	LogLevel          string
}

func DefaultConfig() *Config {
	return &Config{
		Port:              "3000",
		Env:               "development",
		BaseURL:           "https://www.hackerrank.com/leaderboard",
		UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Headless:          true,
		LaunchTimeout:     30 * time.Second,
		NavigationTimeout: 60 * time.Second,
		RenderTimeout:     20 * time.Second,
		MaxBrowsers:       4,
		ParallelTracks:    false,
		LogLevel:          "info",
	}
}

// Load returns DefaultConfig overlaid with the process environment.
// A .env file in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("APP_ENV", getEnv("NODE_ENV", cfg.Env))
	cfg.BaseURL = getEnv("LEADERBOARD_URL", cfg.BaseURL)
	cfg.ExecutablePath = getEnv("CHROME_EXECUTABLE_PATH", getEnv("PUPPETEER_EXECUTABLE_PATH", ""))
	cfg.UserAgent = getEnv("USER_AGENT", cfg.UserAgent)
	cfg.Headless = getEnvAsBool("HEADLESS", cfg.Headless)
	cfg.LaunchTimeout = getEnvAsDuration("LAUNCH_TIMEOUT", cfg.LaunchTimeout)
	cfg.NavigationTimeout = getEnvAsDuration("NAVIGATION_TIMEOUT", cfg.NavigationTimeout)
	cfg.RenderTimeout = getEnvAsDuration("RENDER_TIMEOUT", cfg.RenderTimeout)
	cfg.MaxBrowsers = getEnvAsInt("MAX_BROWSERS", cfg.MaxBrowsers)
	cfg.ParallelTracks = getEnvAsBool("SCRAPE_PARALLEL", cfg.ParallelTracks)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	return cfg
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// BrowserPath is the Chrome binary to launch, empty meaning chromedp's own lookup.
func (c *Config) BrowserPath() string {
	if c.IsProduction() {
		return c.ExecutablePath
	}
	return ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("45s") or bare seconds ("45").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
