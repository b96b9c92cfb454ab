package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCP   Mode = "gcp"
)

// LLM providers.
const (
	ProviderMock   = "mock"
	ProviderGemini = "gemini" // Gemini API, API key
	ProviderVertex = "vertex" // Vertex AI, project + location
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	LLM       LLMConfig       `yaml:"llm"`
	Assets    AssetsConfig    `yaml:"assets"`
	Session   SessionConfig   `yaml:"session"`
	Reminders RemindersConfig `yaml:"reminders"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Assets.Validate(); err != nil {
		return fmt.Errorf("assets: %w", err)
	}
	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

type AppConfig struct {
	Mode     Mode       `yaml:"mode"`
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

func (c *AppConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(ModeLocal, ModeGCP)),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"api_key"`
	Project     string  `yaml:"project"`
	Location    string  `yaml:"location"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

func (c *LLMConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Provider, validation.Required, validation.In(ProviderMock, ProviderGemini, ProviderVertex)),
		validation.Field(&c.APIKey, validation.When(c.Provider == ProviderGemini, validation.Required)),
		validation.Field(&c.Project, validation.When(c.Provider == ProviderVertex, validation.Required)),
		validation.Field(&c.Location, validation.When(c.Provider == ProviderVertex, validation.Required)),
		validation.Field(&c.Model, validation.When(c.Provider != ProviderMock, validation.Required)),
		validation.Field(&c.Temperature, validation.Min(float32(0)), validation.Max(float32(2))),
	)
}

// AssetsConfig controls where theme images may be loaded from.
// Local custom backgrounds are only read from inside RootDir.
type AssetsConfig struct {
	RootDir     string        `yaml:"root_dir"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	MaxBytes    int64         `yaml:"max_bytes"`
}

func (c *AssetsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RootDir, validation.Required),
		validation.Field(&c.HTTPTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.MaxBytes, validation.Required, validation.Min(int64(1))),
	)
}

type SessionConfig struct {
	IdleTTL         time.Duration `yaml:"idle_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

func (c *SessionConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.IdleTTL, validation.Required, validation.Min(time.Minute)),
		validation.Field(&c.CleanupInterval, validation.Required, validation.Min(time.Second)),
	)
}

type RemindersConfig struct {
	Enabled bool `yaml:"enabled"`
}

// NewDefault returns a Config suitable for local development.
func NewDefault() *Config {
	return &Config{
		App: AppConfig{
			Mode:     ModeLocal,
			LogLevel: slog.LevelInfo,
			HTTP:     HTTPConfig{Port: 8080},
		},
		LLM: LLMConfig{
			Provider:    ProviderMock,
			Location:    "us-central1",
			Model:       "gemini-2.5-flash",
			Temperature: 0.7,
		},
		Assets: AssetsConfig{
			RootDir:     "./backgrounds",
			HTTPTimeout: 10 * time.Second,
			MaxBytes:    10 << 20,
		},
		Session: SessionConfig{
			IdleTTL:         time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Reminders: RemindersConfig{Enabled: true},
	}
}

// Load builds the config from defaults, an optional YAML file and
// LIFEGUIDE_* environment variables, in that order, then validates it.
func Load(filename string) (*Config, error) {
	cfg := NewDefault()

	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			if err := LoadFile(filename, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LIFEGUIDE_MODE"); v != "" {
		c.App.Mode = Mode(strings.ToLower(v))
	}

	c.App.HTTP.Port = getIntEnv("LIFEGUIDE_PORT", c.App.HTTP.Port)
	if v := os.Getenv("LIFEGUIDE_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			c.App.LogLevel = lvl
		}
	}

	c.LLM.Provider = getEnv("LIFEGUIDE_LLM_PROVIDER", c.LLM.Provider)
	c.LLM.APIKey = getEnv("LIFEGUIDE_AI_API_KEY", c.LLM.APIKey)
	c.LLM.Project = getEnv("LIFEGUIDE_GCP_PROJECT", c.LLM.Project)
	c.LLM.Location = getEnv("LIFEGUIDE_GCP_LOCATION", c.LLM.Location)
	c.LLM.Model = getEnv("LIFEGUIDE_MODEL_NAME", c.LLM.Model)

	// gcp mode talks to Vertex unless a provider was chosen explicitly
	if c.App.Mode == ModeGCP && os.Getenv("LIFEGUIDE_LLM_PROVIDER") == "" && c.LLM.Provider == ProviderMock {
		c.LLM.Provider = ProviderVertex
	}
	if getBoolEnv("LIFEGUIDE_USE_MOCK_LLM", false) {
		c.LLM.Provider = ProviderMock
	}

	c.Assets.RootDir = getEnv("LIFEGUIDE_ASSETS_DIR", c.Assets.RootDir)
	c.Session.IdleTTL = getDurationEnv("LIFEGUIDE_SESSION_TTL", c.Session.IdleTTL)
	c.Reminders.Enabled = getBoolEnv("LIFEGUIDE_REMINDERS_ENABLED", c.Reminders.Enabled)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func getIntEnv(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
