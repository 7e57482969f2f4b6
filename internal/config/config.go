package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

type Config struct {
	Env       string
	Server    ServerConfig
	Logger    LoggerConfig
	AI        AIConfig
	CORS      CORSConfig
	Wikipedia WikipediaConfig
	Redis     RedisConfig
	CacheTTLs CacheTTLConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoggerConfig is consumed by logger.Initialize.
type LoggerConfig struct {
	Level string
	Env   string
}

type AIConfig struct {
	Provider string
	Timeout  time.Duration
	OpenAI   ProviderConfig
	Gemini   ProviderConfig
}

type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type WikipediaConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheTTLConfig struct {
	Topic time.Duration
}

// envBindings maps config keys to the environment variables that may set them.
// The first variable found wins.
var envBindings = map[string][]string{
	"app.env":              {"APP_ENV"},
	"server.port":          {"PORT", "SERVER_PORT"},
	"server.idle_timeout":  {"SERVER_IDLE_TIMEOUT"},
	"logger.level":         {"LOG_LEVEL"},
	"ai.provider":          {"AI_PROVIDER"},
	"ai.timeout":           {"AI_TIMEOUT"},
	"ai.openai.api_key":    {"OPENAI_API_KEY"},
	"ai.openai.model":      {"OPENAI_MODEL"},
	"ai.openai.base_url":   {"OPENAI_BASE_URL"},
	"ai.gemini.api_key":    {"GEMINI_API_KEY"},
	"ai.gemini.model":      {"GEMINI_MODEL"},
	"ai.gemini.base_url":   {"GEMINI_BASE_URL"},
	"cors.allowed_origins": {"ALLOWED_ORIGINS"},
	"wikipedia.base_url":   {"WIKIPEDIA_BASE_URL"},
	"wikipedia.timeout":    {"WIKIPEDIA_TIMEOUT"},
	"redis.address":        {"REDIS_ADDRESS"},
	"redis.password":       {"REDIS_PASSWORD"},
	"redis.db":             {"REDIS_DB"},
	"cache_ttls.topic":     {"CACHE_TOPIC_TTL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("logger.level", "info")
	v.SetDefault("ai.provider", ProviderOpenAI)
	v.SetDefault("ai.timeout", 20*time.Second)
	v.SetDefault("ai.openai.model", "gpt-3.5-turbo")
	v.SetDefault("ai.gemini.model", "gemini-2.0-flash")
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("wikipedia.base_url", "https://en.wikipedia.org/api/rest_v1/page/summary")
	v.SetDefault("wikipedia.user_agent", "StudyHelperAI/1.0")
	v.SetDefault("wikipedia.timeout", 10*time.Second)
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache_ttls.topic", 24*time.Hour)
}

// LoadConfig reads config.yaml from the usual places if present, then applies
// environment overrides. A missing file is not an error: defaults describe a
// mock-only service that needs no credentials.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	cfg := &Config{
		Env: v.GetString("app.env"),
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
		},
		AI: AIConfig{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("ai.provider"))),
			Timeout:  v.GetDuration("ai.timeout"),
			OpenAI: ProviderConfig{
				APIKey:  v.GetString("ai.openai.api_key"),
				Model:   v.GetString("ai.openai.model"),
				BaseURL: v.GetString("ai.openai.base_url"),
			},
			Gemini: ProviderConfig{
				APIKey:  v.GetString("ai.gemini.api_key"),
				Model:   v.GetString("ai.gemini.model"),
				BaseURL: v.GetString("ai.gemini.base_url"),
			},
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
		},
		Wikipedia: WikipediaConfig{
			BaseURL:   strings.TrimRight(v.GetString("wikipedia.base_url"), "/"),
			UserAgent: v.GetString("wikipedia.user_agent"),
			Timeout:   v.GetDuration("wikipedia.timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			Topic: v.GetDuration("cache_ttls.topic"),
		},
	}
	cfg.Logger = LoggerConfig{
		Level: v.GetString("logger.level"),
		Env:   cfg.Env,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail later at startup. An
// unknown AI provider is not an error: the service then runs on mock content.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	return nil
}

// IsDevelopment reports whether error details may be exposed to callers.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// HasCache reports whether a Redis address was configured.
func (c *Config) HasCache() bool {
	return c.Redis.Address != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
