package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Settings struct {
	Server   ServerSettings
	LLM      LLMSettings
	Exercise ExerciseSettings
	Teach    TeachSettings
	CORS     CORSSettings
	Log      LogSettings
}

type ServerSettings struct {
	Addr            string        `env:"SERVER_ADDR"             env-default:":8000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LLMSettings selects the completion provider. Only the key for the chosen
// provider is needed.
type LLMSettings struct {
	Provider     string        `env:"LLM_PROVIDER"      env-default:"openai"`
	Model        string        `env:"LLM_MODEL"`
	Timeout      time.Duration `env:"LLM_TIMEOUT"       env-default:"20s"`
	OpenAIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIURL    string        `env:"OPENAI_BASE_URL"`
	GeminiKey    string        `env:"GEMINI_API_KEY"`
	GeminiURL    string        `env:"GEMINI_BASE_URL"`
	AnthropicKey string        `env:"ANTHROPIC_API_KEY"`
	AnthropicURL string        `env:"ANTHROPIC_BASE_URL"`
}

func (s LLMSettings) APIKey() string {
	switch strings.ToLower(s.Provider) {
	case "gemini":
		return s.GeminiKey
	case "anthropic":
		return s.AnthropicKey
	default:
		return s.OpenAIKey
	}
}

func (s LLMSettings) BaseURL() string {
	switch strings.ToLower(s.Provider) {
	case "gemini":
		return s.GeminiURL
	case "anthropic":
		return s.AnthropicURL
	default:
		return s.OpenAIURL
	}
}

type ExerciseSettings struct {
	// StrictCount rejects generated sets that do not hold exactly ten
	// records instead of only logging them.
	StrictCount bool `env:"STRICT_EXERCISE_COUNT" env-default:"false"`
}

type TeachSettings struct {
	ChatMode string `env:"TEACH_CHAT_MODE" env-default:"structured"`
}

type CORSSettings struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"           env-default:"300"`
}

type LogSettings struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads a local .env file when present, then the process
// environment. Settings are loaded once at startup.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	var s Settings
	if err := cleanenv.ReadEnv(&s); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	var errs []error

	switch strings.ToLower(s.LLM.Provider) {
	case "openai", "gemini", "anthropic":
	default:
		errs = append(errs, fmt.Errorf("LLM_PROVIDER must be openai, gemini or anthropic, got %q", s.LLM.Provider))
	}

	if s.LLM.Timeout <= 0 {
		errs = append(errs, errors.New("LLM_TIMEOUT must be positive"))
	}

	switch s.Teach.ChatMode {
	case "structured", "plain":
	default:
		errs = append(errs, fmt.Errorf("TEACH_CHAT_MODE must be structured or plain, got %q", s.Teach.ChatMode))
	}

	return errors.Join(errs...)
}
