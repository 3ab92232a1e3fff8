package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Words     WordsConfig     `mapstructure:"words"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Server    ServerConfig    `mapstructure:"server"`
	Clues     CluesConfig     `mapstructure:"clues"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type GeneratorConfig struct {
	MaxAttempts            int   `mapstructure:"max_attempts" validate:"min=1,max=1000"`
	MaxConsecutiveFailures int   `mapstructure:"max_consecutive_failures" validate:"min=1,max=1000"`
	Seed                   int64 `mapstructure:"seed"`
}

// Word sources
const (
	WordSourceEmbedded = "embedded"
	WordSourceYAML     = "yaml"
	WordSourceDatabase = "database"
)

type WordsConfig struct {
	Source      string   `mapstructure:"source" validate:"oneof=embedded yaml database"`
	Directories []string `mapstructure:"directories"`
	Files       []string `mapstructure:"files" validate:"dive,file"`
}

// Database drivers
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Path            string            `mapstructure:"path"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// Puzzle storages
const (
	StorageMemory   = "memory"
	StorageDatabase = "database"
)

type ServerConfig struct {
	Port      int             `mapstructure:"port" validate:"min=1,max=65535"`
	Storage   string          `mapstructure:"storage" validate:"oneof=memory database"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	GeneratePerMinute int `mapstructure:"generate_per_minute" validate:"min=0"`
}

// Clue providers
const (
	ClueProviderOpenAI   = "openai"
	ClueProviderGemini   = "gemini"
	ClueProviderWordsAPI = "wordsapi"
)

type CluesConfig struct {
	Provider string         `mapstructure:"provider" validate:"omitempty,oneof=openai gemini wordsapi"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	WordsAPI WordsAPIConfig `mapstructure:"wordsapi"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Project string `mapstructure:"project"`
	Region  string `mapstructure:"region"`
	Model   string `mapstructure:"model"`
}

type WordsAPIConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
	Host           string `mapstructure:"host"`
	Key            string `mapstructure:"key"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory"`
	// Template is a text/template for printed puzzles. The bundled template is used when empty.
	Template string `mapstructure:"template"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/crossword")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("generator.max_attempts", 35)
	v.SetDefault("generator.max_consecutive_failures", 15)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("words.source", WordSourceEmbedded)
	v.SetDefault("words.directories", []string{filepath.Join("words")})
	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "crossword")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.path", filepath.Join("data", "crossword.db"))
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.storage", StorageMemory)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.rate_limit.generate_per_minute", 30)
	v.SetDefault("clues.openai.model", "gpt-4o-mini")
	v.SetDefault("clues.gemini.model", "gemini-2.5-flash")
	v.SetDefault("clues.gemini.region", "us-central1")
	v.SetDefault("clues.wordsapi.cache_directory", filepath.Join("dictionaries", "wordsapi"))
	v.SetDefault("outputs.directory", "outputs")

	// Secrets are bound to environment variables so they can stay out of the config file
	for key, env := range map[string]string{
		"clues.openai.api_key": "OPENAI_API_KEY",
		"clues.gemini.api_key": "GEMINI_API_KEY",
		"clues.wordsapi.host":  "RAPID_API_HOST",
		"clues.wordsapi.key":   "RAPID_API_KEY",
		"database.password":    "DB_PASSWORD",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
