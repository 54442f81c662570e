package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/ankihelper/pkg/models"
)

const (
	DefaultAnkiConnectURL = "http://127.0.0.1:8765"
	DefaultDeckName       = "Default"
	DefaultModel          = "gpt-4o"
	DefaultServerAddress  = ":8080"
	DefaultStaticDir      = "wwwroot"
	DefaultIndexFile      = "index.html"
)

// Environment variables that override the config file.
const (
	EnvOpenAIAPIKey   = "OPENAI_API_KEY"
	EnvOpenAIBaseURL  = "OPENAI_BASE_URL"
	EnvOpenAIModel    = "OPENAI_MODEL"
	EnvAnkiConnectURL = "ANKI_CONNECT_URL"
	EnvDeckName       = "DECK_NAME"
	EnvServerAddress  = "SERVER_ADDRESS"
	EnvStaticDir      = "STATIC_DIR"
)

var ErrMissingAPIKey = errors.New("OpenAI API key not found, set the " + EnvOpenAIAPIKey + " environment variable or openai.api_key in the config file")

type Config struct {
	AnkiConnectURL string `yaml:"anki_connect_url"`
	DeckName       string `yaml:"deck_name"`
	OpenAI         struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
	} `yaml:"openai"`
	Server struct {
		Address   string `yaml:"address"`
		StaticDir string `yaml:"static_dir"`
		IndexFile string `yaml:"index_file"`
	} `yaml:"server"`
}

// Load resolves the configuration once at startup. A .env file and the YAML
// file at path are both optional; environment variables win over the file and
// defaults fill whatever is left. The API key has no default.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// no file, env and defaults only
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if cfg.OpenAI.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	override(&c.OpenAI.APIKey, EnvOpenAIAPIKey)
	override(&c.OpenAI.BaseURL, EnvOpenAIBaseURL)
	override(&c.OpenAI.Model, EnvOpenAIModel)
	override(&c.AnkiConnectURL, EnvAnkiConnectURL)
	override(&c.DeckName, EnvDeckName)
	override(&c.Server.Address, EnvServerAddress)
	override(&c.Server.StaticDir, EnvStaticDir)
}

func (c *Config) applyDefaults() {
	if c.AnkiConnectURL == "" {
		c.AnkiConnectURL = DefaultAnkiConnectURL
	}
	if c.DeckName == "" {
		c.DeckName = DefaultDeckName
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = DefaultModel
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultServerAddress
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = DefaultStaticDir
	}
	if c.Server.IndexFile == "" {
		c.Server.IndexFile = DefaultIndexFile
	}
}

// Public is the part of the config the browser client is allowed to see.
func (c *Config) Public() models.PublicConfig {
	return models.PublicConfig{
		AnkiConnectURL: c.AnkiConnectURL,
		DeckName:       c.DeckName,
	}
}

func override(field *string, env string) {
	if v := os.Getenv(env); v != "" {
		*field = v
	}
}
