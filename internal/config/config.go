package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Media  MediaConfig  `toml:"media"`
	AI     AIConfig     `toml:"ai"`
	Auth   AuthConfig   `toml:"auth"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects the item/claim store driver. "firebase" talks to a
// hosted Realtime Database over REST; "local" uses an embedded sqlite file.
type StoreConfig struct {
	Driver      string `toml:"driver"`
	FirebaseURL string `toml:"firebase_url"`
	FirebaseKey string `toml:"firebase_auth_token"`
	Path        string `toml:"path"`
}

type MediaConfig struct {
	CloudName string `toml:"cloudinary_cloud_name"`
	APIKey    string `toml:"cloudinary_api_key"`
	APISecret string `toml:"cloudinary_api_secret"`
	Folder    string `toml:"folder"`
}

type AIConfig struct {
	Enabled         bool   `toml:"enabled"`
	GroqAPIKey      string `toml:"groq_api_key"`
	OpenAIAPIKey    string `toml:"openai_api_key"`
	SearchModel     string `toml:"search_model"`
	VisionModel     string `toml:"vision_model"`
	ModerationModel string `toml:"moderation_model"`
}

type AuthConfig struct {
	JWTSecret      string `toml:"jwt_secret"`
	TokenExpiryMin int    `toml:"token_expiry_min"`
	AdminUser      string `toml:"admin_user"`
	AdminHash      string `toml:"admin_password_hash"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8000",
		},
		Store: StoreConfig{
			Driver: "local",
			Path:   "data/lostfound.db",
		},
		Media: MediaConfig{
			Folder: "marvin_ridge_lf",
		},
		AI: AIConfig{
			Enabled:         true,
			SearchModel:     "llama-3.1-8b-instant",
			VisionModel:     "meta-llama/llama-4-scout-17b-16e-instruct",
			ModerationModel: "gpt-4o-mini",
		},
		Auth: AuthConfig{
			JWTSecret:      "change-me-in-production",
			TokenExpiryMin: 1440, // 24h
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
