package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Paths  PathsConfig  `yaml:"paths"`
	Gmail  GmailConfig  `yaml:"gmail"`
	Render RenderConfig `yaml:"render"`
	Batch  BatchConfig  `yaml:"batch"`
}

// PathsConfig holds the filesystem layout: where the master file lives, where
// generated passes land, and where templates/assets/credentials are read from.
type PathsConfig struct {
	MasterFile     string `yaml:"master_file"`
	OutputDir      string `yaml:"output_dir"`
	AssetsDir      string `yaml:"assets_dir"`
	TemplatesDir   string `yaml:"templates_dir"`
	CredentialsDir string `yaml:"credentials_dir"`
}

// GmailConfig holds OAuth client credentials and send settings.
type GmailConfig struct {
	ClientID       string `yaml:"client_id"`
	ClientSecret   string `yaml:"client_secret"`
	TokenFile      string `yaml:"token_file"`
	DelegateEmail  string `yaml:"delegate_email"`
	DiamondSubject string `yaml:"diamond_subject"`
	CodeSubject    string `yaml:"code_subject"`
}

// RenderConfig holds PDF conversion settings for the headless browser.
type RenderConfig struct {
	ChromeBin     string `yaml:"chrome_bin"`
	SettleDelayMs int    `yaml:"settle_delay_ms"`
}

// SettleDelay returns the configured render settle delay as a duration.
func (c RenderConfig) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

// BatchConfig holds the branch decision threshold.
type BatchConfig struct {
	DiamondMaxVehicles int `yaml:"diamond_max_vehicles"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Paths.MasterFile == "" {
		cfg.Paths.MasterFile = "master_file.csv"
	}
	if cfg.Paths.OutputDir == "" {
		cfg.Paths.OutputDir = "diamond-passes"
	}
	if cfg.Paths.AssetsDir == "" {
		cfg.Paths.AssetsDir = "assets"
	}
	if cfg.Paths.TemplatesDir == "" {
		cfg.Paths.TemplatesDir = "templates"
	}
	if cfg.Paths.CredentialsDir == "" {
		cfg.Paths.CredentialsDir = "credentials"
	}
	if cfg.Gmail.TokenFile == "" {
		cfg.Gmail.TokenFile = filepath.Join(cfg.Paths.CredentialsDir, "token.json")
	}
	if cfg.Gmail.DelegateEmail == "" {
		cfg.Gmail.DelegateEmail = "idcard@nd.edu"
	}
	if cfg.Gmail.DiamondSubject == "" {
		cfg.Gmail.DiamondSubject = "Diamond Parking Pass"
	}
	if cfg.Gmail.CodeSubject == "" {
		cfg.Gmail.CodeSubject = "ParkMobile Access Code"
	}
	if cfg.Render.SettleDelayMs == 0 {
		cfg.Render.SettleDelayMs = 1000
	}
	if cfg.Batch.DiamondMaxVehicles == 0 {
		cfg.Batch.DiamondMaxVehicles = 10
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so OAuth secrets can live in .env locally and in real env vars elsewhere.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if v := os.Getenv("GMAIL_CLIENT_ID"); v != "" {
		cfg.Gmail.ClientID = v
	}
	if v := os.Getenv("GMAIL_CLIENT_SECRET"); v != "" {
		cfg.Gmail.ClientSecret = v
	}
	if v := os.Getenv("GMAIL_DELEGATE_EMAIL"); v != "" {
		cfg.Gmail.DelegateEmail = v
	}
	if v := os.Getenv("GMAIL_TOKEN_FILE"); v != "" {
		cfg.Gmail.TokenFile = v
	}
	if v := os.Getenv("GUESTPASS_MASTER_FILE"); v != "" {
		cfg.Paths.MasterFile = v
	}
	if v := os.Getenv("GUESTPASS_OUTPUT_DIR"); v != "" {
		cfg.Paths.OutputDir = v
	}
	if v := os.Getenv("CHROME_BIN"); v != "" {
		cfg.Render.ChromeBin = v
	}

	return cfg, nil
}
