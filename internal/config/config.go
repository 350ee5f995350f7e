package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		// Driver: memory, postgres or mysql
		Driver string `yaml:"driver"`
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	Auth struct {
		// Shared secret for tokens issued by the auth provider.
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`

	Assistant struct {
		APIKey         string `yaml:"api_key"`
		Model          string `yaml:"model"`
		MaxTokens      int    `yaml:"max_tokens"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"assistant"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Contact struct {
		Phone    string `yaml:"phone"`
		WhatsApp string `yaml:"whatsapp"`
	} `yaml:"contact"`

	Matching struct {
		// Interval between matching-worker sweeps, in seconds.
		SweepSeconds int `yaml:"sweep_seconds"`
	} `yaml:"matching"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the config from environment
// variables when DATABASE_DRIVER is set (test mode).
func LoadConfig() {
	var cfg Config

	driver := os.Getenv("DATABASE_DRIVER")

	if driver == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.Driver = driver
	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Assistant.APIKey = os.Getenv("OPENAI_API_KEY")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "memory"
	}
	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = "gpt-4o-mini"
	}
	if cfg.Assistant.MaxTokens == 0 {
		cfg.Assistant.MaxTokens = 400
	}
	if cfg.Assistant.TimeoutSeconds == 0 {
		cfg.Assistant.TimeoutSeconds = 15
	}
	if cfg.Contact.Phone == "" {
		cfg.Contact.Phone = "+91 98765 43210"
	}
	if cfg.Contact.WhatsApp == "" {
		cfg.Contact.WhatsApp = "https://wa.me/919876543210"
	}
	if cfg.Matching.SweepSeconds == 0 {
		cfg.Matching.SweepSeconds = 300
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "SevakAI"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
