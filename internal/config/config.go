package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		ContactEmail string `yaml:"contact_email"` // contact-form recipient
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`

	Auth struct {
		JWKSURL         string   `yaml:"jwks_url"`
		Issuer          string   `yaml:"issuer"`
		Audience        string   `yaml:"audience"`
		ClaimsNamespace string   `yaml:"claims_namespace"`
		CacheTTLSeconds int      `yaml:"cache_ttl_seconds"`
		FetchTimeoutSec int      `yaml:"fetch_timeout_seconds"`
		OwnerIPs        []string `yaml:"owner_ips"`
	} `yaml:"auth"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the config from environment
// variables when DATABASE_URL is set (test/deploy mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
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

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))

	cfg.Auth.JWKSURL = os.Getenv("AUTH_JWKS_URL")
	cfg.Auth.Issuer = os.Getenv("AUTH_ISSUER")
	cfg.Auth.Audience = os.Getenv("AUTH_AUDIENCE")
	cfg.Auth.ClaimsNamespace = os.Getenv("AUTH_CLAIMS_NAMESPACE")
	if ips := os.Getenv("AUTH_OWNER_IPS"); ips != "" {
		cfg.Auth.OwnerIPs = strings.Split(ips, ",")
	}

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")
	cfg.Email.ContactEmail = os.Getenv("CONTACT_EMAIL")
	cfg.Email.TemplatesDir = os.Getenv("EMAIL_TEMPLATES_DIR")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Auth.CacheTTLSeconds == 0 {
		cfg.Auth.CacheTTLSeconds = 3600 // 1 hour, matches the provider's key rotation cadence
	}
	if cfg.Auth.FetchTimeoutSec == 0 {
		cfg.Auth.FetchTimeoutSec = 10
	}
	if cfg.Email.ContactEmail == "" {
		cfg.Email.ContactEmail = cfg.Email.FromEmail
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
