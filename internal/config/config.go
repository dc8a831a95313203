package config

import (
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
		Path string `yaml:"path"`
	} `yaml:"database"`

	Session struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"session"`

	Upload struct {
		Dir         string   `yaml:"dir"`
		MaxSize     int64    `yaml:"max_size"`
		AllowedExts []string `yaml:"allowed_exts"`
	} `yaml:"upload"`

	SMTP struct {
		Host       string `yaml:"host"`
		Port       int    `yaml:"port"`
		Username   string `yaml:"username"`
		Password   string `yaml:"password"`
		FromEmail  string `yaml:"from_email"`
		AdminEmail string `yaml:"admin_email"`
	} `yaml:"smtp"`
}

// Default returns the configuration used when no config file and no
// environment variables are present. Tests build on top of this.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"
	cfg.Database.Path = "site.db"
	cfg.Session.Secret = "change-me-in-production"
	cfg.Session.TTLHours = 24
	cfg.Upload.Dir = "web/static/uploads"
	cfg.Upload.MaxSize = 16 * 1024 * 1024 // 16MB max
	cfg.Upload.AllowedExts = []string{"png", "jpg", "jpeg", "gif"}
	return &cfg
}

// Load reads configuration from the YAML file at CONFIG_PATH (falling back
// to config/config.yaml), then applies environment variable overrides. A
// missing file is not an error: defaults plus environment win.
func Load() (*Config, error) {
	cfg := Default()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.Session.Secret = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.Upload.Dir = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = port
		}
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("SMTP_FROM_EMAIL"); v != "" {
		cfg.SMTP.FromEmail = v
	}
	if v := os.Getenv("SMTP_ADMIN_EMAIL"); v != "" {
		cfg.SMTP.AdminEmail = v
	}
}
