package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Service struct {
	URL      string        `mapstructure:"url"`
	Language string        `mapstructure:"language"`
	Timeout  time.Duration `mapstructure:"timeout"`
}
type Services struct {
	ASR Service `mapstructure:"asr"`
}
type Server struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxUploadMB    int64         `mapstructure:"max_upload_mb"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}
type Auth struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}
type Store struct {
	Driver string `mapstructure:"driver"`
	File   struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"file"`
	SQLite struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"sqlite"`
	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
}
type Scoring struct {
	PhraseFillers bool `mapstructure:"phrase_fillers"`
}
type Root struct {
	Pipeline struct {
		Name      string `mapstructure:"name"`
		Version   string `mapstructure:"version"`
		LogLvl    string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"`
	} `mapstructure:"pipeline"`
	Server   Server   `mapstructure:"server"`
	Services Services `mapstructure:"services"`
	Auth     Auth     `mapstructure:"auth"`
	Store    Store    `mapstructure:"store"`
	Scoring  Scoring  `mapstructure:"scoring"`
}

const EnvPrefix = "SPEAKWISE"

var Drivers = []string{"none", "file", "sqlite", "redis"}

func defaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "speakwise")
	v.SetDefault("pipeline.version", "0.1.0")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("pipeline.log_format", "text")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)
	v.SetDefault("server.max_upload_mb", 25)
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:3000",
		"http://localhost:5173",
	})

	v.SetDefault("services.asr.url", "http://localhost:8002")
	v.SetDefault("services.asr.language", "en-US")
	v.SetDefault("services.asr.timeout", 60*time.Second)

	v.SetDefault("auth.jwt_secret", "")

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.file.dir", filepath.Join("outputs", "reports"))
	v.SetDefault("store.sqlite.path", filepath.Join("data", "reports.db"))
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.ttl", time.Duration(0))

	v.SetDefault("scoring.phrase_fillers", false)
}

// Load reads config/<CONFIG_ENV>/config.yaml (or ./config.yaml) when present.
// An explicit path must exist. Environment variables such as
// SPEAKWISE_SERVER_PORT override any file value.
func Load(path string) (*Root, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		env := os.Getenv("CONFIG_ENV")
		if env == "" {
			env = "dev"
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join("config", env))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks what serve needs before it binds a port.
func (c *Root) Validate() error {
	known := false
	for _, d := range Drivers {
		if c.Store.Driver == d {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("store.driver %q: want one of %s", c.Store.Driver, strings.Join(Drivers, ", "))
	}
	if c.Services.ASR.URL == "" {
		return errors.New("services.asr.url is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive")
	}
	return nil
}

func (c *Root) Addr() string { return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port) }

func (c *Root) MaxUploadBytes() int64 { return c.Server.MaxUploadMB << 20 }
