package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// envPrefix namespaces environment overrides, e.g. BLOG_DB_PATH.
const envPrefix = "BLOG"

// Config holds all application configuration.
type Config struct {
	Port  string      `mapstructure:"port"`
	DB    DBConfig    `mapstructure:"db"`
	Log   LogConfig   `mapstructure:"log"`
	Auth  AuthConfig  `mapstructure:"auth"`
	Admin AdminConfig `mapstructure:"admin"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`
}

// AdminConfig describes the bootstrap admin account. Empty Email disables seeding.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

var ErrMissingSigningKey = errors.New("auth.signing_key is required")

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "blog.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")
}

// Load reads config.yml from the first matching path, then applies BLOG_*
// environment overrides. A missing file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return ErrMissingSigningKey
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d], got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	return nil
}

// String returns a representation safe for logs (secrets masked).
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %s, DB: %s, Log: %s, TokenTTL: %s, SigningKey: ***, Admin: %q}",
		c.Port, c.DB.Path, c.Log.Level, c.Auth.TokenTTL, c.Admin.Email)
}
