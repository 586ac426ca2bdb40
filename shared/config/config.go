package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Port        int      `yaml:"port" validate:"min=1,max=65535"`
	LogLevel    string   `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON     bool     `yaml:"log_json"`
	CorsOrigins []string `yaml:"cors_origins"`
	Pg          Pg       `yaml:"pg"`
}

type Pg struct {
	Host            string        `yaml:"host" validate:"required"`
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	User            string        `yaml:"user" validate:"required"`
	Password        string        `yaml:"password"`
	Dbname          string        `yaml:"dbname" validate:"required"`
	SSLMode         string        `yaml:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// Default returns the configuration used when neither a file nor env vars say otherwise.
func Default() *Config {
	return &Config{
		Port:        8080,
		LogLevel:    "info",
		CorsOrigins: []string{"*"},
		Pg: Pg{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Dbname:          "boardlog",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
			ConnMaxIdleTime: 1 * time.Minute,
		},
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DSN builds a postgres:// URL for lib/pq. Every component is escaped, so
// empty passwords and values with spaces or quotes survive parsing.
func (p Pg) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     "/" + p.Dbname,
		RawQuery: url.Values{"sslmode": {p.SSLMode}}.Encode(),
	}
	return u.String()
}

// Load reads the optional yaml file at configPath (empty means none), applies env
// overrides on top and validates the result.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		configFile, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("can't read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(configFile, cfg); err != nil {
			return nil, fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

type lookupFunc func(key string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", key, v)
		}
		*dst = n
		return nil
	}

	str("DB_HOST", &cfg.Pg.Host)
	str("DB_USER", &cfg.Pg.User)
	str("DB_PASSWORD", &cfg.Pg.Password)
	str("DB_NAME", &cfg.Pg.Dbname)
	str("DB_SSLMODE", &cfg.Pg.SSLMode)
	str("LOG_LEVEL", &cfg.LogLevel)

	for key, dst := range map[string]*int{
		"DB_PORT":           &cfg.Pg.Port,
		"DB_MAX_OPEN_CONNS": &cfg.Pg.MaxOpenConns,
		"PORT":              &cfg.Port,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}

	if v, ok := lookup("LOG_JSON"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LOG_JSON must be a boolean, got %q", v)
		}
		cfg.LogJSON = b
	}

	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CorsOrigins = origins
	}

	// keep idle conns within the open cap
	if cfg.Pg.MaxIdleConns > cfg.Pg.MaxOpenConns {
		cfg.Pg.MaxIdleConns = cfg.Pg.MaxOpenConns
	}
	return nil
}
