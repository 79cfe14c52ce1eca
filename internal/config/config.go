// Package config
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address   string `yaml:"address"`
	ServerURL string `yaml:"server_url"`
	Mode      string `yaml:"mode"`

	CollectInterval time.Duration `yaml:"collect_interval"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	PublishTimeout  time.Duration `yaml:"publish_timeout"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout"`

	ProcRoot       string   `yaml:"proc_root"`
	HostName       string   `yaml:"host_name"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	MetricsAddress string   `yaml:"metrics_address"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

const (
	ModePublish  = "publish"
	ModeStream   = "stream"
	ModeSnapshot = "snapshot"
)

const UnknownHost = "unknown_host"

func Default() *Config {
	return &Config{
		Address:         ":50051",
		ServerURL:       "http://localhost:50051",
		Mode:            ModePublish,
		CollectInterval: 3 * time.Second,
		PollInterval:    2 * time.Second,
		PublishTimeout:  2 * time.Second,
		FetchTimeout:    2 * time.Second,
		ProcRoot:        "/proc",
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads .env, then the optional YAML file named by MONITOR_CONFIG, then
// the process environment. Later sources win.
func Load() *Config {
	godotenv.Load()

	cfg := Default()

	if path := os.Getenv("MONITOR_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "WARN: %v\n", err)
		}
	}

	cfg.applyEnv()

	if cfg.HostName == "" {
		cfg.HostName = hostIdentity()
	}

	return cfg
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() {
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		c.Address = addr
	}

	if url := os.Getenv("SERVER_URL"); url != "" {
		c.ServerURL = strings.TrimRight(url, "/")
	}

	if mode := os.Getenv("MODE"); mode != "" {
		c.Mode = mode
	}

	c.CollectInterval = envDuration("COLLECT_INTERVAL", c.CollectInterval)
	c.PollInterval = envDuration("POLL_INTERVAL", c.PollInterval)
	c.PublishTimeout = envDuration("PUBLISH_TIMEOUT", c.PublishTimeout)
	c.FetchTimeout = envDuration("FETCH_TIMEOUT", c.FetchTimeout)

	if root := os.Getenv("PROC_ROOT"); root != "" {
		c.ProcRoot = root
	}

	if host := os.Getenv("MONITOR_HOST"); host != "" {
		c.HostName = host
	}

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		c.AllowedOrigins = c.AllowedOrigins[:0]
		for origin := range strings.SplitSeq(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, origin)
			}
		}
	}

	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		c.MetricsAddress = addr
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		c.LogFormat = format
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
		return parsed
	}

	return fallback
}

// hostIdentity is resolved once at startup and never refreshed.
func hostIdentity() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return UnknownHost
}
