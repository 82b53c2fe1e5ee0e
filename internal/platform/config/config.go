package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FileName              = "config.yaml"
	DefaultListenAddr     = "127.0.0.1:7717"
	DefaultThreshold      = 20 * time.Minute
	DefaultSweepInterval  = 10 * time.Minute
	DefaultQueueCapacity  = 64
	DefaultNotifierKind   = "queue"
	DefaultChromeTimeout  = 5 * time.Second
	DefaultShutdownPeriod = 5 * time.Second
)

var DefaultDistracting = []string{
	"reddit.com",
	"facebook.com",
	"twitter.com",
	"youtube.com",
}

// Rule is the YAML shape of a URL pattern alert.
type Rule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
}

var DefaultRules = []Rule{
	{Name: "meeting", Pattern: `meet\.google\.com|zoom\.us`, Title: "Meeting detected", Message: "Would you like me to take notes?"},
	{Name: "mail", Pattern: `mail\.google\.com`, Title: "Gmail reminder", Message: "Don't forget to reply to the threads waiting on you."},
	{Name: "social", Pattern: `linkedin\.com`, Title: "LinkedIn check-in", Message: "Time to check in with your network."},
}

type Notifier struct {
	// Kinds is any combination of log, queue, command and plugin.
	Kinds         []string `yaml:"kinds"`
	Command       string   `yaml:"command"`
	Plugin        string   `yaml:"plugin"`
	QueueCapacity int      `yaml:"queue_capacity"`
}

type Chrome struct {
	// URL is a DevTools websocket or http endpoint; empty keeps the extension registry.
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Dir        string `yaml:"-"`
	DBPath     string `yaml:"-"`
	SocketPath string `yaml:"-"`
	PIDPath    string `yaml:"-"`
	LogPath    string `yaml:"-"`

	ListenAddr    string        `yaml:"listen"`
	LogLevel      string        `yaml:"log_level"`
	Distracting   []string      `yaml:"distracting"`
	Threshold     time.Duration `yaml:"threshold"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	Rules         []Rule        `yaml:"rules"`
	Notifier      Notifier      `yaml:"notifier"`
	Chrome        Chrome        `yaml:"chrome"`
	MobileDir     string        `yaml:"mobile_dir"`
}

// New resolves every path under dir and overlays dir/config.yaml when present.
func New(dir string) (Config, error) {
	if dir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		Dir:        dir,
		DBPath:     filepath.Join(dir, "lifeagent.db"),
		SocketPath: filepath.Join(dir, "daemon.sock"),
		PIDPath:    filepath.Join(dir, "daemon.pid"),
		LogPath:    filepath.Join(dir, "daemon.log"),
	}
	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultDir is $XDG_CONFIG_HOME/lifeagent, falling back to the working directory.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".lifeagent"
	}
	return filepath.Join(base, "lifeagent")
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if len(c.Distracting) == 0 {
		c.Distracting = append([]string(nil), DefaultDistracting...)
	}
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}
	if c.SweepInterval == 0 {
		c.SweepInterval = DefaultSweepInterval
	}
	if c.Rules == nil {
		c.Rules = append([]Rule(nil), DefaultRules...)
	}
	if len(c.Notifier.Kinds) == 0 {
		c.Notifier.Kinds = []string{"log", DefaultNotifierKind}
	}
	if c.Notifier.QueueCapacity <= 0 {
		c.Notifier.QueueCapacity = DefaultQueueCapacity
	}
	if c.Chrome.Timeout <= 0 {
		c.Chrome.Timeout = DefaultChromeTimeout
	}
}

func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must be positive")
	}
	if c.SweepInterval < time.Second {
		return fmt.Errorf("sweep_interval must be at least 1s")
	}
	for _, kind := range c.Notifier.Kinds {
		switch kind {
		case "log", "queue":
		case "command":
			if c.Notifier.Command == "" {
				return fmt.Errorf("notifier kind command requires notifier.command")
			}
		case "plugin":
			if c.Notifier.Plugin == "" {
				return fmt.Errorf("notifier kind plugin requires notifier.plugin")
			}
		default:
			return fmt.Errorf("unsupported notifier kind %q", kind)
		}
	}
	for _, rule := range c.Rules {
		if rule.Pattern == "" || rule.Title == "" {
			return fmt.Errorf("rule %q needs pattern and title", rule.Name)
		}
	}
	return nil
}
