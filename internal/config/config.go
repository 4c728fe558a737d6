package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/domain"
	"marquee/internal/eventbus"
	"marquee/internal/scroll"
)

// CurrentVersion is the config file format version
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version           int                `toml:"version"`
	Direction         domain.Direction   `toml:"direction"`
	CycleDuration     Duration           `toml:"cycle_duration"`
	EndBehavior       domain.EndBehavior `toml:"end_behavior"`
	UserScrollEnabled bool               `toml:"user_scroll_enabled"`
	ResumeDelay       Duration           `toml:"resume_delay"`
	ItemsFile         string             `toml:"items_file,omitempty"` // default items file when none is given
	UISettings        UISettings         `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	FrameInterval Duration `toml:"frame_interval"`
	Separator     string   `toml:"separator"`
	ShowProgress  bool     `toml:"show_progress"`
	WatchItems    bool     `toml:"watch_items"`
}

// Duration is a time.Duration written as "30m", "3s" in the config file
type Duration time.Duration

// D returns the value as a time.Duration
func (d Duration) D() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	*d = Duration(parsed)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns <user config dir>/marquee/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "marquee", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for path, publishing to bus when non-nil
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, bus: bus}
}

// Path returns the file the service loads and saves
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Missing keys keep their defaults
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported config version %d", domain.ErrInvalidConfig, c.Version)
	}
	if c.UISettings.FrameInterval.D() < time.Millisecond || c.UISettings.FrameInterval.D() > time.Second {
		return fmt.Errorf("%w: frame interval %s outside 1ms..1s", domain.ErrInvalidConfig, c.UISettings.FrameInterval)
	}
	return c.DriverOptions().Validate()
}

// DriverOptions maps the config onto scroll driver options
func (c *Config) DriverOptions() scroll.Options {
	opts := scroll.DefaultOptions()
	opts.Direction = c.Direction
	opts.CycleDuration = c.CycleDuration.D()
	opts.EndBehavior = c.EndBehavior
	opts.UserScrollEnabled = c.UserScrollEnabled
	opts.ResumeDelay = c.ResumeDelay.D()
	return opts
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:           CurrentVersion,
		Direction:         domain.Forward,
		CycleDuration:     Duration(scroll.DefaultCycleDuration),
		EndBehavior:       domain.PingPong,
		UserScrollEnabled: true,
		ResumeDelay:       Duration(scroll.DefaultResumeDelay),
		UISettings: UISettings{
			FrameInterval: Duration(33 * time.Millisecond),
			Separator:     " • ",
			ShowProgress:  true,
			WatchItems:    true,
		},
	}
}
