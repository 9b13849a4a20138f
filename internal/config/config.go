package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"dosedit/internal/domain"
	"dosedit/internal/eventbus"
)

const (
	currentVersion  = 1
	defaultTabWidth = 4
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Editor     EditorSettings `toml:"editor"`
	Search     SearchSettings `toml:"search"`
	UISettings UISettings     `toml:"ui"`
}

// EditorSettings controls the text area
type EditorSettings struct {
	TabWidth       int  `toml:"tab_width"`
	StartInPreview bool `toml:"start_in_preview"`
}

// SearchSettings holds the find dialog defaults
type SearchSettings struct {
	MatchCase bool   `toml:"match_case"`
	MatchWord bool   `toml:"match_word"`
	Locale    string `toml:"locale"` // BCP 47 tag used for case folding, empty for the Unicode default
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutosaveOnExit bool `toml:"autosave_on_exit"`
	ShowHelpBar    bool `toml:"show_help_bar"`
}

// Options returns the remembered search options as a domain value
func (s SearchSettings) Options() domain.SearchSettings {
	return domain.SearchSettings{MatchCase: s.MatchCase, MatchWord: s.MatchWord}
}

// Apply copies remembered options from a domain value
func (s *SearchSettings) Apply(opts domain.SearchSettings) {
	s.MatchCase = opts.MatchCase
	s.MatchWord = opts.MatchWord
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
	fs       afero.Fs
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
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
	return filepath.Join(configDir, "dosedit", "config.toml")
}

// NewConfigService creates a config service backed by fs. An empty path
// selects DefaultPath.
func NewConfigService(fs afero.Fs, path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		fs:       fs,
		filePath: path,
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(fs afero.Fs, path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(fs, path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if os.IsNotExist(err) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. A missing file is
// reported with an error satisfying os.IsNotExist.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := afero.ReadFile(cs.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := cs.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(cs.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = currentVersion
	}
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaultTabWidth
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: currentVersion,
		Editor: EditorSettings{
			TabWidth: defaultTabWidth,
		},
		UISettings: UISettings{
			ShowHelpBar: true,
		},
	}
}
