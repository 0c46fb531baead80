package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Search  SearchConfig  `mapstructure:"search"`
	UI      UIConfig      `mapstructure:"ui"`
	Keys    KeyConfig     `mapstructure:"keys"`
	Media   MediaConfig   `mapstructure:"media"`
	Log     LogConfig     `mapstructure:"log"`
}

type CatalogConfig struct {
	// Path points at a TOML catalog file that replaces the built-in
	// sample data. Empty means use the embedded catalog.
	Path string `mapstructure:"path"`
}

type SearchConfig struct {
	// Engine selects the text filter: "substring" or "bleve".
	Engine         string `mapstructure:"engine"`
	DebounceMillis int    `mapstructure:"debounce_millis"`
	MaxQueryLength int    `mapstructure:"max_query_length"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors"`
	Card   CardUI   `mapstructure:"card"`
	Detail DetailUI `mapstructure:"detail"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
}

type CardUI struct {
	MinWidth int `mapstructure:"min_width"`
}

type DetailUI struct {
	WordWrapMaxWidth int `mapstructure:"word_wrap_max_width"`
	WordWrapMinWidth int `mapstructure:"word_wrap_min_width"`
}

type KeyConfig struct {
	Quit   string `mapstructure:"quit"`
	Search string `mapstructure:"search"`
	Genre  string `mapstructure:"genre"`
	Sort   string `mapstructure:"sort"`
	Back   string `mapstructure:"back"`
}

type MediaConfig struct {
	// Opener overrides the platform default command used to open cover
	// URLs externally (open, xdg-open, ...).
	Opener string `mapstructure:"opener"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

func defaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Engine:         "substring",
			DebounceMillis: 300,
			MaxQueryLength: 256,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#FF6B6B",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
			},
			Card: CardUI{
				MinWidth: 32,
			},
			Detail: DetailUI{
				WordWrapMaxWidth: 100,
				WordWrapMinWidth: 40,
			},
		},
		Keys: KeyConfig{
			Quit:   "q",
			Search: "/",
			Genre:  "g",
			Sort:   "s",
			Back:   "esc",
		},
		Log: LogConfig{
			Level: "off",
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("catalog", cfg.Catalog)
	v.SetDefault("search", cfg.Search)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("keys", cfg.Keys)
	v.SetDefault("media", cfg.Media)
	v.SetDefault("log", cfg.Log)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "poddeck")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PODDECK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	return &config, nil
}

// expandPath expands ~ to the home directory and makes the path
// absolute.
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func expandPaths(cfg *Config) {
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path)
	cfg.Log.Path = expandPath(cfg.Log.Path)
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Snake-case keys so the written file matches what Load expects.
	v.Set("catalog", map[string]interface{}{
		"path": config.Catalog.Path,
	})
	v.Set("search", map[string]interface{}{
		"engine":           config.Search.Engine,
		"debounce_millis":  config.Search.DebounceMillis,
		"max_query_length": config.Search.MaxQueryLength,
	})
	v.Set("ui", map[string]interface{}{
		"colors": map[string]interface{}{
			"primary":   config.UI.Colors.Primary,
			"secondary": config.UI.Colors.Secondary,
			"accent":    config.UI.Colors.Accent,
			"text":      config.UI.Colors.Text,
			"muted":     config.UI.Colors.Muted,
			"error":     config.UI.Colors.Error,
		},
		"card": map[string]interface{}{
			"min_width": config.UI.Card.MinWidth,
		},
		"detail": map[string]interface{}{
			"word_wrap_max_width": config.UI.Detail.WordWrapMaxWidth,
			"word_wrap_min_width": config.UI.Detail.WordWrapMinWidth,
		},
	})
	v.Set("keys", map[string]interface{}{
		"quit":   config.Keys.Quit,
		"search": config.Keys.Search,
		"genre":  config.Keys.Genre,
		"sort":   config.Keys.Sort,
		"back":   config.Keys.Back,
	})
	v.Set("media", map[string]interface{}{
		"opener": config.Media.Opener,
	})
	v.Set("log", map[string]interface{}{
		"level": config.Log.Level,
		"path":  config.Log.Path,
	})

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
