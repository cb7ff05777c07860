package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/soroban/internal/log"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SOROBAN_SCREEN_WIDTH.
const EnvPrefix = "SOROBAN"

// LocalConfigName is the per-directory config file.
const LocalConfigName = ".soroban.yaml"

// keyDelimiter replaces viper's default "." so dotted color tokens such as
// "bead.fill" stay flat map keys.
const keyDelimiter = "::"

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	d := Defaults()
	set := func(key string, value any) {
		v.SetDefault(strings.ReplaceAll(key, ".", keyDelimiter), value)
	}
	set("screen.width", d.Screen.Width)
	set("screen.height", d.Screen.Height)
	set("abacus.padding", d.Abacus.Padding)
	set("abacus.corner_radius", d.Abacus.CornerRadius)
	set("clock.location", d.Clock.Location)
	set("theme.preset", d.Theme.Preset)
	set("ui.color_profile", d.UI.ColorProfile)
	set("ui.frame", d.UI.Frame)
	set("ui.show_readout", d.UI.ShowReadout)
	set("log.file", d.Log.File)
	set("log.level", d.Log.Level)
	set("watch_config", d.WatchConfig)
	set("watch_delay", d.WatchDelay)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelimiter, "_"))
	v.AutomaticEnv()
	return v
}

// DefaultConfigPath returns the user-level config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "soroban", "config.yaml")
}

// FindConfigFile returns the first existing config file: explicit, then
// ./.soroban.yaml, then the user config. It returns "" when none exists.
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range []string{LocalConfigName, DefaultConfigPath()} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Load reads the config file at path (if any) into v and returns the
// validated result. An explicitly named file must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return Config{}, fmt.Errorf("config file not found: %s", path)
			}
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "Loaded config file", "path", path)
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Watch re-decodes the config whenever its file changes and passes the
// result to onChange. Callbacks run on viper's watcher goroutine.
func Watch(v *viper.Viper, onChange func(Config, error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Debug(log.CatConfig, "Config file changed", "path", e.Name, "op", e.Op.String())
		onChange(decode(v))
	})
	v.WatchConfig()
}
