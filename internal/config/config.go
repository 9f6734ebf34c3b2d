// Package config loads engine settings from a config file and environment
// variables via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/coinscribe/coinscribe/internal/common"
	"github.com/coinscribe/coinscribe/internal/engine"
)

// Logging holds the global logger settings.
type Logging struct {
	Level  string
	Format string // console or json
}

// Settings is everything the embedding application configures.
type Settings struct {
	Logging Logging
	Engine  engine.Config
}

// Load reads configuration from cfgFile, or from the standard search path
// when empty ($HOME/.config/coinscribe/config.yaml, then the working
// directory), plus COINSCRIBE_* environment variables. A missing config
// file is fine; defaults apply.
func Load(cfgFile string) (Settings, error) {
	v := viper.New()

	defaults := engine.DefaultConfig()
	v.SetDefault("engine.undo_depth", defaults.UndoDepth)
	v.SetDefault("engine.recent_depth", defaults.RecentDepth)
	v.SetDefault("engine.max_suggestions", defaults.MaxSuggestions)
	v.SetDefault("engine.default_categories", defaults.DefaultCategories)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(fmt.Sprintf("%s/.config/coinscribe", home))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("COINSCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	s := Settings{
		Logging: Logging{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Engine: engine.Config{
			UndoDepth:         v.GetInt("engine.undo_depth"),
			RecentDepth:       v.GetInt("engine.recent_depth"),
			MaxSuggestions:    v.GetInt("engine.max_suggestions"),
			DefaultCategories: v.GetStringSlice("engine.default_categories"),
		},
	}
	if err := validate(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// SetupLogging installs the global slog handler described by the settings.
func SetupLogging(l Logging) error {
	level, err := common.ParseLevel(l.Level)
	if err != nil {
		return err
	}
	common.SetupLogger(level, l.Format)
	return nil
}

func validate(s Settings) error {
	if s.Engine.UndoDepth < 0 {
		return fmt.Errorf("engine.undo_depth must not be negative: %w", common.ErrInvalidConfig)
	}
	if s.Engine.RecentDepth < 0 {
		return fmt.Errorf("engine.recent_depth must not be negative: %w", common.ErrInvalidConfig)
	}
	if s.Engine.MaxSuggestions < 0 {
		return fmt.Errorf("engine.max_suggestions must not be negative: %w", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	return nil
}
