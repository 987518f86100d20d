// Package config loads application configuration.
//
// Sources, lowest precedence first: built-in defaults, a YAML config file,
// a .env file, MOLES_* environment variables, then explicitly set flags.
// Config file search order: explicit path -> ~/.moles/config.yaml ->
// ./configs/config.yaml. A missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vovakirdan/word-moles/pkg/validator"
)

// EnvPrefix prefixes every environment variable the app reads.
const EnvPrefix = "MOLES"

// Config is the application configuration.
type Config struct {
	DBPath         string `mapstructure:"db_path" validate:"required"`
	VocabularyPath string `mapstructure:"vocabulary_path"`
	TickRate       int    `mapstructure:"tick_rate" validate:"min=1,max=240"`
	Voice          string `mapstructure:"voice" validate:"required"`
	LogFile        string `mapstructure:"log_file"`
	LogLevel       string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// Options control where Load looks.
type Options struct {
	// Path is an explicit config file. Reading it must succeed.
	Path string
	// EnvFile is loaded into the environment if present. Defaults to ".env".
	EnvFile string
	// Flags maps flag names to config keys, e.g. "db" -> "db_path". Only
	// flags the user actually set override other sources.
	Flags    *pflag.FlagSet
	FlagKeys map[string]string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", "~/.moles/moles.db")
	v.SetDefault("vocabulary_path", "")
	v.SetDefault("tick_rate", 30)
	v.SetDefault("voice", "auto")
	v.SetDefault("log_file", "~/.moles/moles.log")
	v.SetDefault("log_level", "info")
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts.Path); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for flag, key := range opts.FlagKeys {
			f := opts.Flags.Lookup(flag)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", flag, err)
			}
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".moles"))
	}
	v.AddConfigPath("configs")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}
	return nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
