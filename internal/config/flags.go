package config

// This file implements flag registration and layered loading.
// Precedence, lowest first: defaults, config file, CASEDUP_* environment, flags.
// Flags only win when the user actually passed them.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName names the config directory and the env prefix.
	AppName = "casedup"
	// EnvPrefix is prepended to upper-cased keys, e.g. CASEDUP_KEY=name.
	EnvPrefix = "CASEDUP"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
)

// configDirOverride lets tests point the config search away from the real
// user config directory.
var configDirOverride string

// flagKeys maps viper keys to the flag names that feed them.
var flagKeys = map[string]string{
	"key":      "key",
	"lang":     "lang",
	"color":    "color",
	"verbose":  "verbose",
	"log_file": "log",
}

// RegisterFlags registers all configuration flags on fs. Values are read back
// through viper in [Load], so the flag storage here is never consulted directly.
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := DefaultConfig()
	defineGroupingFlags(fs, &defaults)
	defineDisplayFlags(fs, &defaults)
	defineUtilityFlags(fs)
}

// defineGroupingFlags registers -k/--key and --lang.
func defineGroupingFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.VarP(&keyModeValue{&cfg.KeyMode}, "key", "k", "Grouping key: path | name")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Message language, e.g. en or ko (default from LANG)")
}

// defineDisplayFlags registers --color, -v/--verbose and -l/--log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Color output: auto | always | never")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
}

// defineUtilityFlags registers --config.
func defineUtilityFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Config file (default $XDG_CONFIG_HOME/casedup/config.toml)")
}

// Load layers defaults, the config file, environment and the flags in fs into
// a Config. The first positional argument, if any, overrides the root.
func Load(v *viper.Viper, fs *pflag.FlagSet, args []string) (Config, error) {
	defaults := DefaultConfig()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("key", string(defaults.KeyMode))
	v.SetDefault("lang", defaults.Lang)
	v.SetDefault("color", string(defaults.ColorMode))
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("log_file", defaults.LogFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return Config{}, fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}

	explicit := ""
	if f := fs.Lookup("config"); f != nil {
		explicit = f.Value.String()
	}
	if err := readConfigFile(v, explicit); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.KeyMode = KeyMode(strings.ToLower(string(cfg.KeyMode)))
	cfg.ColorMode = ColorMode(strings.ToLower(string(cfg.ColorMode)))

	if len(args) > 1 {
		return Config{}, fmt.Errorf("expected at most one root directory, got %d", len(args))
	}
	if len(args) == 1 {
		cfg.Root = NormalizeDirArg(args[0])
	}
	return cfg, nil
}

// ConfigDir returns the directory searched for the config file.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// readConfigFile reads the explicit file when given (it must exist), otherwise
// searches ConfigDir for config.{toml,yaml,json,...}. A missing default file
// is not an error.
func readConfigFile(v *viper.Viper, explicit string) error {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", explicit, err)
		}
		return nil
	}

	dir, err := ConfigDir()
	if err != nil {
		// No resolvable home: defaults only.
		return nil
	}
	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// pflag.Value adapters so enum types (KeyMode, ColorMode) reject bad input at parse time.

type keyModeValue struct{ p *KeyMode }

func (k *keyModeValue) String() string { return string(*k.p) }
func (k *keyModeValue) Type() string   { return "mode" }
func (k *keyModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "path":
		*k.p = KeyPath
	case "name":
		*k.p = KeyName
	default:
		return fmt.Errorf("invalid key mode %q (use 'path' or 'name')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "when" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
