package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName    = "reframer"
	configFile = "config.yaml"
	envPrefix  = "REFRAMER"
)

const (
	KeyAPIURL   = "api_url"
	KeyLogLevel = "log_level"
	KeyLogFile  = "log_file"
)

// Settings holds runtime options read once at startup.
type Settings struct {
	APIURL   string `mapstructure:"api_url" yaml:"api_url" validate:"omitempty,url"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
}

// LoadOptions controls where settings are read from.
type LoadOptions struct {
	// ConfigPath points at an explicit YAML file. Empty uses the default
	// location and tolerates its absence.
	ConfigPath string
	// Flags supplies command-line overrides keyed by the same names with
	// dashes, e.g. --api-url.
	Flags *pflag.FlagSet
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func settingsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/reframer/config.yaml or the
// platform equivalent.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, appName, configFile), nil
}

// Load layers flag > env > config file and validates the result.
func Load(opts LoadOptions) (Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{KeyAPIURL, KeyLogLevel, KeyLogFile} {
		if err := v.BindEnv(key); err != nil {
			return Settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if opts.Flags != nil {
		bindings := map[string]string{
			KeyAPIURL:   "api-url",
			KeyLogLevel: "log-level",
			KeyLogFile:  "log-file",
		}
		for key, flagName := range bindings {
			flag := opts.Flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	if err := readConfigFile(v, opts.ConfigPath); err != nil {
		return Settings{}, err
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func readConfigFile(v *viper.Viper, explicit string) error {
	path := explicit
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil
		}
		if _, err := os.Stat(defaultPath); err != nil {
			return nil
		}
		path = defaultPath
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Validate checks field formats.
func (s Settings) Validate() error {
	err := settingsValidator().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("invalid setting %s=%q (%s)", settingName(fe.Field()), fmt.Sprint(fe.Value()), fe.Tag())
	}
	return err
}

func settingName(field string) string {
	switch field {
	case "APIURL":
		return KeyAPIURL
	case "LogLevel":
		return KeyLogLevel
	case "LogFile":
		return KeyLogFile
	default:
		return field
	}
}

// Resolution walks the base URL chain using these settings as the runtime
// override.
func (s Settings) Resolution() Resolution {
	return Resolve(Chain(s.APIURL)...)
}
