package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/agentx-labs/devkit/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyPackageManager = "package_manager"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
)

// Settings are the validated configuration values.
type Settings struct {
	PackageManager string `mapstructure:"package_manager" validate:"required,oneof=npm pnpm yarn"`
	LogLevel       string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat      string `mapstructure:"log_format" validate:"required,oneof=json console"`
}

var defaults = map[string]string{
	KeyPackageManager: "npm",
	KeyLogLevel:       "info",
	KeyLogFormat:      "json",
}

var rules = map[string]string{
	KeyPackageManager: "oneof=npm pnpm yarn",
	KeyLogLevel:       "oneof=debug info warn error",
	KeyLogFormat:      "oneof=json console",
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Keys returns the known setting keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Dir returns the path to the config directory (~/.devkit/). DEVKIT_HOME
// overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.devkit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the loaded configuration, validated.
func Current() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	rule, ok := rules[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if err := validate.Var(value, rule); err != nil {
		return fmt.Errorf("invalid value %q for %s: must satisfy %s", value, key, rule)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
