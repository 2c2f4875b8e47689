// Package branding provides compile-time identity values for the CLI and
// the server it exposes. Values come from the embedded branding.yaml,
// overlaid on hard defaults.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	ServerName  string `yaml:"server_name"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "devkit",
			DisplayName: "DevKit",
			Description: "Project scaffolding server for AI assistants",
			ServerName:  "devkit-scaffolder",
			HomeDir:     ".devkit",
			EnvPrefix:   "DEVKIT",
			GoModule:    "github.com/agentx-labs/devkit",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "devkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ServerName is the name reported to clients during the handshake.
func ServerName() string { load(); return defaults.ServerName }

// HomeDir returns the dot-directory name under $HOME (e.g., ".devkit").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "DEVKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "DEVKIT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
