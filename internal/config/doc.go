// Package config manages user-level settings stored at ~/.devkit/config.yaml,
// overridable through DEVKIT_* environment variables: the package manager
// used for installs and the log level and format.
package config
