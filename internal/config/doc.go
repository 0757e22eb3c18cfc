// Package config loads and merges precis configuration.
//
// Effective configuration is built once per run from four layers, later
// layers winning: built-in defaults, the JSON config file (ConfigDir
// honors XDG_CONFIG_HOME), PRECIS_* environment variables, and CLI flag
// overrides. The result is an immutable value passed into components at
// construction; no component reads the environment afterwards.
package config
