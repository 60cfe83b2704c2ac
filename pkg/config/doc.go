// Package config loads ansiprint settings. Layers are applied in order:
// embedded defaults, the user config file, ANSIPRINT_ environment
// variables, then explicit overrides from command-line flags.
package config
