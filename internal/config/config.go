// Package config defines the CLI structure and configuration for dsuwire.
package config

import (
	"github.com/padspace/dsuwire/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"DSUWIRE_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"DSUWIRE_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Config string `help:"Path to an additional config file" env:"DSUWIRE_CONFIG"`

	Serve     cmd.Serve     `cmd:"" help:"Start the DSU telemetry server"`
	Watch     cmd.Watch     `cmd:"" help:"Connect to a DSU server and print controller telemetry"`
	Install   cmd.Install   `cmd:"" help:"Set up the DSU server to start automatically"`
	Uninstall cmd.Uninstall `cmd:"" help:"Remove the DSU server autostart configuration"`
}
