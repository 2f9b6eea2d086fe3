// Package config resolves the leafdb CLI's flags into a validated runtime
// configuration. It never touches a database file itself.
package config

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/leafdb/leafdb/dblog"
)

// Config is the resolved, validated configuration for one leafdb process.
type Config struct {
	Path      string
	LogLevel  dblog.Level
	LogFormat dblog.Format
}

// cli is the kong struct describing the leafdb command line. It is kept
// separate from Config so the CLI's flag names/help text can evolve
// without changing the type the rest of the program depends on.
type cli struct {
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Minimum log level."`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log output format."`
	DBFile    string `arg:"" name:"db-file" help:"Path to the database file."`
}

// Parse parses args (typically os.Args[1:]) into a Config. It never exits
// the process; the caller decides what a parse error means (this
// project's cmd/leafdb prints the error and exits 1, matching the "missing
// db-file argument" exit code this project's CLI surface specifies).
func Parse(name string, args []string) (Config, error) {
	var c cli
	parser, err := kong.New(&c, kong.Name(name), kong.Description("A single-file, disk-backed relational-record store."))
	if err != nil {
		return Config{}, fmt.Errorf("config: building parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if c.DBFile == "" {
		return Config{}, fmt.Errorf("config: db-file is required")
	}

	return Config{
		Path:      c.DBFile,
		LogLevel:  dblog.Level(c.LogLevel),
		LogFormat: dblog.Format(c.LogFormat),
	}, nil
}
