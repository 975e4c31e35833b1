// Command mdview renders Markdown for the terminal. Without a subcommand it starts a directory browser with
// Markdown previews.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pgavlin/mdview/internal/config"
	"github.com/pgavlin/mdview/renderer"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "mdview",
		Usage:     "browse and render Markdown in the terminal",
		ArgsUsage: "[directory]",
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a TOML configuration file"},
			&cli.StringFlag{Name: "theme", Aliases: []string{"t"}, Usage: "the theme to render with"},
			&cli.StringFlag{Name: "break-mode", Usage: `how to show <br> tags: "marker" or "line"`},
			&cli.IntFlag{Name: "rule-width", Usage: "the width of thematic breaks"},
			&cli.IntFlag{Name: "column-width", Usage: "the width of table columns"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to this file"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, or error"},
			&cli.StringFlag{Name: "log-format", Value: "text", Usage: `"text" or "json"`},
		},
		Action: browse,
		Commands: []*cli.Command{
			catCommand(stdout),
			htmlCommand(stdout),
			tocCommand(stdout),
		},
	}
}

// loadConfig reads the configuration file and applies command-line overrides.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	c, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet("theme") {
		c.Theme = cmd.String("theme")
	}
	if cmd.IsSet("break-mode") {
		c.BreakMode = cmd.String("break-mode")
	}
	if cmd.IsSet("rule-width") {
		c.RuleWidth = int(cmd.Int("rule-width"))
	}
	if cmd.IsSet("column-width") {
		c.ColumnWidth = int(cmd.Int("column-width"))
	}
	if cmd.IsSet("log-file") {
		c.LogFile = cmd.String("log-file")
	}
	if cmd.IsSet("log-level") {
		c.LogLevel = cmd.String("log-level")
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}
	return c, nil
}

func rendererOptions(cmd *cli.Command) ([]renderer.RendererOption, config.Config, error) {
	c, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	options, err := c.RendererOptions()
	if err != nil {
		return nil, config.Config{}, err
	}
	return options, c, nil
}

func formatter(format string) logrus.Formatter {
	switch format {
	case "json":
		return &logrus.JSONFormatter{}
	default:
		return &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}
}

// newLogger creates the logger for a run. The terminal belongs to the user interface, so logs go only to the
// configured log file, if any. The returned function closes the file.
func newLogger(c config.Config, format string) (*logrus.Logger, func(), error) {
	level, err := c.Level()
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(formatter(format))

	if c.LogFile == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, func() { f.Close() }, nil
}

func readSource(cmd *cli.Command) (string, []byte, error) {
	if cmd.Args().Len() != 1 {
		return "", nil, fmt.Errorf("expected exactly one file argument")
	}
	path := cmd.Args().First()

	source, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading %v: %w", path, err)
	}
	return path, source, nil
}
