package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pgavlin/mdview/event"
	"github.com/urfave/cli/v3"
)

func htmlCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "html",
		Usage:     "convert a Markdown file to HTML",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, source, err := readSource(cmd)
			if err != nil {
				return err
			}
			if err := event.NewMarkdown().Convert(source, stdout); err != nil {
				return fmt.Errorf("converting %v: %w", path, err)
			}
			return nil
		},
	}
}
