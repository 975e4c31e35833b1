package main

import (
	"context"
	"io"
	"os"

	"github.com/pgavlin/mdview/printer"
	"github.com/pgavlin/mdview/renderer"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func catCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     "render a Markdown file to standard output",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "color", Value: "auto", Usage: `"auto", "always", or "never"`},
			&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Usage: "truncate lines to this width (default: the terminal width)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, source, err := readSource(cmd)
			if err != nil {
				return err
			}
			options, _, err := rendererOptions(cmd)
			if err != nil {
				return err
			}

			color, width := false, int(cmd.Int("width"))
			if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				color = true
				if width == 0 {
					if w, _, err := term.GetSize(int(f.Fd())); err == nil {
						width = w
					}
				}
			}
			switch cmd.String("color") {
			case "always":
				color = true
			case "never":
				color = false
			}

			doc := renderer.RenderMarkdown(source, options...)
			return printer.Fprint(stdout, doc, printer.WithColor(color), printer.WithWidth(width))
		},
	}
}
