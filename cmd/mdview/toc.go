package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pgavlin/mdview/indexer"
	"github.com/pgavlin/mdview/renderer"
	"github.com/urfave/cli/v3"
)

func tocCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "toc",
		Usage:     "print the table of contents of a Markdown file",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, source, err := readSource(cmd)
			if err != nil {
				return err
			}
			options, _, err := rendererOptions(cmd)
			if err != nil {
				return err
			}

			doc := renderer.RenderMarkdown(source, options...)
			index := indexer.Index(doc)
			return index.TableOfContents().Walk(func(s *indexer.Section, depth int) error {
				if depth == 0 {
					return nil
				}
				_, err := fmt.Fprintf(stdout, "%s- %s (#%s)\n", strings.Repeat("  ", depth-1), s.Title, s.Anchor)
				return err
			})
		},
	}
}
