package main

import (
	"context"
	"fmt"

	view "github.com/pgavlin/mdview/tview"
	"github.com/pgavlin/mdview/viewer"
	"github.com/rivo/tview"
	"github.com/urfave/cli/v3"
)

func browse(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("expected at most one directory argument")
	}
	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}

	options, c, err := rendererOptions(cmd)
	if err != nil {
		return err
	}
	theme, err := c.ThemeValue()
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(c, cmd.String("log-format"))
	if err != nil {
		return err
	}
	defer closeLog()

	explorer, err := viewer.NewExplorer(dir)
	if err != nil {
		return err
	}

	browser := view.NewBrowser(tview.NewApplication(), explorer,
		view.WithBrowserTheme(theme),
		view.WithRendererOptions(options...),
		view.WithLogger(log))
	if err := browser.Run(); err != nil {
		log.WithError(err).Error("browser failed")
		return err
	}
	log.Info("browser exited")
	return nil
}
