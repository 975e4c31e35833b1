package tview

import (
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/pgavlin/mdview/renderer"
	"github.com/pgavlin/mdview/styles"
	"github.com/pgavlin/mdview/viewer"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
)

const (
	explorerPage = "explorer"
	previewPage  = "preview"
	statusPage   = "status"
	commandPage  = "command"

	explorerHelp = "j/k or ↓/↑: Move | Enter: Open | h or Backspace: Up | o: Open externally | :<command> Enter: Run"
)

// A BrowserOption configures a Browser.
type BrowserOption func(b *Browser)

// WithBrowserTheme sets the theme used by the browser and its previews.
func WithBrowserTheme(theme *styles.Theme) BrowserOption {
	return func(b *Browser) {
		b.theme = theme
	}
}

// WithRendererOptions sets the options used to render previews. The browser's theme is always applied.
func WithRendererOptions(options ...renderer.RendererOption) BrowserOption {
	return func(b *Browser) {
		b.rendererOptions = options
	}
}

// WithLogger sets the browser's logger.
func WithLogger(log logrus.FieldLogger) BrowserOption {
	return func(b *Browser) {
		b.log = log
	}
}

// WithClipboard replaces the function used to copy preview text.
func WithClipboard(copy func(text string) error) BrowserOption {
	return func(b *Browser) {
		b.copy = copy
	}
}

// WithOpener replaces the function used to open files with the system's default handler.
func WithOpener(opener func(path string) error) BrowserOption {
	return func(b *Browser) {
		b.open = opener
	}
}

// Browser is a two-mode terminal application: an explorer that lists a directory, and a preview that shows a
// rendered file.
type Browser struct {
	app *tview.Application

	pages  *tview.Pages
	list   *tview.List
	bottom *tview.Pages
	status *tview.TextView
	input  *tview.InputField
	view   *DocumentView

	explorer *viewer.Explorer
	preview  *viewer.Preview

	theme           *styles.Theme
	rendererOptions []renderer.RendererOption
	log             logrus.FieldLogger
	copy            func(text string) error
	open            func(path string) error
}

// NewBrowser creates a browser for the given explorer. The browser's primitives are attached to app by Run.
func NewBrowser(app *tview.Application, explorer *viewer.Explorer, options ...BrowserOption) *Browser {
	b := &Browser{
		app:      app,
		explorer: explorer,
		copy:     clipboard.WriteAll,
		open:     open.Run,
	}
	for _, o := range options {
		o(b)
	}
	if b.theme == nil {
		b.theme = styles.NewTheme(nil)
	}
	if b.log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		b.log = logger
	}

	defaultStyle := cellStyle(tcell.StyleDefault, b.theme.Text)
	fg, bg, _ := defaultStyle.Decompose()

	b.list = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetMainTextColor(fg).
		SetSelectedTextColor(bg).
		SetSelectedBackgroundColor(fg)
	b.list.SetBorder(true).SetBackgroundColor(bg)
	b.list.SetInputCapture(b.explorerKey)

	b.status = tview.NewTextView().SetDynamicColors(false)
	b.status.SetBackgroundColor(bg)

	b.input = tview.NewInputField().
		SetLabel(":").
		SetFieldBackgroundColor(bg).
		SetFieldTextColor(fg).
		SetLabelColor(fg)
	b.input.SetBackgroundColor(bg)
	b.input.SetDoneFunc(b.commandDone)

	b.bottom = tview.NewPages().
		AddPage(statusPage, b.status, true, true).
		AddPage(commandPage, b.input, true, false)

	explorerLayout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.list, 0, 1, true).
		AddItem(b.bottom, 1, 0, false)

	b.view = NewDocumentView(b.theme)
	b.view.SetInputCapture(b.previewKey)

	b.pages = tview.NewPages().
		AddPage(previewPage, b.view, true, false).
		AddPage(explorerPage, explorerLayout, true, true)

	b.refreshList()
	b.clearError()
	return b
}

// Root returns the browser's root primitive.
func (b *Browser) Root() tview.Primitive {
	return b.pages
}

// Run attaches the browser to its application and runs the application until the user quits.
func (b *Browser) Run() error {
	b.log.WithField("dir", b.explorer.Dir()).Info("starting browser")
	if err := b.app.SetRoot(b.pages, true).SetFocus(b.list).Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

func (b *Browser) refreshList() {
	link := b.theme.Link.Foreground
	if !link.IsSet() {
		link = b.theme.Text.Foreground
	}

	b.list.Clear()
	for _, entry := range b.explorer.Entries() {
		name := tview.Escape(entry.DisplayName())
		if entry.IsDir && link.IsSet() {
			name = fmt.Sprintf("[%s]%s", link.String(), name)
		}
		b.list.AddItem(name, "", 0, nil)
	}
	b.list.SetTitle(" " + tview.Escape(b.explorer.Dir()) + " ")
	if i := b.explorer.Index(); i >= 0 {
		b.list.SetCurrentItem(i)
	}
}

func (b *Browser) clearError() {
	fg, _, _ := cellStyle(tcell.StyleDefault, b.theme.Text).Decompose()
	b.status.SetTextColor(fg).SetText(explorerHelp)
}

func (b *Browser) showError(err error) {
	b.log.WithError(err).Warn("explorer error")

	fg := tcell.ColorRed
	if b.theme.Error.Foreground.IsSet() {
		fg = cellColor(b.theme.Error.Foreground)
	}
	b.status.SetTextColor(fg).SetText(err.Error())
}

// StatusText returns the text of the explorer's status line.
func (b *Browser) StatusText() string {
	return b.status.GetText(false)
}

// Mode returns the name of the page currently shown: "explorer" or "preview".
func (b *Browser) Mode() string {
	name, _ := b.pages.GetFrontPage()
	return name
}

func (b *Browser) showExplorer() {
	b.pages.SwitchToPage(explorerPage)
	b.app.SetFocus(b.list)
}

func (b *Browser) showPreview(p *viewer.Preview) {
	b.log.WithFields(logrus.Fields{"path": p.Path, "lines": p.Document.Height()}).Info("showing preview")

	b.preview = p
	b.view.SetDocument(p.Document, p.Index).SetFooter(p.Footer())
	b.pages.SwitchToPage(previewPage)
	b.app.SetFocus(b.view)
}

func (b *Browser) loadMarkdown(path string) {
	options := append(append([]renderer.RendererOption(nil), b.rendererOptions...), renderer.WithTheme(b.theme))
	p, err := viewer.LoadMarkdown(path, options...)
	if err != nil {
		b.showError(err)
		return
	}
	b.showPreview(p)
}

func (b *Browser) enter() {
	entry, ok, err := b.explorer.Enter()
	switch {
	case err != nil:
		b.showError(err)
	case !ok:
		return
	case entry.IsDir:
		b.log.WithField("dir", b.explorer.Dir()).Debug("changed directory")
		b.refreshList()
	default:
		b.loadMarkdown(entry.Path)
	}
}

func (b *Browser) openExternal(path string) {
	b.log.WithField("path", path).Info("opening externally")
	if err := b.open(path); err != nil {
		b.showError(fmt.Errorf("opening %v: %w", path, err))
	}
}

// explorerKey handles keys while the explorer list has focus.
func (b *Browser) explorerKey(event *tcell.EventKey) *tcell.EventKey {
	b.clearError()

	switch event.Key() {
	case tcell.KeyRune:
		switch event.Rune() {
		case ':':
			b.bottom.SwitchToPage(commandPage)
			b.app.SetFocus(b.input)
		case 'j':
			b.explorer.Next()
		case 'k':
			b.explorer.Previous()
		case 'h':
			b.parent()
		case 'o':
			if entry, ok := b.explorer.Selected(); ok {
				b.openExternal(entry.Path)
			}
		default:
			return nil
		}
	case tcell.KeyDown:
		b.explorer.Next()
	case tcell.KeyUp:
		b.explorer.Previous()
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		b.parent()
	case tcell.KeyEnter:
		b.enter()
	default:
		// Let the application see everything else (e.g. Ctrl-C).
		return event
	}

	if i := b.explorer.Index(); i >= 0 {
		b.list.SetCurrentItem(i)
	}
	return nil
}

func (b *Browser) parent() {
	if err := b.explorer.Parent(); err != nil {
		b.showError(err)
		return
	}
	b.refreshList()
}

func (b *Browser) commandDone(key tcell.Key) {
	text := b.input.GetText()
	b.input.SetText("")
	b.bottom.SwitchToPage(statusPage)
	b.app.SetFocus(b.list)

	if key == tcell.KeyEnter {
		b.runCommand(text)
	}
}

// runCommand executes an explorer command line.
func (b *Browser) runCommand(text string) {
	b.clearError()

	command, err := viewer.ParseCommand(text)
	if err != nil {
		b.showError(err)
		return
	}
	b.log.WithFields(logrus.Fields{"command": command.Kind, "arg": command.Arg}).Debug("running command")

	switch command.Kind {
	case viewer.CommandQuit:
		b.app.Stop()
	case viewer.CommandHTMLPreview:
		p, err := viewer.LoadHTML(b.explorer.Resolve(command.Arg), b.theme)
		if err != nil {
			b.showError(err)
			return
		}
		b.showPreview(p)
	case viewer.CommandOpen:
		b.openExternal(b.explorer.Resolve(command.Arg))
	case viewer.CommandGoto:
		if b.preview == nil {
			b.showError(errors.New("no preview is open"))
			return
		}
		sections, ok := b.preview.Index.Lookup(command.Arg)
		if !ok {
			b.showError(fmt.Errorf("heading not found: %v", command.Arg))
			return
		}
		b.showPreview(b.preview)
		b.view.ScrollTo(sections[0].Start)
	}
}

// previewKey handles the keys that leave or act on the preview. Scrolling is left to the view.
func (b *Browser) previewKey(event *tcell.EventKey) *tcell.EventKey {
	if b.preview != nil {
		b.view.SetFooter(b.preview.Footer())
	}

	if event.Key() != tcell.KeyRune {
		return event
	}

	switch event.Rune() {
	case 'q':
		b.showExplorer()
		return nil
	case 'y':
		b.copyPreview()
		return nil
	default:
		return event
	}
}

func (b *Browser) copyPreview() {
	if b.preview == nil {
		return
	}
	text := b.preview.Document.PlainText()
	if err := b.copy(text); err != nil {
		b.log.WithError(err).Warn("copying preview")
		b.view.SetFooter(fmt.Sprintf("copy failed: %v", err))
		return
	}
	b.view.SetFooter("Copied to clipboard | " + b.preview.Footer())
}
