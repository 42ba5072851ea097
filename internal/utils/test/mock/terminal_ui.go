package mock

import (
	"bytes"
	"io"
	"time"

	"github.com/heroku/applink-cli/internal/terminal"

	"github.com/Netflix/go-expect"
	"github.com/hinshun/vt10x"
)

// StaticTime is stamped on every log printed through a mock UI
var StaticTime = time.Date(2024, 11, 5, 1, 23, 45, 0, time.UTC)

// UIOptions are the options to configure the mock terminal UI
type UIOptions struct {
	AutoConfirm bool
	UseColors   bool
	UseJSON     bool

	// OpenBrowserFn receives the urls the command opens, no browser is launched when nil
	OpenBrowserFn func(url string) error
}

func (options UIOptions) config() terminal.UIConfig {
	config := terminal.UIConfig{
		AutoConfirm:   options.AutoConfirm,
		DisableColors: !options.UseColors,
		OutputFormat:  terminal.OutputFormatText,
	}
	if options.UseJSON {
		config.OutputFormat = terminal.OutputFormatJSON
	}
	return config
}

func (options UIOptions) build(in io.Reader, out, err io.Writer) terminal.UI {
	return ui{terminal.NewUI(options.config(), in, out, err), options.OpenBrowserFn}
}

type ui struct {
	terminal.UI
	openBrowserFn func(url string) error
}

func (ui ui) OpenBrowser(url string) error {
	if ui.openBrowserFn == nil {
		return nil
	}
	return ui.openBrowserFn(url)
}

func (ui ui) Print(logs ...terminal.Log) {
	for i := range logs {
		logs[i].Time = StaticTime
	}
	ui.UI.Print(logs...)
}

// NewUI returns a mock terminal UI with default options along with the buffer it writes to
func NewUI() (*bytes.Buffer, terminal.UI) {
	out := new(bytes.Buffer)
	return out, NewUIWithOptions(UIOptions{}, out)
}

// NewUIWithOptions returns a non-interactive mock terminal UI writing both streams to w
func NewUIWithOptions(options UIOptions, w io.Writer) terminal.UI {
	return options.build(nil, w, w)
}

// NewConsole returns an interactive mock terminal UI backed by a pseudo terminal
// along with the buffer its output is copied to
func NewConsole() (*bytes.Buffer, *expect.Console, terminal.UI, error) {
	out := new(bytes.Buffer)
	console, ui, err := NewConsoleWithOptions(UIOptions{}, out)
	return out, console, ui, err
}

// NewConsoleWithOptions returns an interactive mock terminal UI backed by a pseudo terminal
func NewConsoleWithOptions(options UIOptions, writers ...io.Writer) (*expect.Console, terminal.UI, error) {
	console, err := expect.NewConsole(expect.WithStdout(writers...))
	if err != nil {
		return nil, nil, err
	}
	tty := console.Tty()
	return console, options.build(tty, tty, tty), nil
}

// NewVT10XConsole is NewConsole with a virtual terminal emulator fed the console output
// so tests can assert on the rendered screen
func NewVT10XConsole() (*bytes.Buffer, *expect.Console, vt10x.Terminal, terminal.UI, error) {
	out := new(bytes.Buffer)
	console, term, ui, err := NewVT10XConsoleWithOptions(UIOptions{}, out)
	return out, console, term, ui, err
}

// NewVT10XConsoleWithOptions is NewConsoleWithOptions with a virtual terminal emulator fed the console output
func NewVT10XConsoleWithOptions(options UIOptions, writers ...io.Writer) (*expect.Console, vt10x.Terminal, terminal.UI, error) {
	term := vt10x.New()
	console, err := expect.NewConsole(expect.WithStdout(append(writers, term)...))
	if err != nil {
		return nil, nil, nil, err
	}
	tty := console.Tty()
	return console, term, options.build(tty, tty, tty), nil
}
