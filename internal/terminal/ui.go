package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/browser"
)

// UI is a terminal UI
type UI interface {
	AutoConfirm() bool
	AskOne(answer interface{}, prompt survey.Prompt) error
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log)
	OpenBrowser(url string) error
	StartAction(message string) Action
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	noColor := config.DisableColors
	if config.OutputFormat == OutputFormatJSON {
		noColor = true
	}
	color.NoColor = noColor

	return &ui{
		config: config,
		err:    err,
		in:     in,
		out:    out,
	}
}

type ui struct {
	config UIConfig
	err    io.Writer
	in     io.Reader
	out    io.Writer
}

func (ui *ui) AutoConfirm() bool {
	return ui.config.AutoConfirm
}

func (ui *ui) AskOne(answer interface{}, prompt survey.Prompt) error {
	stdio := ui.toStdio()
	return survey.AskOne(prompt, answer, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	var proceed bool
	if err := ui.AskOne(&proceed, &survey.Confirm{Message: fmt.Sprintf(format, args...)}); err != nil {
		return false, err
	}
	return proceed, nil
}

func (ui *ui) Print(logs ...Log) {
	for _, log := range logs {
		output, err := log.Print(ui.config.OutputFormat)
		if err != nil {
			output = err.Error()
		}

		writer := ui.out
		switch log.Level {
		case LogLevelError, LogLevelWarn:
			writer = ui.err
		}

		fmt.Fprintln(writer, output)
	}
}

func (ui *ui) OpenBrowser(url string) error {
	return browser.OpenURL(url)
}

func (ui *ui) StartAction(message string) Action {
	if ui.config.OutputFormat == OutputFormatJSON {
		return noopAction{}
	}
	if isTerminal(ui.err) {
		return newSpinnerAction(ui.err, message)
	}
	return newTextAction(ui.err, message)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (ui *ui) toStdio() terminal.Stdio {
	in, inOK := ui.in.(terminal.FileReader)
	if !inOK {
		in = noopFdReader{ui.in}
	}
	out, outOK := ui.out.(terminal.FileWriter)
	if !outOK {
		out = noopFdWriter{ui.out}
	}
	return terminal.Stdio{
		In:  in,
		Out: out,
		Err: ui.err,
	}
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr {
	return 0
}

type noopFdWriter struct {
	io.Writer
}

func (r noopFdWriter) Fd() uintptr {
	return 0
}
