package terminal

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

const (
	actionEllipsis     = "..."
	spinnerRefreshRate = 100 * time.Millisecond
)

// Action is a long-running terminal action
// It renders as "<message>... <result>" once stopped
type Action interface {
	// Status updates the in-progress status shown next to the message
	Status(status string)

	// Stop ends the action with its result
	Stop(result string)
}

type spinnerAction struct {
	w       io.Writer
	message string
	s       *spinner.Spinner
}

func newSpinnerAction(w io.Writer, message string) *spinnerAction {
	s := spinner.New(spinner.CharSets[14], spinnerRefreshRate, spinner.WithWriter(w))
	s.Prefix = message + actionEllipsis + " "
	s.Start()
	return &spinnerAction{w, message, s}
}

func (a *spinnerAction) Status(status string) {
	a.s.Lock()
	a.s.Suffix = " " + status
	a.s.Unlock()
}

func (a *spinnerAction) Stop(result string) {
	final := fmt.Sprintf("%s%s %s\n", a.message, actionEllipsis, result)
	if !a.s.Active() {
		// the spinner refuses to start when stdout is not a terminal
		fmt.Fprint(a.w, final)
		return
	}
	a.s.FinalMSG = final
	a.s.Stop()
}

type textAction struct {
	w       io.Writer
	stopped bool
}

func newTextAction(w io.Writer, message string) *textAction {
	fmt.Fprintf(w, "%s%s ", message, actionEllipsis)
	return &textAction{w: w}
}

func (a *textAction) Status(status string) {}

func (a *textAction) Stop(result string) {
	if a.stopped {
		return
	}
	a.stopped = true
	fmt.Fprintln(a.w, result)
}

type noopAction struct{}

func (noopAction) Status(status string) {}
func (noopAction) Stop(result string)   {}
