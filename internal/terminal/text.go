package terminal

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	logFieldMessage = "message"

	warningPrefix = " ›   Warning: "
)

var (
	textMessageFields = []string{logFieldMessage}
)

type textMessage string

func newTextMessage(format string, args ...interface{}) textMessage {
	if len(args) == 0 {
		return textMessage(format)
	}
	return textMessage(fmt.Sprintf(format, args...))
}

func (t textMessage) Message() (string, error) {
	return string(t), nil
}

func (t textMessage) Payload() ([]string, map[string]interface{}, error) {
	return textMessageFields, map[string]interface{}{
		logFieldMessage: string(t),
	}, nil
}

type warningMessage string

func (w warningMessage) Message() (string, error) {
	return color.YellowString(warningPrefix) + string(w), nil
}

func (w warningMessage) Payload() ([]string, map[string]interface{}, error) {
	return textMessageFields, map[string]interface{}{
		logFieldMessage: string(w),
	}, nil
}
