package terminal

import (
	"fmt"
	"strings"
)

// set of follow up messages
const (
	MsgSuggestedCommands = "Try running instead"
	MsgReferenceLinks    = "Refer to the following links for more information"
)

var (
	followupFields = []string{logFieldMessage, logFieldData}
)

type followup struct {
	message string
	items   []string
}

func newFollowup(message string, items []string) followup {
	return followup{message, items}
}

func (f followup) Message() (string, error) {
	if len(f.items) == 0 {
		return "", fmt.Errorf("follow up message '%s' has no items", f.message)
	}
	rows := make([]string, len(f.items))
	for i, item := range f.items {
		rows[i] = Indent + item
	}
	return fmt.Sprintf("%s:\n%s", f.message, strings.Join(rows, "\n")), nil
}

func (f followup) Payload() ([]string, map[string]interface{}, error) {
	return followupFields, map[string]interface{}{
		logFieldMessage: f.message,
		logFieldData:    f.items,
	}, nil
}
