package terminal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/iancoleman/orderedmap"
)

type object struct {
	message string
	fields  *orderedmap.OrderedMap
}

func newObject(message string, fields *orderedmap.OrderedMap) object {
	if fields == nil {
		fields = orderedmap.New()
	}
	return object{message, fields}
}

func (o object) Message() (string, error) {
	keys := o.fields.Keys()

	var width int
	for _, key := range keys {
		if len(key) > width {
			width = len(key)
		}
	}

	rows := make([]string, 0, len(keys)+1)
	if o.message != "" {
		rows = append(rows, color.New(color.Bold).Sprint(o.message))
	}
	for _, key := range keys {
		value, _ := o.fields.Get(key)
		rows = append(rows, fmt.Sprintf("%s:%s%s",
			key,
			strings.Repeat(" ", width-len(key)+1),
			parseValue(value),
		))
	}
	return strings.Join(rows, "\n"), nil
}

func (o object) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: o.message,
		logFieldData:    o.fields,
	}, nil
}
