package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jinzhu/inflection"
	"github.com/olekukonko/tablewriter"
)

const (
	logFieldHeaders = "headers"
	logFieldData    = "data"
)

var (
	tableFields = []string{logFieldMessage, logFieldHeaders, logFieldData}
)

type table struct {
	message string
	headers []string
	data    []map[string]string
}

func newTable(message string, headers []string, data []map[string]interface{}) table {
	t := table{message: message, headers: headers}

	t.data = make([]map[string]string, 0, len(data))
	for _, row := range data {
		if len(row) == 0 {
			continue
		}
		r := make(map[string]string, len(headers))
		for _, header := range headers {
			r[header] = parseValue(row[header])
		}
		t.data = append(t.data, r)
	}
	return t
}

func (t table) Message() (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	if t.message != "" {
		sb.WriteString(color.New(color.Bold).Sprint(t.message))
		sb.WriteString("\n")
	}

	w := tablewriter.NewWriter(&sb)
	w.Header(toCells(t.headers)...)
	for _, row := range t.data {
		cells := make([]string, len(t.headers))
		for i, header := range t.headers {
			cells[i] = row[header]
		}
		if err := w.Append(toCells(cells)...); err != nil {
			return "", err
		}
	}
	if err := w.Render(); err != nil {
		return "", err
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if err := t.validate(); err != nil {
		return nil, nil, err
	}
	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: t.headers,
		logFieldData:    t.data,
	}, nil
}

func (t table) validate() error {
	if len(t.headers) == 0 {
		return errors.New("cannot create a table without headers")
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}
	return cells
}

// Plural returns the plural form of the noun unless count is exactly one
func Plural(noun string, count int) string {
	if count == 1 {
		return noun
	}
	return inflection.Plural(noun)
}

func parseValue(value interface{}) string {
	parsed := ""
	switch v := value.(type) {
	case nil: // leave zero-value
	case string:
		parsed = v
	case fmt.Stringer:
		parsed = v.String()
	case error:
		parsed = v.Error()
	default:
		parsed = fmt.Sprintf("%+v", v)
	}
	return parsed
}
