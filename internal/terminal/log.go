package terminal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/iancoleman/orderedmap"
)

// LogLevel is the level of a terminal log
// Error and warning logs are written to stderr
type LogLevel string

// set of supported log levels
const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogData renders a log as text or as the keyed payload of its JSON form
type LogData interface {
	Message() (string, error)
	Payload() ([]string, map[string]interface{}, error)
}

// Log is a single unit of command output
type Log struct {
	Level LogLevel
	Time  time.Time
	Data  LogData
}

func newLog(level LogLevel, data LogData) Log {
	return Log{Level: level, Time: time.Now(), Data: data}
}

// NewTextLog creates a log with a formatted message
func NewTextLog(format string, args ...interface{}) Log {
	return newLog(LogLevelInfo, newTextMessage(format, args...))
}

// NewListLog creates a log with a message followed by one item per line
func NewListLog(message string, items ...interface{}) Log {
	return newLog(LogLevelInfo, newList(message, items))
}

// NewTableLog creates a log with a titled table, columns follow the order of headers
func NewTableLog(title string, headers []string, rows ...map[string]interface{}) Log {
	return newLog(LogLevelInfo, newTable(title, headers, rows))
}

// NewObjectLog creates a log with the fields of a single record
// printed as aligned key value pairs in insertion order
func NewObjectLog(title string, fields *orderedmap.OrderedMap) Log {
	return newLog(LogLevelInfo, newObject(title, fields))
}

// NewFollowupLog creates a log suggesting next steps to the user
func NewFollowupLog(message string, items ...string) Log {
	return newLog(LogLevelInfo, newFollowup(message, items))
}

// NewWarningLog creates a warning log
func NewWarningLog(format string, args ...interface{}) Log {
	return newLog(LogLevelWarn, warningMessage(fmt.Sprintf(format, args...)))
}

// NewErrorLog creates an error log
func NewErrorLog(err error) Log {
	return newLog(LogLevelError, errorMessage{err})
}

// Print renders the log in the requested output format
func (l Log) Print(format OutputFormat) (string, error) {
	switch format {
	case OutputFormatText:
		return l.Data.Message()
	case OutputFormatJSON:
		return l.marshalJSON()
	}
	return "", fmt.Errorf("unsupported output format type: %s", format)
}

// marshalJSON writes the time and level ahead of the payload keys
func (l Log) marshalJSON() (string, error) {
	keys, payload, err := l.Data.Payload()
	if err != nil {
		return "", err
	}

	doc := orderedmap.New()
	doc.Set("time", l.Time)
	doc.Set("level", l.Level)
	for _, key := range keys {
		doc.Set(key, payload[key])
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
