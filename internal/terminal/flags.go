package terminal

import (
	"fmt"
	"strings"
)

// set of supported terminal flags
const (
	FlagAutoConfirm      = "yes"
	FlagAutoConfirmShort = "y"
	FlagAutoConfirmUsage = "Automatically confirm prompts and open browser links"

	FlagDisableColors      = "disable-colors"
	FlagDisableColorsUsage = "Disable all CLI output styling"

	FlagOutputFormat      = "output-format"
	FlagOutputFormatShort = "f"
	FlagOutputFormatUsage = `Set the CLI output format (Allowed values: "text", "json")`
)

// OutputFormat is the terminal output format, the zero value prints text
type OutputFormat string

// set of supported terminal output formats
const (
	OutputFormatText OutputFormat = ""
	OutputFormatJSON OutputFormat = "json"
)

var outputFormatNames = map[string]OutputFormat{
	"text": OutputFormatText,
	"json": OutputFormatJSON,
}

func (of OutputFormat) String() string {
	if of == OutputFormatText {
		return "text"
	}
	return string(of)
}

// Type returns the flag value type shown in the command usage
func (of OutputFormat) Type() string { return "format" }

// Set parses the output format by name, case insensitively
func (of *OutputFormat) Set(val string) error {
	format, ok := outputFormatNames[strings.ToLower(val)]
	if !ok {
		return fmt.Errorf(`unsupported output format %q, use one of "text" or "json"`, val)
	}
	*of = format
	return nil
}
