package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flag is a flag that can register itself to a flag set
type Flag interface {
	Register(fs *pflag.FlagSet)
}

// Meta is the flag metadata
type Meta struct {
	Name      string
	Shorthand string
	Usage     Usage
	Hidden    bool
	Required  bool
}

// Usage is the flag usage
type Usage struct {
	Description   string
	DefaultValue  string
	AllowedValues []string
	Note          string
}

func (u Usage) String() string {
	var sb strings.Builder
	sb.WriteString(u.Description)

	if u.DefaultValue != "" {
		sb.WriteString(fmt.Sprintf(" (Default value: %s)", u.DefaultValue))
	}

	if len(u.AllowedValues) > 0 {
		sb.WriteString(fmt.Sprintf(" (Allowed values: %s)", strings.Join(u.AllowedValues, ", ")))
	}

	if u.Note != "" {
		sb.WriteString(fmt.Sprintf(" [%s]", u.Note))
	}
	return sb.String()
}

// StringFlag is a string flag
type StringFlag struct {
	Meta
	Value        *string
	DefaultValue string
}

// Register registers the string flag with the flag set
func (f StringFlag) Register(fs *pflag.FlagSet) {
	if f.Shorthand == "" {
		fs.StringVar(f.Value, f.Name, f.DefaultValue, f.Usage.String())
	} else {
		fs.StringVarP(f.Value, f.Name, f.Shorthand, f.DefaultValue, f.Usage.String())
	}
	registerMeta(fs, f.Meta)
}

// BoolFlag is a bool flag
type BoolFlag struct {
	Meta
	Value *bool
}

// Register registers the bool flag with the flag set
func (f BoolFlag) Register(fs *pflag.FlagSet) {
	if f.Shorthand == "" {
		fs.BoolVar(f.Value, f.Name, false, f.Usage.String())
	} else {
		fs.BoolVarP(f.Value, f.Name, f.Shorthand, false, f.Usage.String())
	}
	registerMeta(fs, f.Meta)
}

// CustomFlag is a flag backed by a pflag.Value
type CustomFlag struct {
	Meta
	Value pflag.Value
}

// Register registers the custom flag with the flag set
func (f CustomFlag) Register(fs *pflag.FlagSet) {
	if f.Shorthand == "" {
		fs.Var(f.Value, f.Name, f.Usage.String())
	} else {
		fs.VarP(f.Value, f.Name, f.Shorthand, f.Usage.String())
	}
	registerMeta(fs, f.Meta)
}

func registerMeta(fs *pflag.FlagSet, meta Meta) {
	if meta.Hidden {
		MarkHidden(fs, meta.Name)
	}
	if meta.Required {
		// same annotation as cobra.MarkFlagRequired
		fs.SetAnnotation(meta.Name, requiredAnnotation, []string{"true"}) //nolint: errcheck
	}
}

const requiredAnnotation = "cobra_annotation_bash_completion_one_required_flag"

// MarkHidden marks the specified flag as hidden from the provided flag set
func MarkHidden(fs *pflag.FlagSet, name string) {
	fs.MarkHidden(name) //nolint: errcheck
}
