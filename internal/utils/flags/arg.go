package flags

import (
	"fmt"
	"strings"
)

// Arg is a flag arg represented by its name and optional value
type Arg struct {
	Name  string
	Value interface{}
}

func (a Arg) String() string {
	prefix := " --"
	if len(a.Name) == 1 {
		prefix = " -"
	}
	s := prefix + a.Name

	if a.Value == nil {
		return s
	}

	value := fmt.Sprintf("%v", a.Value)
	if strings.ContainsAny(value, " \t") {
		value = fmt.Sprintf("%q", value)
	}
	return fmt.Sprintf("%s %s", s, value)
}
