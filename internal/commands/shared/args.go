package shared

import (
	"fmt"
	"strings"
)

// RequiredArg captures the single required positional argument
func RequiredArg(args []string, name string, value *string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing required argument %s", name)
	}
	return OptionalArg(args, value)
}

// OptionalArg captures the single optional positional argument
func OptionalArg(args []string, value *string) error {
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
	if len(args) == 1 {
		*value = args[0]
	}
	return nil
}
