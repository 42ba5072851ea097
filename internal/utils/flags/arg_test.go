package flags

import (
	"testing"

	"github.com/heroku/applink-cli/internal/utils/test/assert"
)

func TestArg(t *testing.T) {
	t.Run("should print only name when value is nil", func(t *testing.T) {
		arg := Arg{Name: "test"}
		assert.Equal(t, " --test", arg.String())
	})

	t.Run("should print name and value when set", func(t *testing.T) {
		arg := Arg{"test", "value"}
		assert.Equal(t, " --test value", arg.String())
	})

	t.Run("should print a single dash for shorthand names", func(t *testing.T) {
		arg := Arg{"a", "my-app"}
		assert.Equal(t, " -a my-app", arg.String())
	})

	t.Run("should quote values with spaces", func(t *testing.T) {
		arg := Arg{"label", "My Target"}
		assert.Equal(t, ` --label "My Target"`, arg.String())
	})
}
