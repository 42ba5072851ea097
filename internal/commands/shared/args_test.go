package shared

import (
	"errors"
	"testing"

	"github.com/heroku/applink-cli/internal/utils/test/assert"
)

func TestRequiredArg(t *testing.T) {
	for _, tc := range []struct {
		description   string
		args          []string
		expectedValue string
		expectedErr   error
	}{
		{
			description:   "should capture the argument",
			args:          []string{"my-org"},
			expectedValue: "my-org",
		},
		{
			description: "should fail without the argument",
			expectedErr: errors.New("missing required argument connection_name"),
		},
		{
			description: "should fail with extra arguments",
			args:        []string{"my-org", "my-other-org", "and-another"},
			expectedErr: errors.New("unexpected arguments: my-other-org and-another"),
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			var value string
			err := RequiredArg(tc.args, "connection_name", &value)
			if tc.expectedErr == nil {
				assert.Nil(t, err)
			} else {
				assert.Equal(t, tc.expectedErr, err)
			}
			assert.Equal(t, tc.expectedValue, value)
		})
	}
}

func TestOptionalArg(t *testing.T) {
	var value string
	assert.Nil(t, OptionalArg(nil, &value))
	assert.Equal(t, "", value)

	assert.Nil(t, OptionalArg([]string{"my-org"}, &value))
	assert.Equal(t, "my-org", value)
}
