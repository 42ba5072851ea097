package terminal

import (
	"errors"
	"testing"

	"github.com/heroku/applink-cli/internal/utils/test/assert"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true

	headers := []string{"Connection Name", "Status"}

	t.Run("should fail to print without headers", func(t *testing.T) {
		_, err := newTable("Connections", nil, nil).Message()
		assert.Equal(t, errors.New("cannot create a table without headers"), err)

		_, _, err = newTable("Connections", nil, nil).Payload()
		assert.Equal(t, errors.New("cannot create a table without headers"), err)
	})

	t.Run("should only keep the header columns and skip empty rows", func(t *testing.T) {
		tbl := newTable("Connections", headers, []map[string]interface{}{
			{"Connection Name": "my-org", "Status": "Connected", "Extra": "ignored"},
			{},
			{"Connection Name": "my-other-org", "Status": errors.New("Failed")},
		})

		assert.Equal(t, []map[string]string{
			{"Connection Name": "my-org", "Status": "Connected"},
			{"Connection Name": "my-other-org", "Status": "Failed"},
		}, tbl.data)
	})

	t.Run("should render the title and every cell", func(t *testing.T) {
		message, err := newTable("=== my-app Heroku AppLink connections", headers, []map[string]interface{}{
			{"Connection Name": "my-org", "Status": "Connected"},
			{"Connection Name": "my-other-org", "Status": "Pending"},
		}).Message()
		assert.Nil(t, err)

		for _, cell := range []string{"=== my-app Heroku AppLink connections", "my-org", "Connected", "my-other-org", "Pending"} {
			assert.Contains(t, message, cell)
		}
	})

	t.Run("should include the headers and data in the payload", func(t *testing.T) {
		keys, payload, err := newTable("Connections", headers, []map[string]interface{}{
			{"Connection Name": "my-org", "Status": "Connected"},
		}).Payload()
		assert.Nil(t, err)
		assert.Equal(t, []string{"message", "headers", "data"}, keys)
		assert.Equal(t, map[string]interface{}{
			"message": "Connections",
			"headers": headers,
			"data":    []map[string]string{{"Connection Name": "my-org", "Status": "Connected"}},
		}, payload)
	})
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "connection", Plural("connection", 1))
	assert.Equal(t, "connections", Plural("connection", 0))
	assert.Equal(t, "authorizations", Plural("authorization", 2))
	assert.Equal(t, "data action targets", Plural("data action target", 3))
}
