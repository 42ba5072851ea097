package applink

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAPISpec(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/specs/api.yml", []byte("openapi: 3.0.0\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/specs/api.json", []byte(`{"openapi":"3.0.0"}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/specs/empty.yaml", []byte("\n"), 0644))

	t.Run("should read a yaml spec", func(t *testing.T) {
		spec, err := ReadAPISpec(fs, "/specs/api.yml")
		require.NoError(t, err)
		assert.Equal(t, APISpec{Format: APISpecFormatYAML, Filename: "api.yml", Content: "openapi: 3.0.0\n"}, spec)
	})

	t.Run("should read a json spec", func(t *testing.T) {
		spec, err := ReadAPISpec(fs, "/specs/api.json")
		require.NoError(t, err)
		assert.Equal(t, APISpecFormatJSON, spec.Format)
	})

	t.Run("should reject an unsupported extension", func(t *testing.T) {
		_, err := ReadAPISpec(fs, "/specs/api.txt")
		assert.Equal(t, ErrUnsupportedAPISpec{"/specs/api.txt"}, err)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		_, err := ReadAPISpec(fs, "/specs/missing.yaml")
		assert.ErrorContains(t, err, "failed to read api spec")
	})

	t.Run("should fail for an empty file", func(t *testing.T) {
		_, err := ReadAPISpec(fs, "/specs/empty.yaml")
		assert.EqualError(t, err, "api spec /specs/empty.yaml is empty")
	})
}
