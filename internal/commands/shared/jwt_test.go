package shared

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJWTKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/keys/server.key", keyPEM, 0600))
	require.NoError(t, afero.WriteFile(fs, "/keys/server.crt", []byte("not a key"), 0600))

	t.Run("should return the contents of a valid key", func(t *testing.T) {
		contents, err := ReadJWTKey(fs, "/keys/server.key")
		require.NoError(t, err)
		assert.Equal(t, string(keyPEM), contents)
	})

	t.Run("should reject a file that is not an rsa private key", func(t *testing.T) {
		_, err := ReadJWTKey(fs, "/keys/server.crt")
		assert.ErrorContains(t, err, "/keys/server.crt is not a valid RSA private key")
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		_, err := ReadJWTKey(fs, "/keys/missing.key")
		assert.ErrorContains(t, err, "failed to read the JWT key file")
	})
}
