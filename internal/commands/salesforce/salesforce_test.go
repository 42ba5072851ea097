package salesforce

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/heroku/applink-cli/internal/cli"
	"github.com/heroku/applink-cli/internal/cloud/addon"
	"github.com/heroku/applink-cli/internal/cloud/applink"
	"github.com/heroku/applink-cli/internal/terminal"
	"github.com/heroku/applink-cli/internal/utils/test/assert"
	"github.com/heroku/applink-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func newTestClients(t *testing.T, client applink.Client) cli.Clients {
	t.Helper()
	return cli.Clients{
		Heroku: mock.NewHerokuClientWithAddon("heroku-applink", "heroku-applink-vertical-01234"),
		AppLink: func(attachment addon.Attachment) applink.Client {
			assert.Equal(t, mock.AddonID, attachment.AddonID)
			return client
		},
	}
}

func newAppInputs() cli.AppInputs {
	return cli.AppInputs{App: mock.AddonAppName}
}

func newAutoConfirmUI() (*bytes.Buffer, terminal.UI) {
	out := new(bytes.Buffer)
	return out, mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)
}

func writeTestKey(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err)

	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	assert.Nil(t, afero.WriteFile(fs, path, keyPEM, 0600))
	return string(keyPEM)
}
