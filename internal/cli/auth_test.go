package cli

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSecret(t *testing.T, secret []byte, err error) {
	t.Helper()
	orig := getSecret
	getSecret = func(w io.Writer, prompt string) ([]byte, error) { return secret, err }
	t.Cleanup(func() { getSecret = orig })
}

func TestLogin_ExchangesPIN(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{}
	app, out := newTestApp(t, svc, "")
	app.config.ClientID = "cid123"

	stubSecret(t, []byte("pin456"), nil)

	require.NoError(t, app.Login(ctx))

	assert.Equal(t, "pin456", svc.lastCode)
	assert.Contains(t, out.String(), "/oauth2/authorize?client_id=cid123&response_type=pin")
	assert.True(t, svc.authenticated)
}

func TestLogin_AlreadyLoggedIn(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{authenticated: true, username: "alice"}
	app, out := newTestApp(t, svc, "")

	require.NoError(t, app.Login(ctx))

	assert.Contains(t, out.String(), "Already logged in as alice")
	assert.Equal(t, "", svc.lastCode)
}

func TestLogin_ExchangeFailure(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{authErr: errors.New("bad pin")}
	app, out := newTestApp(t, svc, "")

	stubSecret(t, []byte("wrong"), nil)

	err := app.Login(ctx)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Login failed")
	assert.False(t, svc.authenticated)
}

func TestLogin_SecretReadError(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{}
	app, _ := newTestApp(t, svc, "")

	stubSecret(t, nil, errors.New("no terminal"))

	require.Error(t, app.Login(ctx))
	assert.Equal(t, "", svc.lastCode)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc := &fakeService{authenticated: true, username: "alice"}
	app, out := newTestApp(t, svc, "")

	require.NoError(t, app.Logout(ctx))

	assert.Equal(t, 1, svc.deleteCalls)
	assert.Contains(t, out.String(), "Logged out")
}
