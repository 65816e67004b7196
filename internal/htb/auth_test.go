package htb

import (
	"context"
	"fmt"
	"testing"

	"htbnotes/internal/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userInfoBody = `{"info":{"id":1337,"name":"ippsec","avatar":"/avatars/ipp.png","rank":"Omniscient","points":420}}`

func TestAuthService_Login(t *testing.T) {
	e := newHTBEnv(t)
	e.http.Respond("/user/info", userInfoBody)

	user, err := e.auth().Login(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "ippsec", user.Name)
	assert.Equal(t, "1337", user.ID)

	// Token persisted for later commands.
	assert.Equal(t, "tok-123", e.store.Token())
	require.Len(t, e.http.Requests, 1)
	assert.Equal(t, "Bearer tok-123", e.http.Requests[0].Headers["Authorization"])
}

func TestAuthService_LoginRejectedTokenNotStored(t *testing.T) {
	e := newHTBEnv(t)
	e.http.Fail("/user/info", fmt.Errorf("[401] %w: Unauthorized", providers.ErrAuthFailed))

	_, err := e.auth().Login(context.Background(), "bad-token")
	assert.ErrorIs(t, err, providers.ErrAuthFailed)
	assert.Empty(t, e.store.Token())
}

func TestAuthService_AutoLoginNoToken(t *testing.T) {
	e := newHTBEnv(t)

	_, err := e.auth().AutoLogin(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, e.http.Requests)
}

func TestAuthService_AutoLoginClearsRejectedToken(t *testing.T) {
	e := newHTBEnv(t)
	require.NoError(t, e.store.SetToken("expired"))
	e.http.Fail("/user/info", fmt.Errorf("[401] %w", providers.ErrAuthFailed))

	_, err := e.auth().AutoLogin(context.Background())
	assert.ErrorIs(t, err, providers.ErrAuthFailed)
	assert.Empty(t, e.store.Token())
}

func TestAuthService_AutoLoginKeepsTokenOnTransientError(t *testing.T) {
	e := newHTBEnv(t)
	require.NoError(t, e.store.SetToken("good-token"))
	e.http.Fail("/user/info", fmt.Errorf("[503] %w", providers.ErrServer))

	_, err := e.auth().AutoLogin(context.Background())
	assert.ErrorIs(t, err, providers.ErrServer)
	assert.Equal(t, "good-token", e.store.Token())
}

func TestAuthService_Logout(t *testing.T) {
	e := newHTBEnv(t)
	require.NoError(t, e.store.SetToken("tok"))

	require.NoError(t, e.auth().Logout())
	assert.Empty(t, e.store.Token())
}
