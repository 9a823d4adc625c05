package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizflow-client/internal/application/auth"
	"github.com/jhoicas/bizflow-client/internal/application/ports"
	"github.com/jhoicas/bizflow-client/internal/application/session"
	"github.com/jhoicas/bizflow-client/internal/domain"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
	"github.com/jhoicas/bizflow-client/internal/infrastructure/localstore"
)

// fakeAPI cubre solo los métodos que estos tests ejercitan; el resto del
// contrato queda en el embed y entraría en pánico si se tocara.
type fakeAPI struct {
	ports.DataAccess

	calls    int
	loginFn  func(ctx context.Context, email, password string) (*entity.User, error)
	signupFn func(ctx context.Context, name, email, password, company string) (*entity.User, error)
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*entity.User, error) {
	f.calls++
	return f.loginFn(ctx, email, password)
}

func (f *fakeAPI) Signup(ctx context.Context, name, email, password, company string) (*entity.User, error) {
	f.calls++
	return f.signupFn(ctx, name, email, password, company)
}

func newSessions(t *testing.T) (*session.Store, *localstore.Store) {
	t.Helper()
	back, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	s := session.New(back, nil)
	s.Load()
	return s, back
}

func TestLogin_ExitosoPersisteLaSesion(t *testing.T) {
	sessions, back := newSessions(t)
	api := &fakeAPI{loginFn: func(_ context.Context, email, _ string) (*entity.User, error) {
		return &entity.User{ID: "u1", Name: "Alex", Email: email, Role: entity.RoleAdmin, Token: "tok"}, nil
	}}
	uc := auth.New(api, sessions, nil)

	user, err := uc.Login(context.Background(), "  alex@bizflow.io  ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alex@bizflow.io", user.Email, "el email se recorta antes de enviarse")
	assert.True(t, sessions.IsAuthenticated())
	assert.Equal(t, "tok", sessions.Token())

	var stored entity.User
	found, err := back.Get(session.UserKey, &stored)
	require.NoError(t, err)
	assert.True(t, found, "la sesión queda respaldada en disco")
	assert.Equal(t, "u1", stored.ID)
}

func TestLogin_RechazadoNoTocaEstadoNiDisco(t *testing.T) {
	sessions, back := newSessions(t)
	boom := errors.New("Invalid credentials")
	api := &fakeAPI{loginFn: func(context.Context, string, string) (*entity.User, error) {
		return nil, boom
	}}
	uc := auth.New(api, sessions, nil)

	_, err := uc.Login(context.Background(), "alex@bizflow.io", "mala")
	assert.ErrorIs(t, err, boom)
	assert.False(t, sessions.IsAuthenticated())

	var stored entity.User
	found, getErr := back.Get(session.UserKey, &stored)
	require.NoError(t, getErr)
	assert.False(t, found)
}

func TestLogin_EntradaVaciaNoLlamaAlBackend(t *testing.T) {
	sessions, _ := newSessions(t)
	api := &fakeAPI{loginFn: func(context.Context, string, string) (*entity.User, error) {
		t.Fatal("no debería llegar al backend")
		return nil, nil
	}}
	uc := auth.New(api, sessions, nil)

	for _, tc := range []struct{ email, password string }{
		{"", "secret"},
		{"   ", "secret"},
		{"alex@bizflow.io", ""},
	} {
		_, err := uc.Login(context.Background(), tc.email, tc.password)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, api.calls)
}

func TestSignup_ContrasenasDistintasFallaAntesDeLaRed(t *testing.T) {
	sessions, _ := newSessions(t)
	api := &fakeAPI{signupFn: func(context.Context, string, string, string, string) (*entity.User, error) {
		t.Fatal("el mismatch se detecta sin tocar la red")
		return nil, nil
	}}
	uc := auth.New(api, sessions, nil)

	_, err := uc.Signup(context.Background(), "Alex", "alex@bizflow.io", "uno", "dos", "Acme")
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
	assert.Zero(t, api.calls)
	assert.False(t, sessions.IsAuthenticated())
}

func TestSignup_ExitosoPersisteLaSesion(t *testing.T) {
	sessions, _ := newSessions(t)
	api := &fakeAPI{signupFn: func(_ context.Context, name, email, _, company string) (*entity.User, error) {
		return &entity.User{ID: "u9", Name: name, Email: email, Role: entity.RoleUser, Token: "tok9"}, nil
	}}
	uc := auth.New(api, sessions, nil)

	user, err := uc.Signup(context.Background(), "Maria", "maria@bizflow.io", "s3cret", "s3cret", "Acme")
	require.NoError(t, err)
	assert.Equal(t, "u9", user.ID)
	assert.True(t, sessions.IsAuthenticated())
	assert.Equal(t, 1, api.calls)
}

func TestLogout_LimpiaLaSesion(t *testing.T) {
	sessions, back := newSessions(t)
	require.NoError(t, sessions.Save(&entity.User{ID: "u1", Email: "a@b.c"}))
	uc := auth.New(&fakeAPI{}, sessions, nil)

	uc.Logout()
	assert.False(t, sessions.IsAuthenticated())

	var stored entity.User
	found, err := back.Get(session.UserKey, &stored)
	require.NoError(t, err)
	assert.False(t, found)
}
