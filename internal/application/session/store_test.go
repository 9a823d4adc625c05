package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizflow-client/internal/application/session"
	"github.com/jhoicas/bizflow-client/internal/domain/entity"
	"github.com/jhoicas/bizflow-client/internal/infrastructure/localstore"
	pkgjwt "github.com/jhoicas/bizflow-client/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newStore(t *testing.T, dir string) (*session.Store, *localstore.Store) {
	t.Helper()
	back, err := localstore.New(dir)
	require.NoError(t, err)
	return session.New(back, nil), back
}

// assertInvariant comprueba IsAuthenticated == (User != nil).
func assertInvariant(t *testing.T, s *session.Store) {
	t.Helper()
	state := s.State()
	assert.Equal(t, state.User != nil, state.IsAuthenticated,
		"IsAuthenticated debe equivaler a User != nil")
}

func TestLoad_SinRegistroResuelveNoAutenticado(t *testing.T) {
	s, _ := newStore(t, t.TempDir())

	assert.True(t, s.State().IsLoading, "antes de Load el estado es loading")
	s.Load()

	state := s.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assertInvariant(t, s)
}

func TestLoad_RestauraSesionBienFormada(t *testing.T) {
	dir := t.TempDir()
	first, _ := newStore(t, dir)
	first.Load()
	require.NoError(t, first.Save(&entity.User{ID: "u1", Name: "Alex", Email: "alex@bizflow.io", Role: entity.RoleAdmin, Token: "tok-opaco"}))

	// "Reinicio": nueva instancia sobre el mismo directorio
	revived, _ := newStore(t, dir)
	revived.Load()

	state := revived.State()
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	assert.Equal(t, "tok-opaco", revived.Token(), "el token se persiste con el usuario")
	assertInvariant(t, revived)
}

func TestLoad_EsIdempotenteTrasLaPrimeraLlamada(t *testing.T) {
	dir := t.TempDir()
	s, back := newStore(t, dir)
	s.Load()

	// Escribir una sesión después del Load no cambia el estado en memoria:
	// la lectura del disco ocurre exactamente una vez por proceso.
	require.NoError(t, back.Set(session.UserKey, &entity.User{ID: "tarde"}))
	s.Load()
	assert.False(t, s.IsAuthenticated())
}

func TestLoad_RegistroCorruptoSeDescarta(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, session.UserKey+".json"), []byte("{corrupto"), 0o600))

	s, back := newStore(t, dir)
	s.Load()

	assert.False(t, s.IsAuthenticated())
	assertInvariant(t, s)

	var u entity.User
	found, err := back.Get(session.UserKey, &u)
	require.NoError(t, err)
	assert.False(t, found, "el registro ilegible se limpia del disco")
}

func TestLoad_TokenJWTVencidoResuelveNoAutenticado(t *testing.T) {
	dir := t.TempDir()
	expired, err := pkgjwt.Generate(testSecret, "u1", entity.RoleUser, "bizflow-test", -5)
	require.NoError(t, err)

	first, _ := newStore(t, dir)
	first.Load()
	require.NoError(t, first.Save(&entity.User{ID: "u1", Email: "a@b.c", Token: expired}))

	revived, _ := newStore(t, dir)
	revived.Load()
	assert.False(t, revived.IsAuthenticated(), "un JWT vencido no restaura sesión")
	assertInvariant(t, revived)
}

func TestClear_BorraElRegistroYElProximoArranqueEsAnonimo(t *testing.T) {
	dir := t.TempDir()
	s, back := newStore(t, dir)
	s.Load()
	require.NoError(t, s.Save(&entity.User{ID: "u1", Email: "a@b.c"}))
	require.True(t, s.IsAuthenticated())

	s.Clear()
	assert.False(t, s.IsAuthenticated())
	assertInvariant(t, s)

	var u entity.User
	found, err := back.Get(session.UserKey, &u)
	require.NoError(t, err)
	assert.False(t, found, "tras logout no queda registro de sesión")

	// Arranque posterior
	revived, _ := newStore(t, dir)
	revived.Load()
	assert.False(t, revived.IsAuthenticated())
}

func TestToken_VacioSinSesion(t *testing.T) {
	s, _ := newStore(t, t.TempDir())
	s.Load()
	assert.Empty(t, s.Token())
}
