package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizflow-client/internal/infrastructure/localstore"
)

type registro struct {
	Nombre string  `json:"nombre"`
	Saldo  float64 `json:"saldo"`
}

func TestSetGet_RoundTrip(t *testing.T) {
	s, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	in := registro{Nombre: "Acme", Saldo: 1500.5}
	require.NoError(t, s.Set("bizflow_demo", in))

	var out registro
	found, err := s.Get("bizflow_demo", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestGet_ClaveInexistente(t *testing.T) {
	s, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	var out registro
	found, err := s.Get("no_existe", &out)
	require.NoError(t, err, "clave ausente no es error")
	assert.False(t, found)
}

func TestGet_ArchivoCorruptoEsError(t *testing.T) {
	dir := t.TempDir()
	s, err := localstore.New(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roto.json"), []byte("{no es json"), 0o600))

	var out registro
	found, err := s.Get("roto", &out)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestDelete_IdempotenteYBorraDeVerdad(t *testing.T) {
	s, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("k", registro{Nombre: "x"}))
	require.NoError(t, s.Delete("k"))

	var out registro
	found, err := s.Get("k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, s.Delete("k"), "borrar una clave inexistente no es error")
}

func TestSet_SobrescribeElValorAnterior(t *testing.T) {
	s, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("k", registro{Nombre: "viejo"}))
	require.NoError(t, s.Set("k", registro{Nombre: "nuevo", Saldo: 7}))

	var out registro
	found, err := s.Get("k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "nuevo", out.Nombre)
}
