package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizflow-client/pkg/jwt"
)

const secret = "clave-de-prueba"

func TestGenerateEInspect(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "ADMIN", "bizflow-test", 30)
	require.NoError(t, err)

	claims, err := jwt.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "bizflow-test", claims.Issuer)
	assert.Equal(t, "u1", claims.Subject)
}

func TestInspect_TokenMalformado(t *testing.T) {
	_, err := jwt.Inspect("no-es-un-jwt")
	assert.Error(t, err)
}

func TestExpired_TokenVencido(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "USER", "bizflow-test", -10)
	require.NoError(t, err)
	assert.True(t, jwt.Expired(token))
}

func TestExpired_TokenVigente(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "USER", "bizflow-test", 10)
	require.NoError(t, err)
	assert.False(t, jwt.Expired(token))
}

func TestExpired_TokenOpacoNoSeRechaza(t *testing.T) {
	// Un token que no es JWT (el backend mock emite strings opacos) nunca se
	// considera vencido: esa decisión corresponde al servidor.
	assert.False(t, jwt.Expired("mock-jwt-token-123"))
	assert.False(t, jwt.Expired(""))
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "USER", "bizflow-test", 5)
	assert.Error(t, err)
}
