package rest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizflow-client/internal/domain/entity"
)

// La traducción de vocabularios es una biyección total sobre los tres valores;
// todo lo demás cae en Pending.
func TestStatusVocabulario_Biyeccion(t *testing.T) {
	cases := []struct {
		wire   string
		client string
	}{
		{"paid", entity.TxCompleted},
		{"pending", entity.TxPending},
		{"cancelled", entity.TxCancelled},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.client, statusFromWire(tc.wire))
		assert.Equal(t, tc.wire, statusToWire(tc.client), "la ida debe deshacer la vuelta")
	}

	// Default seguro para valores fuera del vocabulario
	for _, unknown := range []string{"refunded", "PAID", "", "completed"} {
		assert.Equal(t, entity.TxPending, statusFromWire(unknown), "wire %q", unknown)
	}
	assert.Equal(t, "pending", statusToWire("otra cosa"))
}

func TestFlexID_AceptaNumeroYString(t *testing.T) {
	var v struct {
		ID flexID `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id": 42}`), &v))
	assert.Equal(t, "42", v.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id": "abc-1"}`), &v))
	assert.Equal(t, "abc-1", v.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &v))
	assert.Equal(t, "", v.ID.String())
}

func TestUnwrap_EsUnaSolaFuncionParaAmbasFormas(t *testing.T) {
	// Con envelope: entrega data
	payload, err := unwrap([]byte(`{"success": true, "data": {"id": "1"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "1"}`, string(payload))

	// success:false: entrega el payload completo
	payload, err = unwrap([]byte(`{"success": false, "message": "nope"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "message": "nope"}`, string(payload))

	// Objeto pelado
	payload, err = unwrap([]byte(`{"id": "7"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "7"}`, string(payload))

	// Array pelado
	payload, err = unwrap([]byte(`[1, 2]`))
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2]`, string(payload))

	// No-JSON: error
	_, err = unwrap([]byte(`<html>`))
	assert.Error(t, err)
}

func TestErrorMessage_TragaCuerposIlegibles(t *testing.T) {
	assert.Equal(t, "Invalid credentials", errorMessage([]byte(`{"message": "Invalid credentials"}`)))
	assert.Equal(t, "API Request Failed", errorMessage([]byte(`{"error": "sin campo message"}`)))
	assert.Equal(t, "API Request Failed", errorMessage([]byte(`esto no es json`)))
	assert.Equal(t, "API Request Failed", errorMessage(nil))
}
