package emulador

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCifrarSenha(t *testing.T) {
	hash, err := cifrarSenha("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)
	assert.True(t, senhaConfere(hash, "123456"))
	assert.False(t, senhaConfere(hash, "654321"))

	_, err = cifrarSenha("açaí")
	assert.ErrorIs(t, err, ErrSenhaCurta)
}

func TestCifrarRespondeErroDePolitica(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := cifrar(rec, "12345")
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), CodigoInvalido)
}

func TestSenhaPadrao(t *testing.T) {
	a, err := SenhaPadrao("Arena Park Itajubá")
	require.NoError(t, err)
	b, err := SenhaPadrao("Arena Park Itajubá")
	require.NoError(t, err)

	assert.Regexp(t, `^AP-[A-HJ-NP-Za-km-z2-9]{8}$`, a)
	assert.NotEqual(t, a, b)

	c, err := SenhaPadrao("   ")
	require.NoError(t, err)
	assert.Regexp(t, `^ORG-`, c)
}
