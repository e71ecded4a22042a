package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

var ErrCookieInvalido = errors.New("cookie de autenticação inválido")

// Selador cifra o token guardado no cookie para que o navegador não o leia nem altere.
type Selador struct {
	chave [32]byte
}

func NewSelador(segredo string) *Selador {
	return &Selador{chave: sha256.Sum256([]byte(segredo))}
}

func (s *Selador) Selar(valor string) (string, error) {
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("gerar nonce: %w", err)
	}
	out := secretbox.Seal(nonce[:], []byte(valor), &nonce, &s.chave)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

func (s *Selador) Abrir(selado string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(selado)
	if err != nil || len(raw) < 24+secretbox.Overhead {
		return "", ErrCookieInvalido
	}
	var nonce [24]byte
	copy(nonce[:], raw[:24])
	valor, ok := secretbox.Open(nil, raw[24:], &nonce, &s.chave)
	if !ok {
		return "", ErrCookieInvalido
	}
	return string(valor), nil
}
