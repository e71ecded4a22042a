package api

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodigoNaoAutorizado = "UNAUTHORIZED"
	CodigoProibido      = "FORBIDDEN"

	// MensagemGenerica é exibida quando a API não devolve mensagem.
	MensagemGenerica = "Aconteceu um erro inesperado."
)

// Error é uma resposta não-2xx da API remota.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// SessaoInvalida informa se o erro exige novo login: qualquer 401 ou 403 com código FORBIDDEN.
func SessaoInvalida(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Status {
	case http.StatusUnauthorized:
		return true
	case http.StatusForbidden:
		return apiErr.Code == CodigoProibido
	}
	return false
}

// NaoEncontrado informa se a API respondeu 404.
func NaoEncontrado(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Mensagem devolve a mensagem da API quando houver, senão a genérica.
func Mensagem(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return MensagemGenerica
}

// Opcional converte "none" e vazio em null nos corpos enviados.
func Opcional(v string) *string {
	if v == "" || v == "none" {
		return nil
	}
	return &v
}
