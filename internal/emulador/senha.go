package emulador

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const tamanhoMinimoSenha = 6

var ErrSenhaCurta = errors.New("senha deve ter ao menos 6 caracteres")

// cifrarSenha gera o hash bcrypt de uma senha que atende ao tamanho mínimo.
func cifrarSenha(senha string) (string, error) {
	if utf8.RuneCountInString(senha) < tamanhoMinimoSenha {
		return "", ErrSenhaCurta
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func senhaConfere(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// sem 0, O, 1, I e l
const alfabetoSenhaPadrao = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const tamanhoSufixoSenhaPadrao = 8

// SenhaPadrao gera a senha que a organização entrega a membros novos:
// as iniciais do nome, um hífen e um sufixo aleatório.
func SenhaPadrao(organizacao string) (string, error) {
	prefixo := Iniciais(organizacao)
	if prefixo == "" {
		prefixo = "ORG"
	}
	var b strings.Builder
	b.WriteString(prefixo)
	b.WriteByte('-')
	limite := big.NewInt(int64(len(alfabetoSenhaPadrao)))
	for range tamanhoSufixoSenhaPadrao {
		n, err := rand.Int(rand.Reader, limite)
		if err != nil {
			return "", err
		}
		b.WriteByte(alfabetoSenhaPadrao[n.Int64()])
	}
	return b.String(), nil
}

// cifrar responde 400 para senha fora da política e 500 para falha do bcrypt.
func cifrar(w http.ResponseWriter, senha string) (string, bool) {
	hash, err := cifrarSenha(senha)
	switch {
	case errors.Is(err, ErrSenhaCurta):
		escreverErro(w, http.StatusBadRequest, CodigoInvalido, "A senha deve ter ao menos 6 caracteres.")
		return "", false
	case err != nil:
		escreverErro(w, http.StatusInternalServerError, CodigoInterno, "Erro ao processar senha.")
		return "", false
	}
	return hash, true
}
