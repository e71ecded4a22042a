package emulador

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	CodigoNaoAutorizado = "UNAUTHORIZED"
	CodigoProibido      = "FORBIDDEN"
	CodigoNaoEncontrado = "NOT_FOUND"
	CodigoInvalido      = "BAD_REQUEST"
	CodigoConflito      = "CONFLICT"
	CodigoInterno       = "INTERNAL"
)

var validar = validator.New(validator.WithRequiredStructEnabled())

type erroAPI struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func escreverJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("erro ao escrever resposta", "error", err)
	}
}

func escreverErro(w http.ResponseWriter, status int, code, msg string) {
	escreverJSON(w, status, erroAPI{Code: code, Message: msg})
}

func semConteudo(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// lerCorpo decodifica e valida o JSON do corpo. Em falha já responde 400.
func lerCorpo(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		escreverErro(w, http.StatusBadRequest, CodigoInvalido, "payload inválido")
		return false
	}
	if err := validar.Struct(dst); err != nil {
		escreverErro(w, http.StatusBadRequest, CodigoInvalido, "dados inválidos: "+err.Error())
		return false
	}
	return true
}

// falhaBanco traduz erros do gorm; registro ausente vira 404.
func falhaBanco(w http.ResponseWriter, r *http.Request, err error, oque string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		escreverErro(w, http.StatusNotFound, CodigoNaoEncontrado, oque+" não encontrado.")
		return
	}
	slog.ErrorContext(r.Context(), "erro no banco", "path", r.URL.Path, "error", err)
	escreverErro(w, http.StatusInternalServerError, CodigoInterno, "Erro interno.")
}
