package emulador

import (
	"errors"
	"log/slog"
	"net/http"

	"gorm.io/gorm"
)

type requisicaoSessao struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type requisicaoRecuperar struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"min=6"`
}

// CriarSessao gera um JWT para credenciais válidas.
func (h *Handler) CriarSessao(w http.ResponseWriter, r *http.Request) {
	var req requisicaoSessao
	if !lerCorpo(w, r, &req) {
		return
	}

	u, err := h.Repository.BuscarUsuarioPorEmail(h.DB, req.Email)
	if err != nil || !senhaConfere(u.Senha, req.Password) {
		escreverErro(w, http.StatusUnauthorized, CodigoNaoAutorizado, "Credenciais inválidas.")
		return
	}
	if !u.Status {
		escreverErro(w, http.StatusUnauthorized, CodigoNaoAutorizado, "Usuário inativo.")
		return
	}

	token, err := h.Emissor.GerarToken(*u)
	if err != nil {
		slog.ErrorContext(r.Context(), "erro ao gerar token", "error", err)
		escreverErro(w, http.StatusInternalServerError, CodigoInterno, "Erro ao gerar token.")
		return
	}
	u.AccessDate = h.agora()
	if err := h.Repository.SalvarUsuario(h.DB, u); err != nil {
		slog.WarnContext(r.Context(), "erro ao registrar acesso", "user_id", u.ID, "error", err)
	}
	escreverJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) VerificarSessao(w http.ResponseWriter, r *http.Request) {
	escreverJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// EncerrarSessao revoga o token usado na requisição.
func (h *Handler) EncerrarSessao(w http.ResponseWriter, r *http.Request) {
	h.Emissor.Revogar(claimsDe(r.Context()))
	semConteudo(w)
}

// RecuperarSenha troca a senha a partir do e-mail.
func (h *Handler) RecuperarSenha(w http.ResponseWriter, r *http.Request) {
	var req requisicaoRecuperar
	if !lerCorpo(w, r, &req) {
		return
	}
	u, err := h.Repository.BuscarUsuarioPorEmail(h.DB, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		escreverErro(w, http.StatusNotFound, CodigoNaoEncontrado, "E-mail não cadastrado.")
		return
	}
	if err != nil {
		falhaBanco(w, r, err, "Usuário")
		return
	}
	hash, ok := cifrar(w, req.NewPassword)
	if !ok {
		return
	}
	u.Senha = hash
	if err := h.Repository.SalvarUsuario(h.DB, u); err != nil {
		falhaBanco(w, r, err, "Usuário")
		return
	}
	semConteudo(w)
}
