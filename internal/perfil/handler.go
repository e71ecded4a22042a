package perfil

import (
	"net/http"
	"strings"

	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/web"
)

const destino = "/me"

type Handler struct {
	Servico *Servico
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Servico: NewServico(repo)}
}

func (h *Handler) Tela(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, nil)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, form *web.Formulario) {
	ctx := r.Context()
	p, err := h.Servico.Buscar(ctx, sessao.CacheDe(ctx))
	if err != nil {
		web.Falhar(w, r, err, "", destino)
		return
	}
	web.Renderizar(w, r, status, perfilView(p, form))
}

func (h *Handler) rejeitar(w http.ResponseWriter, r *http.Request, acao string, erros web.Erros, sigilosos ...string) {
	form := web.NovoFormulario(r, acao)
	for _, campo := range sigilosos {
		delete(form.Valores, campo)
	}
	form.Erros = erros
	h.render(w, web.ComoLeitura(r), http.StatusUnprocessableEntity, form)
}

// Atualizar grava os dados pessoais e o endereço do usuário.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	dados := lerFormDados(r)
	if erros := web.Validar(dados); len(erros) > 0 {
		h.rejeitar(w, r, acaoDados, erros)
		return
	}

	ctx := r.Context()
	c := sessao.CacheDe(ctx)
	atual, err := h.Servico.Buscar(ctx, c)
	if err != nil {
		web.Falhar(w, r, err, "", destino)
		return
	}
	if err := h.Servico.Atualizar(ctx, c, dados.corpo(atual.Email)); err != nil {
		web.Falhar(w, r, err, "", destino)
		return
	}
	web.Sucesso(w, r, "Os dados da sua conta foram atualizados com sucesso.", destino)
}

func (h *Handler) AtualizarEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	dados := formEmail{
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		SenhaAtual: r.PostFormValue("currentPassword"),
	}
	if erros := web.Validar(dados); len(erros) > 0 {
		h.rejeitar(w, r, acaoEmail, erros, "currentPassword")
		return
	}

	ctx := r.Context()
	err := h.Servico.AtualizarEmail(ctx, sessao.CacheDe(ctx), AtualizacaoEmail{
		Email:           dados.Email,
		CurrentPassword: dados.SenhaAtual,
	})
	if err != nil {
		web.Falhar(w, r, err, "", destino)
		return
	}
	web.Sucesso(w, r, "E-mail atualizado com sucesso!", destino)
}

func (h *Handler) AtualizarSenha(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	dados := formSenha{
		SenhaAtual:  r.PostFormValue("currentPassword"),
		NovaSenha:   r.PostFormValue("newPassword"),
		Confirmacao: r.PostFormValue("confirmPassword"),
	}
	if erros := web.Validar(dados); len(erros) > 0 {
		h.rejeitar(w, r, acaoSenha, erros, "currentPassword", "newPassword", "confirmPassword")
		return
	}

	err := h.Servico.AtualizarSenha(r.Context(), AtualizacaoSenha{
		NewPassword:     dados.NovaSenha,
		CurrentPassword: dados.SenhaAtual,
	})
	if err != nil {
		web.Falhar(w, r, err, "", destino)
		return
	}
	web.Sucesso(w, r, "Senha atualizada com sucesso!", destino)
}
