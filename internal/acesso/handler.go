package acesso

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/t21arenapark/painel/internal/auth"
	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/web"
)

const (
	acaoEntrar    = "entrar"
	acaoRecuperar = "recuperar"
)

type formEntrar struct {
	Email string `form:"email" validate:"required,email" msg:"E-mail inválido"`
	Senha string `form:"password" validate:"min=6" msg:"Senha deve ter ao menos 6 caracteres"`
}

type formRecuperar struct {
	Email     string `form:"email" validate:"required,email" msg:"E-mail inválido"`
	NovaSenha string `form:"newPassword" validate:"min=6" msg:"Senha deve ter ao menos 6 caracteres"`
}

// Handler atende login, recuperação de senha e logout.
type Handler struct {
	Repository auth.Repository
	Sessoes    *sessao.Gerenciador
}

func NewHandler(repo auth.Repository, sessoes *sessao.Gerenciador) *Handler {
	return &Handler{Repository: repo, Sessoes: sessoes}
}

// TelaEntrar mostra o login. Com logout=true o cookie de sessão é apagado.
func (h *Handler) TelaEntrar(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("logout") == "true" {
		h.Sessoes.Sair(w, r)
	}
	web.Renderizar(w, r, http.StatusOK, entrarView(nil))
}

// Entrar autentica e grava o cookie com o token emitido pela API.
func (h *Handler) Entrar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	dados := formEntrar{
		Email: strings.TrimSpace(r.PostFormValue("email")),
		Senha: r.PostFormValue("password"),
	}
	if erros := web.Validar(dados); len(erros) > 0 {
		form := web.NovoFormulario(r, acaoEntrar)
		delete(form.Valores, "password")
		form.Erros = erros
		web.Renderizar(w, r, http.StatusUnprocessableEntity, entrarView(form))
		return
	}

	token, err := h.Repository.Entrar(r.Context(), dados.Email, dados.Senha)
	if err != nil {
		web.Falhar(w, r, err, "", "/sign-in")
		return
	}
	if err := h.Sessoes.Iniciar(w, token); err != nil {
		slog.ErrorContext(r.Context(), "erro ao gravar cookie de sessão", "error", err)
		web.ToastDeErro(w, "Aconteceu um erro inesperado.")
		web.Redirecionar(w, r, "/sign-in")
		return
	}
	slog.InfoContext(r.Context(), "login realizado", "email", dados.Email)
	web.Redirecionar(w, r, "/")
}

func (h *Handler) TelaRecuperar(w http.ResponseWriter, r *http.Request) {
	web.Renderizar(w, r, http.StatusOK, recuperarView(nil))
}

// Recuperar troca a senha pelo e-mail e volta para o login.
func (h *Handler) Recuperar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	dados := formRecuperar{
		Email:     strings.TrimSpace(r.PostFormValue("email")),
		NovaSenha: r.PostFormValue("newPassword"),
	}
	if erros := web.Validar(dados); len(erros) > 0 {
		form := web.NovoFormulario(r, acaoRecuperar)
		delete(form.Valores, "newPassword")
		form.Erros = erros
		web.Renderizar(w, r, http.StatusUnprocessableEntity, recuperarView(form))
		return
	}

	if err := h.Repository.RecuperarSenha(r.Context(), dados.Email, dados.NovaSenha); err != nil {
		web.Falhar(w, r, err, "", "/forgot")
		return
	}
	web.Sucesso(w, r, "Sua senha foi atualizada com sucesso.", "/sign-in?change-password=true")
}

// Sair avisa a API e encerra a sessão local mesmo se a chamada falhar.
func (h *Handler) Sair(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Repository.Sair(ctx); err != nil {
		slog.WarnContext(ctx, "falha ao encerrar sessão na API", "error", err)
	}
	if sessao.Redirecionado(ctx) {
		return
	}
	h.Sessoes.Sair(w, r)
	web.Redirecionar(w, r, "/sign-in")
}
