package web

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/api"
	"github.com/t21arenapark/painel/internal/sessao"
)

// Renderizar escreve o componente como página HTML.
func Renderizar(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	if sessao.Redirecionado(r.Context()) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		slog.ErrorContext(r.Context(), "erro ao renderizar página", "path", r.URL.Path, "error", err)
	}
}

// Redirecionar aplica post/redirect/get.
func Redirecionar(w http.ResponseWriter, r *http.Request, destino string) {
	if sessao.Redirecionado(r.Context()) {
		return
	}
	http.Redirect(w, r, destino, http.StatusSeeOther)
}

// Sucesso registra o toast e volta para destino.
func Sucesso(w http.ResponseWriter, r *http.Request, msg, destino string) {
	ToastDeSucesso(w, msg)
	Redirecionar(w, r, destino)
}

// Falhar trata o erro de uma chamada à API. Sessão inválida vira redirecionamento
// para o login; em GET mostra a página de erro e em mutações o toast com msg
// (ou a mensagem da API, quando msg é vazio) antes de voltar para destino.
func Falhar(w http.ResponseWriter, r *http.Request, err error, msg, destino string) {
	ctx := r.Context()
	if sessao.Redirecionado(ctx) {
		return
	}
	if api.SessaoInvalida(err) && sessao.Desviar(ctx) {
		return
	}

	if r.Method == http.MethodGet {
		if api.NaoEncontrado(err) {
			Renderizar(w, r, http.StatusNotFound, PaginaNaoEncontrada())
			return
		}
		slog.ErrorContext(ctx, "falha ao carregar página", "path", r.URL.Path, "error", err)
		Renderizar(w, r, http.StatusBadGateway, PaginaErro())
		return
	}

	slog.WarnContext(ctx, "falha em mutação", "path", r.URL.Path, "error", err)
	if msg == "" {
		msg = api.Mensagem(err)
	}
	ToastDeErro(w, msg)
	Redirecionar(w, r, destino)
}

func NaoEncontrado(w http.ResponseWriter, r *http.Request) {
	Renderizar(w, r, http.StatusNotFound, PaginaNaoEncontrada())
}

// ComoLeitura copia r como GET, para que a re-renderização de um formulário
// rejeitado trate falhas da API como falhas de leitura.
func ComoLeitura(r *http.Request) *http.Request {
	r2 := r.Clone(r.Context())
	r2.Method = http.MethodGet
	return r2
}
