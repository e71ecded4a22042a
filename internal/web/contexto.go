package web

import (
	"context"
	"net/http"

	"github.com/gorilla/csrf"
)

const CampoCSRFNome = "csrf_token"

type ctxKey string

const (
	ctxRequisicao ctxKey = "requisicao"
	ctxConta      ctxKey = "conta"
)

type requisicao struct {
	csrf  string
	toast *Toast
	path  string
}

// Conta resume o usuário logado para o menu do layout.
type Conta struct {
	Nome     string
	Email    string
	Iniciais string
	Papel    string
}

// Contexto guarda no contexto o token CSRF, o toast pendente e o caminho atual.
func Contexto(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := &requisicao{csrf: csrf.Token(r), path: r.URL.Path}
		if r.Method == http.MethodGet {
			if t, ok := ConsumirToast(w, r); ok {
				req.toast = &t
			}
		}
		ctx := context.WithValue(r.Context(), ctxRequisicao, req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func dadosRequisicao(ctx context.Context) *requisicao {
	if r, ok := ctx.Value(ctxRequisicao).(*requisicao); ok {
		return r
	}
	return &requisicao{}
}

func TokenCSRF(ctx context.Context) string {
	return dadosRequisicao(ctx).csrf
}

func ToastAtual(ctx context.Context) (Toast, bool) {
	r := dadosRequisicao(ctx)
	if r.toast == nil {
		return Toast{}, false
	}
	return *r.toast, true
}

func CaminhoAtual(ctx context.Context) string {
	return dadosRequisicao(ctx).path
}

func ComConta(ctx context.Context, c Conta) context.Context {
	return context.WithValue(ctx, ctxConta, c)
}

func ContaDe(ctx context.Context) (Conta, bool) {
	c, ok := ctx.Value(ctxConta).(Conta)
	return c, ok
}
