package emulador

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

// Autenticar exige um bearer token válido e guarda as claims no contexto.
func (e *Emissor) Autenticar(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			escreverErro(w, http.StatusUnauthorized, CodigoNaoAutorizado, "Token ausente.")
			return
		}
		claims, err := e.ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			escreverErro(w, http.StatusUnauthorized, CodigoNaoAutorizado, "Token inválido.")
			return
		}
		ctx := context.WithValue(r.Context(), ctxClaims, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExigirAdministrador barra voluntários na gestão da organização.
func ExigirAdministrador(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c := claimsDe(r.Context()); c == nil || c.Role != PapelAdministrador {
			escreverErro(w, http.StatusForbidden, CodigoProibido, "Acesso restrito a administradores.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func claimsDe(ctx context.Context) *Claims {
	c, _ := ctx.Value(ctxClaims).(*Claims)
	return c
}
