package perfil

import (
	"log/slog"
	"net/http"

	"github.com/t21arenapark/painel/internal/api"
	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/web"
)

// CarregarConta coloca no contexto o resumo do usuário logado usado pelo
// menu do layout. Falhas que não invalidam a sessão só escondem o menu.
func CarregarConta(s *Servico) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			p, err := s.Buscar(ctx, sessao.CacheDe(ctx))
			if err != nil {
				if api.SessaoInvalida(err) && sessao.Desviar(ctx) {
					return
				}
				slog.WarnContext(ctx, "falha ao carregar conta", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			ctx = web.ComConta(ctx, web.Conta{
				Nome:     p.Name,
				Email:    p.Email,
				Iniciais: p.Initials,
				Papel:    p.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
