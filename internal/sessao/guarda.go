package sessao

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/t21arenapark/painel/internal/api"
	"github.com/t21arenapark/painel/internal/auth"
	"github.com/t21arenapark/painel/internal/cache"
)

const DestinoLogout = "/sign-in?logout=true"

type ctxKey string

const (
	ctxSessao ctxKey = "sessao"
	ctxDesvio ctxKey = "desvio"
)

// desvio garante um único redirecionamento por requisição,
// mesmo com várias chamadas concorrentes recebendo 401.
type desvio struct {
	g     *Gerenciador
	token string
	w     http.ResponseWriter
	r     *http.Request
	once  sync.Once
	feito atomic.Bool
}

func (d *desvio) disparar() {
	d.once.Do(func() {
		if d.token != "" {
			d.g.Encerrar(d.token)
		}
		d.g.cookies.Limpar(d.w)
		http.Redirect(d.w, d.r, DestinoLogout, http.StatusSeeOther)
		d.feito.Store(true)
	})
}

// Proteger só deixa passar requisições com sessão autenticada.
func (g *Gerenciador) Proteger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d := &desvio{g: g, w: w, r: r}
		ctx := context.WithValue(r.Context(), ctxDesvio, d)

		token, err := g.cookies.Ler(r)
		if err != nil || auth.Expirado(token, g.agora()) {
			d.token = token
			d.disparar()
			return
		}
		d.token = token
		ctx = api.ComToken(ctx, token)

		s := g.Obter(token)
		estado := g.Verificar(ctx, s)
		if Redirecionado(ctx) {
			return
		}
		if estado == Carregando {
			g.aoFalhar.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		if estado != Autenticado {
			d.disparar()
			return
		}

		ctx = context.WithValue(ctx, ctxSessao, s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AoSessaoInvalida é o callback do api.Client para 401/403 de sessão.
func AoSessaoInvalida(ctx context.Context, _ *api.Error) {
	Desviar(ctx)
}

// Desviar encerra a sessão e redireciona para o login, uma vez por requisição.
// Devolve falso fora de uma rota protegida.
func Desviar(ctx context.Context) bool {
	d, ok := ctx.Value(ctxDesvio).(*desvio)
	if !ok {
		return false
	}
	d.disparar()
	return true
}

// Redirecionado informa se a resposta já foi um redirecionamento de sessão.
func Redirecionado(ctx context.Context) bool {
	d, ok := ctx.Value(ctxDesvio).(*desvio)
	return ok && d.feito.Load()
}

func SessaoDe(ctx context.Context) *Sessao {
	s, _ := ctx.Value(ctxSessao).(*Sessao)
	return s
}

// CacheDe devolve o cache da sessão; fora de uma sessão, um cache descartável.
func CacheDe(ctx context.Context) *cache.Cache {
	if s := SessaoDe(ctx); s != nil {
		return s.Cache
	}
	return cache.New(0)
}
