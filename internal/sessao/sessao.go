package sessao

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/t21arenapark/painel/internal/api"
	"github.com/t21arenapark/painel/internal/auth"
	"github.com/t21arenapark/painel/internal/cache"
)

type Estado int

const (
	Carregando Estado = iota
	Autenticado
	NaoAutenticado
)

func (e Estado) String() string {
	switch e {
	case Carregando:
		return "carregando"
	case Autenticado:
		return "autenticado"
	default:
		return "nao_autenticado"
	}
}

// Sessao é o estado de um token: resultado da verificação e cache de consultas.
type Sessao struct {
	token string
	Cache *cache.Cache

	mu        sync.Mutex
	estado    Estado
	ultimoUso time.Time
}

func (s *Sessao) Token() string { return s.token }

func (s *Sessao) Estado() Estado {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estado
}

func (s *Sessao) definir(e Estado) {
	s.mu.Lock()
	s.estado = e
	s.mu.Unlock()
}

func (s *Sessao) tocar(agora time.Time) {
	s.mu.Lock()
	s.ultimoUso = agora
	s.mu.Unlock()
}

func (s *Sessao) ociosaDesde() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ultimoUso
}

// tempoVerificacao limita a chamada compartilhada, que não segue o
// cancelamento de nenhuma das requisições que a aguardam.
const tempoVerificacao = 30 * time.Second

// Verificador confirma com a API se o token ainda é aceito.
type Verificador interface {
	Verificar(ctx context.Context) (bool, error)
}

// Gerenciador é criado uma vez no início do processo e mantém uma Sessao por token.
type Gerenciador struct {
	verificador Verificador
	cookies     *auth.Cookies
	ttlCache    time.Duration
	agora       func() time.Time
	aoFalhar    http.Handler

	mu      sync.Mutex
	sessoes map[string]*Sessao
	grupo   singleflight.Group
}

func NewGerenciador(v Verificador, cookies *auth.Cookies, ttlCache time.Duration) *Gerenciador {
	return &Gerenciador{
		verificador: v,
		cookies:     cookies,
		ttlCache:    ttlCache,
		agora:       time.Now,
		sessoes:     make(map[string]*Sessao),
		aoFalhar: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		}),
	}
}

// AoFalharVerificacao define a resposta quando a API não pôde confirmar a
// sessão (rede, 5xx); a sessão continua em Carregando e o cookie fica.
func (g *Gerenciador) AoFalharVerificacao(h http.Handler) {
	g.aoFalhar = h
}

// Obter devolve a sessão do token, criando-a em Carregando.
func (g *Gerenciador) Obter(token string) *Sessao {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessoes[token]
	if !ok {
		s = &Sessao{token: token, Cache: cache.New(g.ttlCache), estado: Carregando}
		g.sessoes[token] = s
	}
	s.tocar(g.agora())
	return s
}

// Verificar resolve o estado da sessão com uma única chamada à API,
// compartilhada por requisições concorrentes do mesmo token. Só uma
// resposta de sessão inválida encerra a sessão; outras falhas devolvem
// Carregando e a próxima requisição tenta de novo.
func (g *Gerenciador) Verificar(ctx context.Context, s *Sessao) Estado {
	if e := s.Estado(); e != Carregando {
		return e
	}
	v, _, _ := g.grupo.Do(s.token, func() (any, error) {
		if e := s.Estado(); e != Carregando {
			return e, nil
		}
		vctx, cancel := context.WithTimeout(context.WithoutCancel(api.ComToken(ctx, s.token)), tempoVerificacao)
		defer cancel()
		ok, err := g.verificador.Verificar(vctx)
		e := NaoAutenticado
		switch {
		case err != nil && !api.SessaoInvalida(err):
			slog.WarnContext(ctx, "falha ao verificar sessão", "error", err)
			return Carregando, nil
		case err != nil:
			slog.InfoContext(ctx, "sessão recusada pela API", "error", err)
		case ok:
			e = Autenticado
		}
		s.definir(e)
		if e == NaoAutenticado {
			g.Encerrar(s.token)
		}
		return e, nil
	})
	return v.(Estado)
}

// Encerrar descarta a sessão e o seu cache.
func (g *Gerenciador) Encerrar(token string) {
	g.mu.Lock()
	s, ok := g.sessoes[token]
	delete(g.sessoes, token)
	g.mu.Unlock()
	if ok {
		s.definir(NaoAutenticado)
		s.Cache.Limpar()
	}
}

// Iniciar grava o cookie de um token recém emitido.
func (g *Gerenciador) Iniciar(w http.ResponseWriter, token string) error {
	g.Encerrar(token)
	return g.cookies.Gravar(w, token)
}

// Sair encerra a sessão do token atual e limpa o cookie.
func (g *Gerenciador) Sair(w http.ResponseWriter, r *http.Request) {
	if token, err := g.cookies.Ler(r); err == nil {
		g.Encerrar(token)
	}
	g.cookies.Limpar(w)
}

// LimparCookie é usado por /sign-in?logout=true.
func (g *Gerenciador) LimparCookie(w http.ResponseWriter) {
	g.cookies.Limpar(w)
}

func (g *Gerenciador) Ativas() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessoes)
}

// Podar remove sessões sem uso há mais que ociosidade.
func (g *Gerenciador) Podar(ociosidade time.Duration) int {
	limite := g.agora().Add(-ociosidade)
	g.mu.Lock()
	var velhas []string
	for token, s := range g.sessoes {
		if s.ociosaDesde().Before(limite) {
			velhas = append(velhas, token)
		}
	}
	g.mu.Unlock()
	for _, token := range velhas {
		g.Encerrar(token)
	}
	return len(velhas)
}

// IniciarLimpeza poda sessões ociosas periodicamente até ctx terminar.
func (g *Gerenciador) IniciarLimpeza(ctx context.Context, intervalo, ociosidade time.Duration) {
	ticker := time.NewTicker(intervalo)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := g.Podar(ociosidade); n > 0 {
					slog.Info("sessões ociosas removidas", "total", n)
				}
			}
		}
	}()
}
