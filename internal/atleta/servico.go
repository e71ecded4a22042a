package atleta

import (
	"context"
	"errors"
	"sync"

	"github.com/t21arenapark/painel/internal/cache"
)

var ErrAlteracaoPendente = errors.New("alteração de status do atleta já em andamento")

var chaveListas = cache.Chave{"athletes"}

func chavePerfil(id string) cache.Chave {
	return cache.Chave{"athlete", id}
}

// Servico aplica as regras de cache sobre o Repository.
type Servico struct {
	repo      Repository
	pendentes sync.Map
}

func NewServico(repo Repository) *Servico {
	return &Servico{repo: repo}
}

func (s *Servico) Listar(ctx context.Context, c *cache.Cache, f Filtro) (Pagina, error) {
	return cache.Buscar(ctx, c, f.Chave(), func(ctx context.Context) (Pagina, error) {
		return s.repo.Listar(ctx, f)
	})
}

func (s *Servico) BuscarPorID(ctx context.Context, c *cache.Cache, id string) (Perfil, error) {
	return cache.Buscar(ctx, c, chavePerfil(id), func(ctx context.Context) (Perfil, error) {
		return s.repo.BuscarPorID(ctx, id)
	})
}

// Pendente informa se há uma alteração de status em curso para o atleta.
func (s *Servico) Pendente(id string) bool {
	_, ok := s.pendentes.Load(id)
	return ok
}

// AlternarStatus inverte o status do atleta. Uma segunda chamada enquanto a
// primeira está em curso devolve ErrAlteracaoPendente sem chamar a API.
// Após sucesso o status é corrigido em todas as listas em cache.
func (s *Servico) AlternarStatus(ctx context.Context, c *cache.Cache, id string) error {
	if _, ja := s.pendentes.LoadOrStore(id, struct{}{}); ja {
		return ErrAlteracaoPendente
	}
	defer s.pendentes.Delete(id)

	m := cache.Mutacao{
		Confirmada: []cache.Patch{cache.Alterar(chaveListas, func(p Pagina) Pagina {
			return p.comStatusAlternado(id)
		})},
		Invalidar: []cache.Chave{chavePerfil(id)},
	}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.AlternarStatus(ctx, id)
	})
}

func (s *Servico) Criar(ctx context.Context, c *cache.Cache, novo NovoAtleta) error {
	m := cache.Mutacao{Invalidar: []cache.Chave{chaveListas}}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.Criar(ctx, novo)
	})
}

func (s *Servico) Atualizar(ctx context.Context, c *cache.Cache, id string, dados Atualizacao) error {
	m := cache.Mutacao{Invalidar: []cache.Chave{chavePerfil(id), chaveListas}}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.Atualizar(ctx, id, dados)
	})
}

func (s *Servico) AtualizarResponsavel(ctx context.Context, c *cache.Cache, atletaID, responsavelID string, dados AtualizacaoResponsavel) error {
	m := cache.Mutacao{Invalidar: []cache.Chave{chavePerfil(atletaID)}}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.AtualizarResponsavel(ctx, responsavelID, dados)
	})
}
