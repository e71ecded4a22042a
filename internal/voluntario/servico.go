package voluntario

import (
	"context"

	"github.com/t21arenapark/painel/internal/cache"
)

var chaveLista = cache.Chave{"volunteers"}

type Servico struct {
	repo Repository
}

func NewServico(repo Repository) *Servico {
	return &Servico{repo: repo}
}

func (s *Servico) Listar(ctx context.Context, c *cache.Cache) (Lista, error) {
	return cache.Buscar(ctx, c, chaveLista, s.repo.Listar)
}

func (s *Servico) Criar(ctx context.Context, c *cache.Cache, novo Novo) error {
	novo.Role = PapelVoluntario
	m := cache.Mutacao{Invalidar: []cache.Chave{chaveLista}}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.Criar(ctx, novo)
	})
}

func (s *Servico) Atualizar(ctx context.Context, c *cache.Cache, id string, dados Atualizacao) error {
	m := cache.Mutacao{Invalidar: []cache.Chave{chaveLista}}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.Atualizar(ctx, id, dados)
	})
}

// Excluir desativa o voluntário na API. Em caso de sucesso a lista em cache
// passa a trazê-lo inativo, sem nova busca; a API só muda o status.
func (s *Servico) Excluir(ctx context.Context, c *cache.Cache, id string) error {
	m := cache.Mutacao{
		Confirmada: []cache.Patch{cache.Alterar(chaveLista, func(l Lista) Lista {
			return l.comInativo(id)
		})},
	}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.Excluir(ctx, id)
	})
}
