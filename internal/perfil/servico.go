package perfil

import (
	"context"

	"github.com/t21arenapark/painel/internal/cache"
)

var chavePerfil = cache.Chave{"profile"}

type Servico struct {
	repo Repository
}

func NewServico(repo Repository) *Servico {
	return &Servico{repo: repo}
}

func (s *Servico) Buscar(ctx context.Context, c *cache.Cache) (Perfil, error) {
	return cache.Buscar(ctx, c, chavePerfil, s.repo.Buscar)
}

func (s *Servico) Atualizar(ctx context.Context, c *cache.Cache, dados Atualizacao) error {
	m := cache.Mutacao{Invalidar: []cache.Chave{chavePerfil}}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.Atualizar(ctx, dados)
	})
}

// AtualizarEmail troca o e-mail no perfil em cache antes da chamada e
// volta ao valor anterior se a API recusar.
func (s *Servico) AtualizarEmail(ctx context.Context, c *cache.Cache, dados AtualizacaoEmail) error {
	m := cache.Mutacao{
		Otimista: []cache.Patch{cache.Alterar(chavePerfil, func(p Perfil) Perfil {
			return p.comEmail(dados.Email)
		})},
		Invalidar: []cache.Chave{chavePerfil},
	}
	return c.Executar(ctx, m, func(ctx context.Context) error {
		return s.repo.AtualizarEmail(ctx, dados)
	})
}

func (s *Servico) AtualizarSenha(ctx context.Context, dados AtualizacaoSenha) error {
	return s.repo.AtualizarSenha(ctx, dados)
}
