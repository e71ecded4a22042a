package metricas

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/t21arenapark/painel/internal/cache"
)

func chave(nome string) cache.Chave {
	return cache.Chave{"metrics", nome}
}

type Servico struct {
	repo Repository
}

func NewServico(repo Repository) *Servico {
	return &Servico{repo: repo}
}

// buscar agenda uma busca em cache no grupo, gravando o resultado em dst.
func buscar[T any](ctx context.Context, g *errgroup.Group, c *cache.Cache, nome string, dst *T, fn func(context.Context) (T, error)) {
	g.Go(func() error {
		v, err := cache.Buscar(ctx, c, chave(nome), fn)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

// Painel busca as seis métricas em paralelo; a primeira falha cancela as demais.
func (s *Servico) Painel(ctx context.Context, c *cache.Cache) (Painel, error) {
	var p Painel
	g, gctx := errgroup.WithContext(ctx)
	buscar(gctx, g, c, "athletes-amount", &p.Atletas, s.repo.Atletas)
	buscar(gctx, g, c, "anamnesis-amount", &p.Anamneses, s.repo.Anamneses)
	buscar(gctx, g, c, "guardians-amount", &p.Responsaveis, s.repo.Responsaveis)
	buscar(gctx, g, c, "average-age-amount", &p.IdadeMedia, s.repo.IdadeMedia)
	buscar(gctx, g, c, "athletes-gender-amount", &p.Generos, s.repo.Generos)
	buscar(gctx, g, c, "last-week-athletes-amount", &p.UltimaSemana, s.repo.UltimaSemana)
	if err := g.Wait(); err != nil {
		return Painel{}, err
	}
	return p, nil
}
