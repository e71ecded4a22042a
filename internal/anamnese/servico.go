package anamnese

import (
	"context"
	"log/slog"

	"github.com/t21arenapark/painel/internal/cache"
)

func chave(id string) cache.Chave {
	return cache.Chave{"anamnesis", id}
}

type Servico struct {
	repo Repository
}

func NewServico(repo Repository) *Servico {
	return &Servico{repo: repo}
}

func (s *Servico) Buscar(ctx context.Context, c *cache.Cache, id string) (Anamnese, error) {
	return cache.Buscar(ctx, c, chave(id), func(ctx context.Context) (Anamnese, error) {
		return s.repo.Buscar(ctx, id)
	})
}

// Salvar grava as alterações de uma seção. O questionário em cache é
// invalidado mesmo em falha, para que gravações parciais apareçam.
func (s *Servico) Salvar(ctx context.Context, c *cache.Cache, id string, secaoID int, alteracoes []Alteracao) (int, error) {
	if len(alteracoes) == 0 {
		return 0, nil
	}
	n, err := Aplicar(ctx, s.repo, id, secaoID, alteracoes)
	c.Invalidar(chave(id))
	if err != nil {
		slog.WarnContext(ctx, "anamnese gravada parcialmente",
			"anamnesis_id", id, "section_id", secaoID, "gravadas", n, "total", len(alteracoes), "error", err)
	}
	return n, err
}
