package metricas

import (
	"context"

	"github.com/t21arenapark/painel/internal/api"
)

type Repository interface {
	Atletas(ctx context.Context) (Quantidade, error)
	Anamneses(ctx context.Context) (Quantidade, error)
	Responsaveis(ctx context.Context) (Quantidade, error)
	IdadeMedia(ctx context.Context) (Quantidade, error)
	Generos(ctx context.Context) ([]PorGenero, error)
	UltimaSemana(ctx context.Context) ([]PorDia, error)
}

type repositoryImpl struct {
	api *api.Client
}

func NewRepository(c *api.Client) Repository {
	return &repositoryImpl{api: c}
}

func (r *repositoryImpl) quantidade(ctx context.Context, caminho string) (Quantidade, error) {
	var q Quantidade
	err := r.api.Get(ctx, caminho, nil, &q)
	return q, err
}

func (r *repositoryImpl) Atletas(ctx context.Context) (Quantidade, error) {
	return r.quantidade(ctx, "/metrics/athletes-amount")
}

func (r *repositoryImpl) Anamneses(ctx context.Context) (Quantidade, error) {
	return r.quantidade(ctx, "/metrics/anamnesis-amount")
}

func (r *repositoryImpl) Responsaveis(ctx context.Context) (Quantidade, error) {
	return r.quantidade(ctx, "/metrics/guardians-amount")
}

func (r *repositoryImpl) IdadeMedia(ctx context.Context) (Quantidade, error) {
	return r.quantidade(ctx, "/metrics/average-age-amount")
}

func (r *repositoryImpl) Generos(ctx context.Context) ([]PorGenero, error) {
	var out []PorGenero
	err := r.api.Get(ctx, "/metrics/athletes-gender-amount", nil, &out)
	return out, err
}

func (r *repositoryImpl) UltimaSemana(ctx context.Context) ([]PorDia, error) {
	var out []PorDia
	err := r.api.Get(ctx, "/metrics/last-week-athletes-amount", nil, &out)
	return out, err
}
