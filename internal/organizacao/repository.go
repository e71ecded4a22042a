package organizacao

import (
	"context"

	"github.com/t21arenapark/painel/internal/api"
)

type Repository interface {
	Buscar(ctx context.Context) (Organizacao, error)
	AtualizarEndereco(ctx context.Context, dados AtualizacaoEndereco) error
}

type repositoryImpl struct {
	api *api.Client
}

func NewRepository(c *api.Client) Repository {
	return &repositoryImpl{api: c}
}

func (r *repositoryImpl) Buscar(ctx context.Context) (Organizacao, error) {
	var o Organizacao
	err := r.api.Get(ctx, "/orgs", nil, &o)
	return o, err
}

func (r *repositoryImpl) AtualizarEndereco(ctx context.Context, dados AtualizacaoEndereco) error {
	return r.api.Put(ctx, "/orgs", dados, nil)
}
