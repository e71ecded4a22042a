package voluntario

import (
	"context"
	"net/url"

	"github.com/t21arenapark/painel/internal/api"
)

type Repository interface {
	Listar(ctx context.Context) (Lista, error)
	Criar(ctx context.Context, novo Novo) error
	Atualizar(ctx context.Context, id string, dados Atualizacao) error
	Excluir(ctx context.Context, id string) error
}

type repositoryImpl struct {
	api *api.Client
}

func NewRepository(c *api.Client) Repository {
	return &repositoryImpl{api: c}
}

func (r *repositoryImpl) Listar(ctx context.Context) (Lista, error) {
	var l Lista
	err := r.api.Get(ctx, "/volunteers", nil, &l)
	return l, err
}

func (r *repositoryImpl) Criar(ctx context.Context, novo Novo) error {
	return r.api.Post(ctx, "/volunteers", novo, nil)
}

func (r *repositoryImpl) Atualizar(ctx context.Context, id string, dados Atualizacao) error {
	return r.api.Put(ctx, "/volunteers/"+url.PathEscape(id), dados, nil)
}

func (r *repositoryImpl) Excluir(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/volunteers/"+url.PathEscape(id), nil)
}
