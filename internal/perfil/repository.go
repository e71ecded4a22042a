package perfil

import (
	"context"

	"github.com/t21arenapark/painel/internal/api"
)

type Repository interface {
	Buscar(ctx context.Context) (Perfil, error)
	Atualizar(ctx context.Context, dados Atualizacao) error
	AtualizarEmail(ctx context.Context, dados AtualizacaoEmail) error
	AtualizarSenha(ctx context.Context, dados AtualizacaoSenha) error
}

type repositoryImpl struct {
	api *api.Client
}

func NewRepository(c *api.Client) Repository {
	return &repositoryImpl{api: c}
}

func (r *repositoryImpl) Buscar(ctx context.Context) (Perfil, error) {
	var p Perfil
	err := r.api.Get(ctx, "/me", nil, &p)
	return p, err
}

func (r *repositoryImpl) Atualizar(ctx context.Context, dados Atualizacao) error {
	return r.api.Put(ctx, "/me", dados, nil)
}

func (r *repositoryImpl) AtualizarEmail(ctx context.Context, dados AtualizacaoEmail) error {
	return r.api.Patch(ctx, "/update-email", dados, nil)
}

func (r *repositoryImpl) AtualizarSenha(ctx context.Context, dados AtualizacaoSenha) error {
	return r.api.Patch(ctx, "/update-password", dados, nil)
}
