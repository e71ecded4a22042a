package atleta

import (
	"context"
	"net/url"

	"github.com/t21arenapark/painel/internal/api"
)

type Repository interface {
	Listar(ctx context.Context, f Filtro) (Pagina, error)
	BuscarPorID(ctx context.Context, id string) (Perfil, error)
	Criar(ctx context.Context, novo NovoAtleta) error
	Atualizar(ctx context.Context, id string, dados Atualizacao) error
	AlternarStatus(ctx context.Context, id string) error
	AtualizarResponsavel(ctx context.Context, id string, dados AtualizacaoResponsavel) error
}

type repositoryImpl struct {
	api *api.Client
}

func NewRepository(c *api.Client) Repository {
	return &repositoryImpl{api: c}
}

func (r *repositoryImpl) Listar(ctx context.Context, f Filtro) (Pagina, error) {
	var p Pagina
	err := r.api.Get(ctx, "/athletes", f.Query(), &p)
	return p, err
}

func (r *repositoryImpl) BuscarPorID(ctx context.Context, id string) (Perfil, error) {
	var p Perfil
	err := r.api.Get(ctx, "/athletes/"+url.PathEscape(id), nil, &p)
	return p, err
}

func (r *repositoryImpl) Criar(ctx context.Context, novo NovoAtleta) error {
	return r.api.Post(ctx, "/athletes", novo, nil)
}

func (r *repositoryImpl) Atualizar(ctx context.Context, id string, dados Atualizacao) error {
	return r.api.Patch(ctx, "/athletes/"+url.PathEscape(id), dados, nil)
}

// AlternarStatus inverte o status no servidor; a requisição não tem corpo.
func (r *repositoryImpl) AlternarStatus(ctx context.Context, id string) error {
	return r.api.Patch(ctx, "/athletes/"+url.PathEscape(id)+"/status", nil, nil)
}

func (r *repositoryImpl) AtualizarResponsavel(ctx context.Context, id string, dados AtualizacaoResponsavel) error {
	return r.api.Patch(ctx, "/guardians/"+url.PathEscape(id), dados, nil)
}
