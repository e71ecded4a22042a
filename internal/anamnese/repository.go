package anamnese

import (
	"context"
	"fmt"
	"net/url"

	"github.com/t21arenapark/painel/internal/api"
)

type Repository interface {
	Buscar(ctx context.Context, id string) (Anamnese, error)
	Responder(ctx context.Context, id string, secaoID, perguntaID int, corpo CorpoResposta) error
}

type repositoryImpl struct {
	api *api.Client
}

func NewRepository(c *api.Client) Repository {
	return &repositoryImpl{api: c}
}

func (r *repositoryImpl) Buscar(ctx context.Context, id string) (Anamnese, error) {
	var a Anamnese
	err := r.api.Get(ctx, "/anamnesis/"+url.PathEscape(id), nil, &a)
	return a, err
}

func (r *repositoryImpl) Responder(ctx context.Context, id string, secaoID, perguntaID int, corpo CorpoResposta) error {
	caminho := fmt.Sprintf("/anamnesis/%s/section/%d/question/%d/answer", url.PathEscape(id), secaoID, perguntaID)
	return r.api.Patch(ctx, caminho, corpo, nil)
}
