package auth

import (
	"context"
	"errors"

	"github.com/t21arenapark/painel/internal/api"
)

type Repository interface {
	Entrar(ctx context.Context, email, senha string) (string, error)
	Sair(ctx context.Context) error
	Verificar(ctx context.Context) (bool, error)
	RecuperarSenha(ctx context.Context, email, novaSenha string) error
}

type repositoryImpl struct {
	api *api.Client
}

func NewRepository(c *api.Client) Repository {
	return &repositoryImpl{api: c}
}

// Entrar autentica em POST /sessions e devolve o token.
func (r *repositoryImpl) Entrar(ctx context.Context, email, senha string) (string, error) {
	body := map[string]string{"email": email, "password": senha}
	var resp struct {
		Token string `json:"token"`
	}
	if err := r.api.Post(ctx, "/sessions", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("auth: resposta de /sessions sem token")
	}
	return resp.Token, nil
}

func (r *repositoryImpl) Sair(ctx context.Context) error {
	return r.api.Post(ctx, "/sign-out", nil, nil)
}

func (r *repositoryImpl) Verificar(ctx context.Context) (bool, error) {
	var resp struct {
		Authenticated bool `json:"authenticated"`
	}
	if err := r.api.Get(ctx, "/verify-auth", nil, &resp); err != nil {
		return false, err
	}
	return resp.Authenticated, nil
}

func (r *repositoryImpl) RecuperarSenha(ctx context.Context, email, novaSenha string) error {
	body := map[string]string{"email": email, "newPassword": novaSenha}
	return r.api.Patch(ctx, "/forgot-password", body, nil)
}
