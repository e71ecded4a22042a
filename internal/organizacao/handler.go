package organizacao

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/t21arenapark/painel/internal/cache"
	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/voluntario"
	"github.com/t21arenapark/painel/internal/web"
)

const acaoEndereco = "endereco"

var chaveOrganizacao = cache.Chave{"orgs"}

type formEndereco struct {
	Rua         string `form:"street" validate:"max=255"`
	Numero      string `form:"number" validate:"max=20"`
	Complemento string `form:"complement" validate:"max=255"`
	Bairro      string `form:"neighborhood" validate:"max=255"`
	Cidade      string `form:"city" validate:"max=255"`
	UF          string `form:"uf" validate:"max=2" msg:"Use a sigla do estado"`
	CEP         string `form:"zipcode" validate:"max=9"`
	Pais        string `form:"country" validate:"max=255"`
}

func lerFormEndereco(r *http.Request) formEndereco {
	campo := func(nome string) string { return strings.TrimSpace(r.PostFormValue(nome)) }
	return formEndereco{
		Rua:         campo("street"),
		Numero:      campo("number"),
		Complemento: campo("complement"),
		Bairro:      campo("neighborhood"),
		Cidade:      campo("city"),
		UF:          strings.ToUpper(campo("uf")),
		CEP:         campo("zipcode"),
		Pais:        campo("country"),
	}
}

func (f formEndereco) corpo() AtualizacaoEndereco {
	return AtualizacaoEndereco{
		Street:       f.Rua,
		Neighborhood: f.Bairro,
		Zipcode:      f.CEP,
		Complement:   f.Complemento,
		Number:       f.Numero,
		City:         f.Cidade,
		UF:           f.UF,
		Country:      f.Pais,
	}
}

// Handler atende a tela "Minha organização", que também lista os voluntários.
type Handler struct {
	Repository  Repository
	Voluntarios *voluntario.Servico
}

func NewHandler(repo Repository, voluntarios *voluntario.Servico) *Handler {
	return &Handler{Repository: repo, Voluntarios: voluntarios}
}

func (h *Handler) buscar(ctx context.Context, c *cache.Cache) (Organizacao, error) {
	return cache.Buscar(ctx, c, chaveOrganizacao, h.Repository.Buscar)
}

func (h *Handler) Tela(w http.ResponseWriter, r *http.Request) {
	h.RenderizarComFormulario(w, r, http.StatusOK, nil)
}

// RenderizarComFormulario carrega organização e voluntários em paralelo.
func (h *Handler) RenderizarComFormulario(w http.ResponseWriter, r *http.Request, status int, form *web.Formulario) {
	ctx := r.Context()
	c := sessao.CacheDe(ctx)

	var (
		org   Organizacao
		lista voluntario.Lista
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		org, err = h.buscar(gctx, c)
		return err
	})
	g.Go(func() error {
		var err error
		lista, err = h.Voluntarios.Listar(gctx, c)
		return err
	})
	if err := g.Wait(); err != nil {
		web.Falhar(w, r, err, "", voluntario.Destino)
		return
	}
	web.Renderizar(w, r, status, organizacaoView(org, lista, form))
}

// AtualizarEndereco grava o endereço da organização.
func (h *Handler) AtualizarEndereco(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	dados := lerFormEndereco(r)
	if erros := web.Validar(dados); len(erros) > 0 {
		form := web.NovoFormulario(r, acaoEndereco)
		form.Erros = erros
		h.RenderizarComFormulario(w, web.ComoLeitura(r), http.StatusUnprocessableEntity, form)
		return
	}

	ctx := r.Context()
	c := sessao.CacheDe(ctx)
	m := cache.Mutacao{Invalidar: []cache.Chave{chaveOrganizacao}}
	err := c.Executar(ctx, m, func(ctx context.Context) error {
		return h.Repository.AtualizarEndereco(ctx, dados.corpo())
	})
	if err != nil {
		web.Falhar(w, r, err, "", voluntario.Destino)
		return
	}
	web.Sucesso(w, r, "Os dados da sua organização foram atualizados com sucesso.", voluntario.Destino)
}
