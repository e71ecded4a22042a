package voluntario

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/web"
)

// Destino é a tela que lista os voluntários.
const Destino = "/mine"

// Tela re-renderiza a página dos voluntários com um formulário rejeitado.
type Tela interface {
	RenderizarComFormulario(w http.ResponseWriter, r *http.Request, status int, form *web.Formulario)
}

type Handler struct {
	Servico *Servico
	Tela    Tela
}

func NewHandler(servico *Servico, tela Tela) *Handler {
	return &Handler{Servico: servico, Tela: tela}
}

func (h *Handler) rejeitar(w http.ResponseWriter, r *http.Request, acao string, erros web.Erros) {
	form := web.NovoFormulario(r, acao)
	delete(form.Valores, "password")
	form.Erros = erros
	h.Tela.RenderizarComFormulario(w, web.ComoLeitura(r), http.StatusUnprocessableEntity, form)
}

func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	dados := lerFormNovo(r)
	if erros := web.Validar(dados); len(erros) > 0 {
		h.rejeitar(w, r, AcaoCriar, erros)
		return
	}

	ctx := r.Context()
	if err := h.Servico.Criar(ctx, sessao.CacheDe(ctx), dados.corpo()); err != nil {
		web.Falhar(w, r, err, "", Destino)
		return
	}
	web.Sucesso(w, r, "Voluntário criado com sucesso!", Destino)
}

func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	dados := lerFormEdicao(r)
	if erros := web.Validar(dados); len(erros) > 0 {
		h.rejeitar(w, r, AcaoEditar(id), erros)
		return
	}

	ctx := r.Context()
	if err := h.Servico.Atualizar(ctx, sessao.CacheDe(ctx), id, dados.corpo()); err != nil {
		web.Falhar(w, r, err, "", Destino)
		return
	}
	web.Sucesso(w, r, "Voluntário atualizado com sucesso!", Destino)
}

func (h *Handler) Excluir(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	if err := h.Servico.Excluir(ctx, sessao.CacheDe(ctx), id); err != nil {
		web.Falhar(w, r, err, "Erro ao deletar voluntário.", Destino)
		return
	}
	web.Sucesso(w, r, "Voluntário deletado com sucesso!", Destino)
}
