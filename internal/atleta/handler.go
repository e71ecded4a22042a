package atleta

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/web"
)

// Handler atende as telas de atletas.
type Handler struct {
	Servico *Servico
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Servico: NewServico(repo)}
}

// Listar mostra a tabela paginada com os filtros da query.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	h.renderLista(w, r, http.StatusOK, nil)
}

func (h *Handler) renderLista(w http.ResponseWriter, r *http.Request, status int, form *web.Formulario) {
	ctx := r.Context()
	f := FiltroDe(r.URL.Query())
	pagina, err := h.Servico.Listar(ctx, sessao.CacheDe(ctx), f)
	if err != nil {
		web.Falhar(w, r, err, "", "/athletes")
		return
	}
	web.Renderizar(w, r, status, listaView(telaLista{
		Filtro:   f,
		Pagina:   pagina,
		Pendente: h.Servico.Pendente,
		Form:     form,
	}))
}

// Criar cadastra um atleta. Com erro de validação a lista volta com o
// formulário aberto.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	dados := formNovoAtleta{
		formAtleta:      lerFormAtleta(r),
		NomeResponsavel: strings.TrimSpace(r.PostFormValue("guardianName")),
	}
	if erros := web.Validar(dados); len(erros) > 0 {
		form := web.NovoFormulario(r, acaoCriar)
		form.Erros = erros
		h.renderLista(w, web.ComoLeitura(r), http.StatusUnprocessableEntity, form)
		return
	}

	ctx := r.Context()
	if err := h.Servico.Criar(ctx, sessao.CacheDe(ctx), dados.corpo()); err != nil {
		web.Falhar(w, r, err, "", "/athletes")
		return
	}
	web.Sucesso(w, r, "Atleta cadastrado com sucesso!", "/athletes")
}

// Detalhe mostra o perfil do atleta.
func (h *Handler) Detalhe(w http.ResponseWriter, r *http.Request) {
	h.renderPerfil(w, r, http.StatusOK, nil)
}

func (h *Handler) renderPerfil(w http.ResponseWriter, r *http.Request, status int, form *web.Formulario) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	perfil, err := h.Servico.BuscarPorID(ctx, sessao.CacheDe(ctx), id)
	if err != nil {
		web.Falhar(w, r, err, "", "/athletes")
		return
	}
	web.Renderizar(w, r, status, perfilView(telaPerfil{Atleta: perfil, Form: form}))
}

// Atualizar grava os dados pessoais do atleta.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	destino := "/athletes/" + id
	dados := lerFormAtleta(r)
	if erros := web.Validar(dados); len(erros) > 0 {
		form := web.NovoFormulario(r, acaoEditar)
		form.Erros = erros
		h.renderPerfil(w, web.ComoLeitura(r), http.StatusUnprocessableEntity, form)
		return
	}

	ctx := r.Context()
	if err := h.Servico.Atualizar(ctx, sessao.CacheDe(ctx), id, dados.corpo()); err != nil {
		web.Falhar(w, r, err, "", destino)
		return
	}
	web.Sucesso(w, r, "Os dados do atleta foram atualizados com sucesso.", destino)
}

// AlternarStatus ativa ou inativa o atleta e volta para a lista de onde veio.
func (h *Handler) AlternarStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	destino := r.PostFormValue("redirect")
	if !strings.HasPrefix(destino, "/athletes") {
		destino = "/athletes"
	}

	ctx := r.Context()
	err := h.Servico.AlternarStatus(ctx, sessao.CacheDe(ctx), id)
	if errors.Is(err, ErrAlteracaoPendente) {
		web.ToastDeErro(w, "O status deste atleta já está sendo atualizado.")
		web.Redirecionar(w, r, destino)
		return
	}
	if err != nil {
		web.Falhar(w, r, err, "Erro ao atualizar o status do atleta", destino)
		return
	}
	nome := strings.TrimSpace(r.PostFormValue("name"))
	web.Sucesso(w, r, fmt.Sprintf("O status do %s atualizado com sucesso!", nome), destino)
}

// AtualizarResponsavel grava os dados do responsável do atleta.
func (h *Handler) AtualizarResponsavel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	destino := "/athletes/" + id
	dados := lerFormResponsavel(r)
	if erros := web.Validar(dados); len(erros) > 0 {
		form := web.NovoFormulario(r, acaoResponsavel)
		form.Erros = erros
		h.renderPerfil(w, web.ComoLeitura(r), http.StatusUnprocessableEntity, form)
		return
	}

	ctx := r.Context()
	if err := h.Servico.AtualizarResponsavel(ctx, sessao.CacheDe(ctx), id, dados.ID, dados.corpo()); err != nil {
		web.Falhar(w, r, err, "", destino)
		return
	}
	web.Sucesso(w, r, "Os dados do responsável foram atualizados com sucesso.", destino)
}
