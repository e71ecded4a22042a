package anamnese

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/t21arenapark/painel/internal/api"
	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/web"
)

const (
	msgSucesso = "Dados da anamnese do usuário atualizados com sucesso!"
	msgFalha   = "Aconteceu um erro ao atualizar as respostas."
)

type Handler struct {
	Servico *Servico
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Servico: NewServico(repo)}
}

// Exibir mostra o questionário com um formulário por seção.
func (h *Handler) Exibir(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, nil)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, form *web.Formulario) {
	ctx := r.Context()
	a, err := h.Servico.Buscar(ctx, sessao.CacheDe(ctx), mux.Vars(r)["id"])
	if err != nil {
		web.Falhar(w, r, err, "", "/athletes")
		return
	}
	web.Renderizar(w, r, status, anamneseView(a, form))
}

// SalvarSecao compara o envio com o questionário em cache e grava só as
// respostas alteradas, uma requisição por pergunta.
func (h *Handler) SalvarSecao(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	secaoID, err := strconv.Atoi(mux.Vars(r)["sectionId"])
	if err != nil {
		web.NaoEncontrado(w, r)
		return
	}
	destino := "/anamnesis/" + id + "#" + ancoraSecao(secaoID)

	ctx := r.Context()
	c := sessao.CacheDe(ctx)
	a, err := h.Servico.Buscar(ctx, c, id)
	if err != nil {
		web.Falhar(w, r, err, "", destino)
		return
	}
	secao, ok := a.Secao(secaoID)
	if !ok {
		web.NaoEncontrado(w, r)
		return
	}

	valores, erros := Ler(secao, r.PostForm)
	if len(erros) > 0 {
		form := web.NovoFormulario(r, acaoSecao(secaoID))
		form.Erros = erros
		web.Renderizar(w, r, http.StatusUnprocessableEntity, anamneseView(a, form))
		return
	}

	if _, err := h.Servico.Salvar(ctx, c, id, secaoID, Alteracoes(secao, valores)); err != nil {
		web.Falhar(w, r, err, mensagemDeFalha(err), destino)
		return
	}
	web.Sucesso(w, r, msgSucesso, destino)
}

func mensagemDeFalha(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return msgFalha
}
