package metricas

import (
	"net/http"

	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/web"
)

type Handler struct {
	Servico *Servico
}

func NewHandler(repo Repository) *Handler {
	return &Handler{Servico: NewServico(repo)}
}

// Dashboard mostra os cartões e gráficos de métricas.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p, err := h.Servico.Painel(ctx, sessao.CacheDe(ctx))
	if err != nil {
		web.Falhar(w, r, err, "", "/")
		return
	}
	web.Renderizar(w, r, http.StatusOK, dashboardView(p))
}
