package emulador

import (
	"math"
	"net/http"
	"strings"
	"time"
)

type quantidadeJSON struct {
	Amount float64 `json:"amount"`
}

type generoJSON struct {
	Gender string `json:"gender"`
	Amount int    `json:"amount"`
}

type diaJSON struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func (h *Handler) contagem(w http.ResponseWriter, r *http.Request, fn func(orgID string) (int64, error)) {
	n, err := fn(orgDe(r))
	if err != nil {
		falhaBanco(w, r, err, "Métrica")
		return
	}
	escreverJSON(w, http.StatusOK, quantidadeJSON{Amount: float64(n)})
}

func (h *Handler) MetricaAtletas(w http.ResponseWriter, r *http.Request) {
	h.contagem(w, r, func(org string) (int64, error) { return h.Repository.ContarAtletas(h.DB, org) })
}

func (h *Handler) MetricaAnamneses(w http.ResponseWriter, r *http.Request) {
	h.contagem(w, r, func(org string) (int64, error) { return h.Repository.ContarAnamneses(h.DB, org) })
}

func (h *Handler) MetricaResponsaveis(w http.ResponseWriter, r *http.Request) {
	h.contagem(w, r, func(org string) (int64, error) { return h.Repository.ContarResponsaveis(h.DB, org) })
}

// MetricaIdadeMedia responde a média de idade com uma casa decimal.
func (h *Handler) MetricaIdadeMedia(w http.ResponseWriter, r *http.Request) {
	nascimentos, err := h.Repository.Nascimentos(h.DB, orgDe(r))
	if err != nil {
		falhaBanco(w, r, err, "Métrica")
		return
	}
	var media float64
	if len(nascimentos) > 0 {
		agora := h.agora()
		soma := 0
		for _, n := range nascimentos {
			soma += Idade(n, agora)
		}
		media = math.Round(float64(soma)/float64(len(nascimentos))*10) / 10
	}
	escreverJSON(w, http.StatusOK, quantidadeJSON{Amount: media})
}

func (h *Handler) MetricaGeneros(w http.ResponseWriter, r *http.Request) {
	grupos, err := h.Repository.AtletasPorGenero(h.DB, orgDe(r))
	if err != nil {
		falhaBanco(w, r, err, "Métrica")
		return
	}
	out := make([]generoJSON, 0, len(grupos))
	for _, g := range grupos {
		if g.Gender == nil {
			continue
		}
		out = append(out, generoJSON{Gender: strings.ToLower(*g.Gender), Amount: g.Amount})
	}
	escreverJSON(w, http.StatusOK, out)
}

// MetricaUltimaSemana conta cadastros por dia nos últimos 7 dias, hoje incluso.
func (h *Handler) MetricaUltimaSemana(w http.ResponseWriter, r *http.Request) {
	agora := h.agora().UTC()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.UTC)
	inicio := hoje.AddDate(0, 0, -6)

	cadastros, err := h.Repository.CadastrosDesde(h.DB, orgDe(r), inicio)
	if err != nil {
		falhaBanco(w, r, err, "Métrica")
		return
	}
	porDia := map[string]int{}
	for _, c := range cadastros {
		porDia[c.UTC().Format("2006-01-02")]++
	}
	out := make([]diaJSON, 7)
	for i := range out {
		d := inicio.AddDate(0, 0, i).Format("2006-01-02")
		out[i] = diaJSON{Date: d, Count: porDia[d]}
	}
	escreverJSON(w, http.StatusOK, out)
}
