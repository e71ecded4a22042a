package metricas

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/web"
)

func cartao(h *web.HTML, titulo string, q Quantidade) {
	h.Raw(`<div class="metric-card"><h3>`)
	h.Texto(titulo)
	h.Raw(`</h3><span class="amount">`, Numero(q.Amount), `</span></div>`)
}

func semanaView(dias []PorDia) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		maior := 0
		for _, d := range dias {
			maior = max(maior, d.Count)
		}
		h.Raw(`<figure class="chart week"><figcaption>Atletas criados na última semana</figcaption><ol>`)
		for _, d := range dias {
			altura := 0
			if maior > 0 {
				altura = d.Count * 100 / maior
			}
			h.Raw(`<li data-date="`, web.Esc(d.Date), `"><span class="bar" style="height:`, strconv.Itoa(altura), `%">`,
				Numero(float64(d.Count)), `</span><span class="label">`, web.Esc(Dia(d.Date)), `</span></li>`)
		}
		h.Raw(`</ol></figure>`)
	})
}

func generosView(generos []PorGenero) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		total := 0
		for _, g := range generos {
			total += g.Amount
		}
		h.Raw(`<figure class="chart gender"><figcaption>Quantidade de atletas por sexo</figcaption><ul>`)
		for _, g := range generos {
			h.Raw(`<li><span class="label">`)
			h.Texto(web.Genero(g.Gender))
			h.Raw(`</span> <span class="amount">`, Numero(float64(g.Amount)), `</span> <span class="percent">`,
				Percentual(g.Amount, total), `</span></li>`)
		}
		h.Raw(`</ul></figure>`)
	})
}

func dashboardView(p Painel) templ.Component {
	corpo := web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<div class="page-header"><h1>Dashboard</h1>`,
			`<p>Visualize as informações gerais dos seus atletas</p></div><div class="metric-cards">`)
		cartao(h, "Total de atletas", p.Atletas)
		cartao(h, "Total de anamneses", p.Anamneses)
		cartao(h, "Total de responsáveis", p.Responsaveis)
		cartao(h, "Idade média dos atletas", p.IdadeMedia)
		h.Raw(`</div><div class="charts">`)
		h.Render(ctx, semanaView(p.UltimaSemana))
		h.Render(ctx, generosView(p.Generos))
		h.Raw(`</div>`)
	})
	return web.Layout(web.Pagina{Titulo: "Dashboard"}, corpo)
}
