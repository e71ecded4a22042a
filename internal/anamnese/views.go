package anamnese

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/web"
)

func acaoSecao(id int) string {
	return "secao-" + strconv.Itoa(id)
}

func ancoraSecao(id int) string {
	return "section-" + strconv.Itoa(id)
}

func perguntaView(p Pergunta, form *web.Formulario, acao string) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		atual, obs := p.Atual()
		campo := CampoValor(p.ID)
		valor := atual
		if form != nil && form.Acao == acao {
			// checkbox ou radio sem marcação não aparece no envio
			valor = form.Valores[campo]
		}

		h.Raw(`<div class="question" data-question-id="`, strconv.Itoa(p.ID), `" data-question-type="`, web.Esc(string(p.Tipo)), `">`,
			`<label class="question-title" for="`, web.Esc(campo), `">`)
		h.Texto(p.Title)
		h.Raw(`</label>`)
		if p.Description != nil && *p.Description != "" {
			h.Raw(`<p class="question-description">`)
			h.Texto(*p.Description)
			h.Raw(`</p>`)
		}

		controle, ok := ControleDe(p.Tipo)
		if !ok {
			h.Render(ctx, naoSuportado(p, atual))
			h.Raw(`</div>`)
			return
		}
		h.Render(ctx, controle(p, valor))
		if msg := form.Erro(acao, campo); msg != "" {
			h.Raw(`<span class="field-error" role="alert">`)
			h.Texto(msg)
			h.Raw(`</span>`)
		}

		placeholder := "Observação"
		if p.Observation != nil && *p.Observation != "" {
			placeholder = *p.Observation
		}
		nomeObs := web.Esc(CampoObservacao(p.ID))
		h.Raw(`<input type="text" class="observation" name="`, nomeObs, `" placeholder="`, web.Esc(placeholder),
			`" value="`, web.Esc(form.Valor(acao, CampoObservacao(p.ID), obs)), `"></div>`)
	})
}

func secaoView(a Anamnese, s Secao, form *web.Formulario) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		acao := acaoSecao(s.ID)
		h.Raw(`<section class="anamnesis-section" id="`, ancoraSecao(s.ID), `">`,
			`<header><span class="icon icon-`, web.Esc(s.Icon), `"></span><h2>`)
		h.Texto(s.Title)
		h.Raw(`</h2>`)
		if s.Description != "" {
			h.Raw(`<p>`)
			h.Texto(s.Description)
			h.Raw(`</p>`)
		}
		h.Raw(`</header><form method="post" action="/anamnesis/`, web.Esc(a.ID), `/section/`, strconv.Itoa(s.ID), `">`)
		h.Render(ctx, web.CampoCSRF())
		for _, p := range s.Questions {
			h.Render(ctx, perguntaView(p, form, acao))
		}
		h.Raw(`<button type="submit">Salvar</button></form></section>`)
	})
}

func anamneseView(a Anamnese, form *web.Formulario) templ.Component {
	corpo := web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<div class="page-header"><h1>Anamnese do (a) `)
		h.Texto(a.Athlete.Name)
		h.Raw(`</h1><p>Gerencie as informações da anamnese do atleta.</p></div>`)
		if len(a.Sections) == 0 {
			h.Raw(`<p class="empty">Nenhuma seção cadastrada.</p>`)
			return
		}
		h.Raw(`<div class="anamnesis"><nav class="tabs">`)
		for _, s := range a.Sections {
			h.Raw(`<a href="#`, ancoraSecao(s.ID), `"><span class="icon icon-`, web.Esc(s.Icon), `"></span>`)
			h.Texto(s.Title)
			h.Raw(`</a>`)
		}
		h.Raw(`</nav><main>`)
		for _, s := range a.Sections {
			h.Render(ctx, secaoView(a, s, form))
		}
		h.Raw(`</main></div>`)
	})
	return web.Layout(web.Pagina{Titulo: "Anamnese", Voltar: true}, corpo)
}
