package voluntario

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/web"
)

func formNovoView(form *web.Formulario) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<details class="dialog"`, web.Marcado(form.Aberto(AcaoCriar), "open"), `><summary>Adicionar</summary>`,
			`<form method="post" action="/volunteers"><h2>Cadastro de voluntário</h2>`)
		h.Render(ctx, web.CampoCSRF())
		v := func(campo, padrao string) string { return form.Valor(AcaoCriar, campo, padrao) }
		e := func(campo string) string { return form.Erro(AcaoCriar, campo) }
		h.Render(ctx, web.CampoTexto("text", "name", "Nome", v("name", ""), e("name")))
		h.Render(ctx, web.CampoTexto("email", "email", "E-mail", v("email", ""), e("email")))
		h.Render(ctx, web.CampoTexto("tel", "phone", "Telefone", v("phone", ""), e("phone")))
		h.Render(ctx, web.CampoTexto("password", "password", "Senha", "", e("password")))
		h.Render(ctx, web.CampoSelect("area", "Área", web.OpcoesArea, v("area", ""), e("area")))
		h.Raw(`<button type="submit">Cadastrar</button></form></details>`)
	})
}

func formEdicaoView(vol Voluntario, form *web.Formulario) templ.Component {
	acao := AcaoEditar(vol.ID)
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<details class="dialog"`, web.Marcado(form.Aberto(acao), "open"), `><summary>Editar</summary>`,
			`<form method="post" action="/volunteers/`, web.Esc(vol.ID), `"><h2>Edição de voluntário</h2>`)
		h.Render(ctx, web.CampoCSRF())
		h.Render(ctx, web.CampoTexto("text", "name", "Nome", form.Valor(acao, "name", vol.Name), form.Erro(acao, "name")))
		h.Render(ctx, web.CampoSelect("area", "Área", web.OpcoesArea,
			form.Valor(acao, "area", strings.ToUpper(vol.Area)), form.Erro(acao, "area")))
		h.Raw(`<button type="submit">Confirmar alteração</button></form></details>`)
	})
}

// ListaView mostra os voluntários ativos com os formulários de cadastro e edição.
// A exclusão fica bloqueada quando só resta um voluntário.
func ListaView(l Lista, form *web.Formulario) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<section class="volunteers"><div class="section-header"><h3>Voluntários ativos</h3>`)
		h.Render(ctx, formNovoView(form))
		h.Raw(`</div>`)

		ativos := l.Ativos()
		if len(ativos) == 0 {
			h.Raw(`<p class="empty">Nenhum voluntário cadastrado.</p>`)
		}
		unico := len(l.Volunteers) == 1
		for _, v := range ativos {
			h.Raw(`<div class="volunteer" data-volunteer-id="`, web.Esc(v.ID), `"><dl>`)
			for _, campo := range [][2]string{
				{"Nome", v.Name},
				{"E-mail", v.Email},
				{"Início de acesso", web.Data(v.AccessDate)},
				{"Área", web.Area(v.Area)},
			} {
				h.Raw(`<dt>`)
				h.Texto(campo[0])
				h.Raw(`</dt><dd>`)
				h.Texto(campo[1])
				h.Raw(`</dd>`)
			}
			h.Raw(`</dl>`)
			h.Render(ctx, formEdicaoView(v, form))
			h.Raw(`<form method="post" action="/volunteers/`, web.Esc(v.ID), `/delete">`)
			h.Render(ctx, web.CampoCSRF())
			h.Raw(`<button type="submit"`, web.Marcado(unico, "disabled"), `>Deletar</button></form></div>`)
		}
		h.Raw(`</section>`)
	})
}
