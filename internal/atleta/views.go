package atleta

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/web"
)

type telaLista struct {
	Filtro   Filtro
	Pagina   Pagina
	Pendente func(id string) bool
	Form     *web.Formulario
}

var opcoesStatus = []web.Opcao{
	{Valor: StatusTodos, Rotulo: "Todos status"},
	{Valor: StatusAtivo, Rotulo: "Ativo"},
	{Valor: StatusInativo, Rotulo: "Inativo"},
}

func filtrosView(f Filtro) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<form class="filters" method="get" action="/athletes">`,
			`<input type="hidden" name="page" value="1">`,
			`<label for="athlete-name">Nome do atleta</label>`,
			`<input id="athlete-name" name="athleteName" placeholder="Nome do atleta" value="`, web.Esc(f.Nome), `">`,
			`<select name="status">`)
		for _, o := range opcoesStatus {
			h.Raw(`<option value="`, o.Valor, `"`, web.Marcado(o.Valor == f.Status, "selected"), `>`)
			h.Texto(o.Rotulo)
			h.Raw(`</option>`)
		}
		h.Raw(`</select><button type="submit">Filtrar resultados</button>`,
			`<a class="button" href="/athletes?page=1">Remover filtros</a></form>`)
	})
}

func formNovoView(form *web.Formulario) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<details class="dialog"`, web.Marcado(form.Aberto(acaoCriar), "open"), `><summary>Cadastrar</summary>`,
			`<form method="post" action="/athletes"><h2>Cadastro do atleta</h2>`)
		h.Render(ctx, web.CampoCSRF())
		v := func(campo, padrao string) string { return form.Valor(acaoCriar, campo, padrao) }
		e := func(campo string) string { return form.Erro(acaoCriar, campo) }
		h.Render(ctx, web.CampoTexto("text", "name", "Nome", v("name", ""), e("name")))
		h.Render(ctx, web.CampoTexto("date", "birthDate", "Data de nascimento", v("birthDate", ""), e("birthDate")))
		h.Render(ctx, web.CampoSelect("handedness", "Lateralidade", web.OpcoesLateralidade, v("handedness", "none"), e("handedness")))
		h.Render(ctx, web.CampoSelect("gender", "Gênero", web.OpcoesGenero, v("gender", "none"), e("gender")))
		h.Render(ctx, web.CampoSelect("bloodType", "Tipo sanguíneo", web.OpcoesTipoSanguineo, v("bloodType", "none"), e("bloodType")))
		h.Render(ctx, web.CampoTexto("text", "guardianName", "Nome do responsável", v("guardianName", ""), e("guardianName")))
		h.Raw(`<button type="submit">Cadastrar</button></form></details>`)
	})
}

func linhaView(a Item, voltar string, pendente bool) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<tr data-athlete-id="`, web.Esc(a.ID), `"><td><a href="/athletes/`, web.Esc(a.ID), `" title="Ver perfil">`)
		h.Texto(a.Name)
		h.Raw(`</a></td><td>`, strconv.Itoa(a.Age), `</td><td>`)
		h.Texto(web.Lateralidade(a.Handedness))
		h.Raw(`</td><td>`)
		h.Texto(web.Genero(a.Gender))
		h.Raw(`</td><td>`)
		h.Texto(web.TipoSanguineo(a.BloodType))
		h.Raw(`</td><td class="status status-`, web.Esc(a.Status), `">`)
		h.Texto(web.StatusAtleta(a.Status))
		h.Raw(`</td><td><form method="post" action="/athletes/`, web.Esc(a.ID), `/status">`)
		h.Render(ctx, web.CampoCSRF())
		h.Raw(`<input type="hidden" name="name" value="`, web.Esc(a.Name), `">`,
			`<input type="hidden" name="redirect" value="`, web.Esc(voltar), `">`)
		titulo := "Ative o atleta"
		if a.Status == StatusAtivo {
			titulo = "Inative o atleta"
		}
		h.Raw(`<button type="submit" class="toggle-status" title="`, titulo, `"`, web.Marcado(pendente, "disabled"), `>`, titulo, `</button>`)
		h.Raw(`</form></td></tr>`)
	})
}

func listaView(t telaLista) templ.Component {
	corpo := web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<div class="page-header"><h1>Atletas</h1>`,
			`<p>Visualize as informações dos seus atletas cadastrados na plataforma.</p></div>`)
		h.Render(ctx, filtrosView(t.Filtro))
		h.Render(ctx, formNovoView(t.Form))

		h.Raw(`<table><thead><tr><th>Nome</th><th>Idade</th><th>Lateralidade</th><th>Gênero</th>`,
			`<th>Tipo sanguíneo</th><th>Status</th><th></th></tr></thead><tbody>`)
		if len(t.Pagina.Athletes) == 0 {
			h.Raw(`<tr><td colspan="7" class="empty">Nenhum atleta encontrado</td></tr>`)
		}
		voltar := t.Filtro.URL(t.Filtro.PageIndex)
		for _, a := range t.Pagina.Athletes {
			h.Render(ctx, linhaView(a, voltar, t.Pendente != nil && t.Pendente(a.ID)))
		}
		h.Raw(`</tbody></table>`)

		m := t.Pagina.Meta
		h.Render(ctx, web.Paginacao(m.PageIndex, m.PerPage, m.TotalCount, t.Filtro.URL))
	})
	return web.Layout(web.Pagina{Titulo: "Atletas"}, corpo)
}

type telaPerfil struct {
	Atleta Perfil
	Form   *web.Formulario
}

func dado(h *web.HTML, rotulo, valor string) {
	h.Raw(`<div class="info"><dt>`)
	h.Texto(rotulo)
	h.Raw(`</dt><dd>`)
	h.Texto(valor)
	h.Raw(`</dd></div>`)
}

func formEdicaoView(a Perfil, form *web.Formulario) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<details class="dialog"`, web.Marcado(form.Aberto(acaoEditar), "open"), `><summary>Editar</summary>`,
			`<form method="post" action="/athletes/`, web.Esc(a.ID), `"><h2>Edição de atleta</h2>`)
		h.Render(ctx, web.CampoCSRF())
		v := func(campo, padrao string) string { return form.Valor(acaoEditar, campo, padrao) }
		e := func(campo string) string { return form.Erro(acaoEditar, campo) }
		h.Render(ctx, web.CampoTexto("text", "name", "Nome", v("name", a.Name), e("name")))
		h.Render(ctx, web.CampoTexto("date", "birthDate", "Data de nascimento", v("birthDate", web.DataISO(a.BirthDate)), e("birthDate")))
		h.Render(ctx, web.CampoSelect("handedness", "Lateralidade", web.OpcoesLateralidade, v("handedness", opcaoOuNone(a.Handedness)), e("handedness")))
		h.Render(ctx, web.CampoSelect("gender", "Gênero", web.OpcoesGenero, v("gender", opcaoOuNone(a.Gender)), e("gender")))
		h.Render(ctx, web.CampoSelect("bloodType", "Tipo sanguíneo", web.OpcoesTipoSanguineo, v("bloodType", opcaoOuNone(a.BloodType)), e("bloodType")))
		h.Raw(`<button type="submit">Salvar</button></form></details>`)
	})
}

func formResponsavelView(a Perfil, form *web.Formulario) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<section class="guardian"><h2>Responsável</h2>`)
		g := a.Guardian
		if g == nil {
			h.Raw(`<p class="empty">Nenhum responsável cadastrado.</p></section>`)
			return
		}
		h.Raw(`<form method="post" action="/athletes/`, web.Esc(a.ID), `/guardian">`)
		h.Render(ctx, web.CampoCSRF())
		h.Raw(`<input type="hidden" name="guardianId" value="`, web.Esc(g.ID), `">`)
		v := func(campo, padrao string) string { return form.Valor(acaoResponsavel, campo, padrao) }
		e := func(campo string) string { return form.Erro(acaoResponsavel, campo) }
		h.Render(ctx, web.CampoTexto("text", "name", "Nome", v("name", g.Name), e("name")))
		h.Render(ctx, web.CampoTexto("email", "email", "E-mail", v("email", g.Email), e("email")))
		h.Render(ctx, web.CampoTexto("text", "rg", "RG", v("rg", g.RG), e("rg")))
		h.Render(ctx, web.CampoTexto("text", "cpf", "CPF", v("cpf", g.CPF), e("cpf")))
		h.Render(ctx, web.CampoTexto("text", "relationship_degree", "Grau de parentesco", v("relationship_degree", g.RelationshipDegree), e("relationship_degree")))
		h.Render(ctx, web.CampoSelect("gender", "Gênero", web.OpcoesGenero, v("gender", opcaoOuNone(g.Gender)), e("gender")))
		h.Raw(`<button type="submit">Salvar</button></form></section>`)
	})
}

func perfilView(t telaPerfil) templ.Component {
	a := t.Atleta
	corpo := web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<section class="athlete"><span class="avatar">`)
		h.Texto(a.Initials)
		h.Raw(`</span><h1>`)
		h.Texto(a.Name)
		h.Raw(`</h1><dl>`)
		dado(h, "Status", web.StatusAtleta(a.Status))
		dado(h, "Data de nascimento", web.Data(a.BirthDate))
		dado(h, "Lateralidade", web.Lateralidade(a.Handedness))
		dado(h, "Gênero", web.Genero(a.Gender))
		dado(h, "Tipo sanguíneo", web.TipoSanguineo(a.BloodType))
		dado(h, "Cadastrado em", web.Data(a.CreatedAt))
		h.Raw(`</dl>`)
		h.Render(ctx, formEdicaoView(a, t.Form))
		h.Raw(`</section><section class="anamnesis"><h2>Anamnese do atleta</h2>`)
		if a.Anamnesis != nil {
			h.Raw(`<p>Atualizada em `)
			h.Texto(web.Data(a.Anamnesis.UpdatedAt))
			h.Raw(`</p><a href="/anamnesis/`, web.Esc(a.Anamnesis.ID), `">Ver anamnese</a>`)
		} else {
			h.Raw(`<p class="empty">Nenhuma anamnese cadastrada.</p>`)
		}
		h.Raw(`</section>`)
		h.Render(ctx, formResponsavelView(a, t.Form))
	})
	return web.Layout(web.Pagina{Titulo: a.Name, Voltar: true}, corpo)
}
