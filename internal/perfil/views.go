package perfil

import (
	"context"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/web"
)

func acessoView(p Perfil, form *web.Formulario) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<section class="access"><h2>Dados de acesso</h2><div class="info"><span>E-mail</span><strong id="email">`)
		h.Texto(p.Email)
		h.Raw(`</strong></div>`)

		h.Raw(`<details class="dialog"`, web.Marcado(form.Aberto(acaoEmail), "open"), `><summary>Alterar</summary>`,
			`<form method="post" action="/me/email"><h3>Alteração de e-mail</h3>`)
		h.Render(ctx, web.CampoCSRF())
		h.Render(ctx, web.CampoTexto("email", "email", "Novo e-mail",
			form.Valor(acaoEmail, "email", ""), form.Erro(acaoEmail, "email")))
		h.Render(ctx, web.CampoTexto("password", "currentPassword", "Senha atual", "", form.Erro(acaoEmail, "currentPassword")))
		h.Raw(`<button type="submit">Confirmar alteração</button></form></details>`)

		h.Raw(`<div class="info"><span>Senha</span><strong>•••••••••</strong></div>`,
			`<details class="dialog"`, web.Marcado(form.Aberto(acaoSenha), "open"), `><summary>Alterar</summary>`,
			`<form method="post" action="/me/password"><h3>Alteração de senha</h3>`)
		h.Render(ctx, web.CampoCSRF())
		h.Render(ctx, web.CampoTexto("password", "currentPassword", "Senha atual", "", form.Erro(acaoSenha, "currentPassword")))
		h.Render(ctx, web.CampoTexto("password", "newPassword", "Nova senha", "", form.Erro(acaoSenha, "newPassword")))
		h.Render(ctx, web.CampoTexto("password", "confirmPassword", "Confirme a nova senha", "", form.Erro(acaoSenha, "confirmPassword")))
		h.Raw(`<button type="submit">Confirmar alteração</button></form></details></section>`)
	})
}

func dadosView(p Perfil, form *web.Formulario) templ.Component {
	end := Endereco{}
	if p.Address != nil {
		end = *p.Address
	}
	genero := p.Gender
	if genero == "" {
		genero = "none"
	}
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<section class="personal"><h2>Dados pessoais</h2><form method="post" action="/me">`)
		h.Render(ctx, web.CampoCSRF())
		campo := func(tipo, nome, rotulo, atual string) {
			h.Render(ctx, web.CampoTexto(tipo, nome, rotulo,
				form.Valor(acaoDados, nome, atual), form.Erro(acaoDados, nome)))
		}
		campo("text", "name", "Nome completo", p.Name)
		campo("text", "cpf", "CPF", p.CPF)
		campo("date", "birthDate", "Data de nascimento", web.DataISO(p.BirthDate))
		h.Render(ctx, web.CampoSelect("gender", "Gênero", web.OpcoesGenero,
			form.Valor(acaoDados, "gender", genero), form.Erro(acaoDados, "gender")))
		campo("tel", "phone", "Telefone", p.Phone)
		h.Raw(`<h3>Endereço</h3>`)
		campo("text", "zipcode", "CEP", end.Zipcode)
		campo("text", "street", "Rua", end.Street)
		campo("number", "number", "Número", end.Number)
		campo("text", "complement", "Complemento", end.Complement)
		campo("text", "neighborhood", "Bairro", end.Neighborhood)
		campo("text", "city", "Cidade", end.City)
		campo("text", "uf", "UF", end.UF)
		campo("text", "country", "País", end.Country)
		h.Raw(`<button type="submit">Salvar</button></form></section>`)
	})
}

func perfilView(p Perfil, form *web.Formulario) templ.Component {
	corpo := web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<div class="page-header"><span class="avatar">`)
		h.Texto(p.Initials)
		h.Raw(`</span><h1>`)
		h.Texto(p.Name)
		h.Raw(`</h1><span class="role">`)
		h.Texto(web.Papel(p.Role))
		h.Raw(`</span><span class="area">`)
		h.Texto(web.Area(p.Area))
		h.Raw(`</span></div>`)
		h.Render(ctx, acessoView(p, form))
		h.Render(ctx, dadosView(p, form))
	})
	return web.Layout(web.Pagina{Titulo: "Perfil"}, corpo)
}
