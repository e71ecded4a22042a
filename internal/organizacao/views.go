package organizacao

import (
	"context"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/voluntario"
	"github.com/t21arenapark/painel/internal/web"
)

func somenteLeitura(h *web.HTML, rotulo, valor string) {
	h.Raw(`<label class="field"><span>`)
	h.Texto(rotulo)
	h.Raw(`</span><input type="text" value="`, web.Esc(valor), `" disabled></label>`)
}

func enderecoView(o Organizacao, form *web.Formulario) templ.Component {
	end := Endereco{}
	if o.Address != nil {
		end = *o.Address
	}
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<form class="address" method="post" action="/mine/address"><h3>Endereço</h3>`)
		h.Render(ctx, web.CampoCSRF())
		campo := func(tipo, nome, rotulo, atual string) {
			h.Render(ctx, web.CampoTexto(tipo, nome, rotulo,
				form.Valor(acaoEndereco, nome, atual), form.Erro(acaoEndereco, nome)))
		}
		campo("text", "street", "Rua", end.Street)
		campo("number", "number", "Número", end.Number)
		campo("text", "complement", "Complemento", end.Complement)
		campo("text", "neighborhood", "Bairro", end.Neighborhood)
		campo("text", "city", "Cidade", end.City)
		campo("text", "uf", "UF", end.UF)
		campo("text", "zipcode", "CEP", end.Zipcode)
		campo("text", "country", "País", end.Country)
		h.Raw(`<button type="submit">Salvar</button></form>`)
	})
}

func organizacaoView(o Organizacao, lista voluntario.Lista, form *web.Formulario) templ.Component {
	corpo := web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<div class="page-header"><h1>Minha organização</h1></div>`,
			`<section class="organization"><h2>Dados da organização</h2>`)
		somenteLeitura(h, "Nome da organização", o.Name)
		somenteLeitura(h, "Domínio", o.Domain)
		somenteLeitura(h, "Senha padrão", o.DefaultPassword)
		somenteLeitura(h, "Responsável", o.Owner.Name)
		h.Render(ctx, enderecoView(o, form))
		h.Raw(`</section>`)
		h.Render(ctx, voluntario.ListaView(lista, form))
	})
	return web.Layout(web.Pagina{Titulo: "Minha organização"}, corpo)
}
