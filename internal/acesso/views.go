package acesso

import (
	"context"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/web"
)

func entrarView(form *web.Formulario) templ.Component {
	corpo := web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<div class="auth-header"><h1>Acesse sua conta</h1>`,
			`<p>Eleve seu jogo, acesse a plataforma e conheça o futuro dos seus atletas.</p></div>`,
			`<form method="post" action="/sign-in">`)
		h.Render(ctx, web.CampoCSRF())
		h.Render(ctx, web.CampoTexto("email", "email", "E-mail",
			form.Valor(acaoEntrar, "email", ""), form.Erro(acaoEntrar, "email")))
		h.Render(ctx, web.CampoTexto("password", "password", "Senha", "", form.Erro(acaoEntrar, "password")))
		h.Raw(`<a href="/forgot">Esqueci minha senha</a>`,
			`<button type="submit">Entrar</button></form><hr>`,
			`<a class="contact" href="https://forms.gle/ZLK6CfJvRmofcMbR8" target="_blank" rel="noreferrer">`,
			`Não tem uma conta? <span>Entre em contato com a gente</span></a>`)
	})
	return web.LayoutAuth(web.Pagina{Titulo: "Login"}, corpo)
}

func recuperarView(form *web.Formulario) templ.Component {
	corpo := web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<div class="auth-header"><h1>Esqueci minha senha</h1>`,
			`<p>Não se preocupe, envie seu e-mail e nós cuidaremos de reconectar você ao jogo.</p></div>`,
			`<form method="post" action="/forgot">`)
		h.Render(ctx, web.CampoCSRF())
		h.Render(ctx, web.CampoTexto("email", "email", "E-mail",
			form.Valor(acaoRecuperar, "email", ""), form.Erro(acaoRecuperar, "email")))
		h.Render(ctx, web.CampoTexto("password", "newPassword", "Senha", "", form.Erro(acaoRecuperar, "newPassword")))
		h.Raw(`<button type="submit">Recuperar minha senha</button>`,
			`<a href="/sign-in">&larr; Voltar para o login</a></form>`)
	})
	return web.LayoutAuth(web.Pagina{Titulo: "Recuperar senha"}, corpo)
}
