package web

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

const NomeApp = "T21 Arena Park"

// Pagina descreve o cabeçalho comum de uma tela.
type Pagina struct {
	Titulo string
	// Voltar mostra o botão de retorno no lugar do menu.
	Voltar bool
}

func cabecalhoHTML(ctx context.Context, h *HTML, titulo string) {
	h.Raw(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		`<title>`)
	h.Texto(titulo)
	h.Raw(` | `, NomeApp, `</title>`)
	if tok := TokenCSRF(ctx); tok != "" {
		h.Raw(`<meta name="csrf-token" content="`, Esc(tok), `">`)
	}
	h.Raw(`<link rel="stylesheet" href="/assets/app.css"></head>`)
}

// CampoCSRF renderiza o input escondido do token, quando a proteção está ativa.
func CampoCSRF() templ.Component {
	return Componente(func(ctx context.Context, h *HTML) {
		if tok := TokenCSRF(ctx); tok != "" {
			h.Raw(`<input type="hidden" name="`, CampoCSRFNome, `" value="`, Esc(tok), `">`)
		}
	})
}

func ToastAtualHTML() templ.Component {
	return Componente(func(ctx context.Context, h *HTML) {
		t, ok := ToastAtual(ctx)
		if !ok {
			return
		}
		h.Raw(`<div class="toast toast-`, string(t.Tipo), `" role="status">`)
		h.Texto(t.Mensagem)
		h.Raw(`</div>`)
	})
}

func linkNav(ctx context.Context, h *HTML, href, rotulo string) {
	atual := CaminhoAtual(ctx)
	ativo := atual == href || (href != "/" && strings.HasPrefix(atual, href))
	h.Raw(`<a href="`, href, `"`)
	if ativo {
		h.Raw(` data-current="true"`)
	}
	h.Raw(`>`)
	h.Texto(rotulo)
	h.Raw(`</a>`)
}

func menuConta(ctx context.Context, h *HTML) {
	h.Raw(`<details class="account-menu"><summary>`)
	c, ok := ContaDe(ctx)
	if ok {
		h.Raw(`<span class="avatar">`)
		h.Texto(c.Iniciais)
		h.Raw(`</span></summary><div><strong>`)
		h.Texto(c.Nome)
		h.Raw(`</strong><span>`)
		h.Texto(c.Email)
		h.Raw(`</span>`)
	} else {
		h.Raw(`<span class="avatar">…</span></summary><div>`)
	}
	h.Raw(`<a href="/mine">Minha organização</a><a href="/me">Perfil</a>`,
		`<form method="post" action="/sign-out">`)
	h.Render(ctx, CampoCSRF())
	h.Raw(`<button type="submit">Sair</button></form></div></details>`)
}

// Layout envolve o conteúdo das telas autenticadas.
func Layout(p Pagina, corpo templ.Component) templ.Component {
	return Componente(func(ctx context.Context, h *HTML) {
		cabecalhoHTML(ctx, h, p.Titulo)
		h.Raw(`<body><header>`)
		if p.Voltar {
			h.Raw(`<a href="javascript:history.back()" title="Voltar para a última página">&larr;</a>`)
		}
		h.Raw(`<a class="brand" href="/">`, NomeApp, `</a><nav>`)
		linkNav(ctx, h, "/", "Dashboard")
		linkNav(ctx, h, "/athletes", "Atletas")
		h.Raw(`</nav>`)
		menuConta(ctx, h)
		h.Raw(`</header>`)
		h.Render(ctx, ToastAtualHTML())
		h.Raw(`<main>`)
		h.Render(ctx, corpo)
		h.Raw(`</main></body></html>`)
	})
}

// LayoutAuth envolve as telas públicas de login e recuperação de senha.
func LayoutAuth(p Pagina, corpo templ.Component) templ.Component {
	return Componente(func(ctx context.Context, h *HTML) {
		cabecalhoHTML(ctx, h, p.Titulo)
		h.Raw(`<body class="auth"><aside><a class="brand" href="/sign-in">`, NomeApp, `</a></aside>`)
		h.Render(ctx, ToastAtualHTML())
		h.Raw(`<main>`)
		h.Render(ctx, corpo)
		h.Raw(`</main></body></html>`)
	})
}

func paginaAviso(titulo, chamada, linha1, linha2 string, tentarNovamente bool) templ.Component {
	return Componente(func(ctx context.Context, h *HTML) {
		cabecalhoHTML(ctx, h, chamada)
		h.Raw(`<body class="aviso"><div><h1>`)
		h.Texto(titulo)
		h.Raw(`</h1><h2>`)
		h.Texto(chamada)
		h.Raw(`</h2><span>Comissão técnica avisa:</span><p><span>`)
		h.Texto(linha1)
		h.Raw(`</span><span>`)
		h.Texto(linha2)
		h.Raw(`</span></p><div>`)
		if tentarNovamente {
			h.Raw(`<a href="">Tentar novamente</a>`)
		}
		h.Raw(`<a href="/">Retornar à home</a></div></div></body></html>`)
	})
}

func PaginaNaoEncontrada() templ.Component {
	return paginaAviso("404...", "Esse não é o nosso estádio.",
		"A página que você queria torcer sumiu do estádio.",
		"Vamos voltar para a torcida principal?", false)
}

func PaginaErro() templ.Component {
	return paginaAviso("Eita!", "Parece que o jogo está no intervalo.",
		"Tivemos um erro no servidor interno.",
		"Estamos trabalhando para corrigir isso!", true)
}
