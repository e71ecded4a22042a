package anamnese

import (
	"context"
	"slices"
	"strconv"

	"github.com/a-h/templ"

	"github.com/t21arenapark/painel/internal/web"
)

// Controle desenha o campo de resposta de uma pergunta com o valor atual.
type Controle func(p Pergunta, valor string) templ.Component

var controles = map[TipoPergunta]Controle{
	Dissertativa:    areaTexto,
	MultiplaEscolha: func(p Pergunta, v string) templ.Component { return radios(p, opcoesDe(p.Options), v) },
	VerdadeiroFalso: func(p Pergunta, v string) templ.Component { return radios(p, simNao, v) },
	RespostaCurta:   entrada("text"),
	Avaliacao:       func(p Pergunta, v string) templ.Component { return radios(p, notas, v) },
	Data:            entrada("date"),
	Hora:            entrada("time"),
	Numero:          entrada("number"),
	MultiplaSelecao: caixas,
	Lista:           lista,
}

// ControleDe devolve o controle do tipo; ok é false para tipos desconhecidos.
func ControleDe(t TipoPergunta) (c Controle, ok bool) {
	c, ok = controles[t]
	return c, ok
}

var (
	simNao = []web.Opcao{{Valor: "true", Rotulo: "Sim"}, {Valor: "false", Rotulo: "Não"}}
	notas  = []web.Opcao{{Valor: "1", Rotulo: "1"}, {Valor: "2", Rotulo: "2"}, {Valor: "3", Rotulo: "3"}, {Valor: "4", Rotulo: "4"}, {Valor: "5", Rotulo: "5"}}
)

func opcoesDe(valores []string) []web.Opcao {
	out := make([]web.Opcao, len(valores))
	for i, o := range valores {
		out[i] = web.Opcao{Valor: o, Rotulo: o}
	}
	return out
}

// comGravadas acrescenta às opções os valores já gravados que elas não
// trazem, para que a resposta volte igual num envio sem edição.
func comGravadas(p Pergunta, opcoes []web.Opcao) []web.Opcao {
	out := opcoes
	for _, v := range gravadas(p) {
		if !slices.ContainsFunc(out, func(o web.Opcao) bool { return o.Valor == v }) {
			out = append(slices.Clip(out), web.Opcao{Valor: v, Rotulo: v})
		}
	}
	return out
}

// gravadas são os valores da última resposta buscada, separados quando a
// pergunta aceita vários.
func gravadas(p Pergunta) []string {
	valor, _ := p.Atual()
	if valor == "" {
		return nil
	}
	if p.Tipo == MultiplaSelecao {
		return marcadas(valor)
	}
	return []string{valor}
}

func areaTexto(p Pergunta, valor string) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		nome := web.Esc(CampoValor(p.ID))
		h.Raw(`<textarea id="`, nome, `" name="`, nome, `" rows="4">`)
		h.Texto(valor)
		h.Raw(`</textarea>`)
	})
}

func entrada(tipo string) Controle {
	return func(p Pergunta, valor string) templ.Component {
		return web.Componente(func(ctx context.Context, h *web.HTML) {
			nome := web.Esc(CampoValor(p.ID))
			h.Raw(`<input type="`, tipo, `" id="`, nome, `" name="`, nome, `" value="`, web.Esc(valor), `"`)
			if tipo == "number" {
				h.Raw(` step="any"`)
			}
			h.Raw(`>`)
		})
	}
}

func radios(p Pergunta, opcoes []web.Opcao, valor string) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		nome := web.Esc(CampoValor(p.ID))
		h.Raw(`<div class="choices" role="radiogroup">`)
		for i, o := range comGravadas(p, opcoes) {
			id := nome + "-" + strconv.Itoa(i)
			h.Raw(`<label for="`, id, `"><input type="radio" id="`, id, `" name="`, nome, `" value="`, web.Esc(o.Valor), `"`,
				web.Marcado(o.Valor == valor, "checked"), `>`)
			h.Texto(o.Rotulo)
			h.Raw(`</label>`)
		}
		h.Raw(`</div>`)
	})
}

func caixas(p Pergunta, valor string) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		nome := web.Esc(CampoValor(p.ID))
		escolhidas := marcadas(valor)
		h.Raw(`<div class="choices multi">`)
		for i, o := range comGravadas(p, opcoesDe(p.Options)) {
			id := nome + "-" + strconv.Itoa(i)
			h.Raw(`<label for="`, id, `"><input type="checkbox" id="`, id, `" name="`, nome, `" value="`, web.Esc(o.Valor), `"`,
				web.Marcado(slices.Contains(escolhidas, o.Valor), "checked"), `>`)
			h.Texto(o.Rotulo)
			h.Raw(`</label>`)
		}
		h.Raw(`</div>`)
	})
}

func lista(p Pergunta, valor string) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		nome := web.Esc(CampoValor(p.ID))
		h.Raw(`<select id="`, nome, `" name="`, nome, `"><option value="">Selecione uma opção</option>`)
		for _, o := range comGravadas(p, opcoesDe(p.Options)) {
			h.Raw(`<option value="`, web.Esc(o.Valor), `"`, web.Marcado(o.Valor == valor, "selected"), `>`)
			h.Texto(o.Rotulo)
			h.Raw(`</option>`)
		}
		h.Raw(`</select>`)
	})
}

// naoSuportado substitui o controle de um tipo desconhecido; nada é enviado.
func naoSuportado(p Pergunta, valor string) templ.Component {
	return web.Componente(func(ctx context.Context, h *web.HTML) {
		h.Raw(`<p class="unsupported">Tipo de pergunta não suportado (`)
		h.Texto(string(p.Tipo))
		h.Raw(`).`)
		if valor != "" {
			h.Raw(` Resposta atual: <strong>`)
			h.Texto(valor)
			h.Raw(`</strong>`)
		}
		h.Raw(`</p>`)
	})
}
