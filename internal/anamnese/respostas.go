package anamnese

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/t21arenapark/painel/internal/web"
)

// Preenchimento é o que o formulário enviou para uma pergunta.
type Preenchimento struct {
	Valor      string
	Observacao string
}

// Alteracao é uma resposta a persistir.
type Alteracao struct {
	PerguntaID int
	Valor      string
	Observacao string
}

func CampoValor(perguntaID int) string      { return "q." + strconv.Itoa(perguntaID) }
func CampoObservacao(perguntaID int) string { return "obs." + strconv.Itoa(perguntaID) }

// tagsPorTipo traz a regra de formato dos tipos que não dependem das opções.
var tagsPorTipo = map[TipoPergunta]struct{ tag, msg string }{
	Avaliacao: {"oneof=1 2 3 4 5", "A avaliação deve ser de 1 a 5"},
	Numero:    {"numeric", "Informe um número"},
	Data:      {"datetime=2006-01-02", "Data inválida"},
	Hora:      {"datetime=15:04", "Horário inválido"},
}

// Ler extrai e valida as respostas de uma seção. Perguntas de tipo
// desconhecido ficam de fora. Campos vazios limpam a resposta.
func Ler(secao Secao, form url.Values) (map[int]Preenchimento, web.Erros) {
	valores := make(map[int]Preenchimento, len(secao.Questions))
	erros := web.Erros{}
	for _, p := range secao.Questions {
		if _, ok := controles[p.Tipo]; !ok {
			continue
		}
		campo := CampoValor(p.ID)
		enviados := limpar(form[campo])
		if msg := validarPergunta(p, enviados); msg != "" {
			erros[campo] = msg
		}
		valor := JuntarOpcoes(enviados)
		if p.Tipo != MultiplaSelecao && len(enviados) > 0 {
			valor = enviados[0]
		}
		valores[p.ID] = Preenchimento{
			Valor:      valor,
			Observacao: strings.TrimSpace(form.Get(CampoObservacao(p.ID))),
		}
	}
	if len(erros) > 0 {
		return nil, erros
	}
	return valores, nil
}

func limpar(vs []string) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func validarPergunta(p Pergunta, enviados []string) string {
	if len(enviados) == 0 {
		return ""
	}
	if p.Tipo != MultiplaSelecao && len(enviados) > 1 {
		return "Escolha apenas um valor"
	}
	// o que já estava gravado é aceito como veio, mesmo fora das opções
	atuais := gravadas(p)
	if p.Tipo != MultiplaSelecao && slices.Contains(atuais, enviados[0]) {
		return ""
	}
	switch p.Tipo {
	case MultiplaEscolha, Lista, MultiplaSelecao:
		for _, v := range enviados {
			if !slices.Contains(p.Options, v) && !slices.Contains(atuais, v) {
				return fmt.Sprintf("Opção inválida: %s", v)
			}
		}
	case VerdadeiroFalso:
		if !web.ValidarValor(enviados[0], "oneof=true false") {
			return "Responda sim ou não"
		}
	default:
		if r, ok := tagsPorTipo[p.Tipo]; ok && !web.ValidarValor(enviados[0], r.tag) {
			return r.msg
		}
	}
	return ""
}

// Alteracoes lista, na ordem das perguntas, as respostas cujo valor ou
// observação difere da última resposta buscada. Seleção múltipla é
// comparada sem levar em conta a ordem das opções.
func Alteracoes(secao Secao, valores map[int]Preenchimento) []Alteracao {
	var out []Alteracao
	for _, p := range secao.Questions {
		novo, ok := valores[p.ID]
		if !ok {
			continue
		}
		valor, obs := p.Atual()
		if mesmoValor(p, novo.Valor, valor) && novo.Observacao == obs {
			continue
		}
		out = append(out, Alteracao{PerguntaID: p.ID, Valor: novo.Valor, Observacao: novo.Observacao})
	}
	return out
}

func mesmoValor(p Pergunta, a, b string) bool {
	if p.Tipo != MultiplaSelecao {
		return a == b
	}
	x, y := marcadas(a), marcadas(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

// marcadas separa uma seleção múltipla sem os segmentos vazios.
func marcadas(valor string) []string {
	return slices.DeleteFunc(SepararOpcoes(valor), func(v string) bool { return v == "" })
}

// Aplicar envia uma requisição por alteração, em sequência, e para no
// primeiro erro. Devolve quantas foram gravadas; as anteriores ao erro
// continuam gravadas.
func Aplicar(ctx context.Context, repo Repository, anamneseID string, secaoID int, alteracoes []Alteracao) (int, error) {
	for i, a := range alteracoes {
		corpo := CorpoResposta{Value: a.Valor, Observation: a.Observacao}
		if err := repo.Responder(ctx, anamneseID, secaoID, a.PerguntaID, corpo); err != nil {
			return i, fmt.Errorf("pergunta %d: %w", a.PerguntaID, err)
		}
	}
	return len(alteracoes), nil
}
