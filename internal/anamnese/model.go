package anamnese

import "strings"

// TipoPergunta é o tipo de resposta definido pelo servidor para cada pergunta.
type TipoPergunta string

const (
	Dissertativa    TipoPergunta = "ESSAY"
	MultiplaEscolha TipoPergunta = "MULTIPLE_CHOICE"
	VerdadeiroFalso TipoPergunta = "TRUE_FALSE"
	RespostaCurta   TipoPergunta = "SHORT_ANSWER"
	Avaliacao       TipoPergunta = "RATING"
	Data            TipoPergunta = "DATE"
	Hora            TipoPergunta = "TIME"
	Numero          TipoPergunta = "NUMBER"
	MultiplaSelecao TipoPergunta = "MULTI_SELECT"
	Lista           TipoPergunta = "DROPDOWN"
)

// Tipos lista todos os tipos conhecidos.
var Tipos = []TipoPergunta{
	Dissertativa, MultiplaEscolha, VerdadeiroFalso, RespostaCurta, Avaliacao,
	Data, Hora, Numero, MultiplaSelecao, Lista,
}

type Resposta struct {
	ID          string  `json:"id"`
	Value       string  `json:"value"`
	Observation *string `json:"observation,omitempty"`
	QuestionID  int     `json:"question_id"`
}

type Pergunta struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Observation *string      `json:"observation"`
	Tipo        TipoPergunta `json:"question_type"`
	Options     []string     `json:"options"`
	Answers     *Resposta    `json:"answers"`
}

// Atual devolve o valor e a observação da última resposta buscada.
// Pergunta sem resposta equivale a valor vazio.
func (p Pergunta) Atual() (valor, observacao string) {
	if p.Answers == nil {
		return "", ""
	}
	if p.Answers.Observation != nil {
		observacao = *p.Answers.Observation
	}
	return p.Answers.Value, observacao
}

type Secao struct {
	ID          int        `json:"id"`
	Icon        string     `json:"icon"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Pergunta `json:"questions"`
}

type Atleta struct {
	Name string `json:"name"`
}

type Anamnese struct {
	ID        string  `json:"id"`
	AthleteID string  `json:"athleteId"`
	CreatedAt string  `json:"createdAt"`
	Athlete   Atleta  `json:"athlete"`
	Sections  []Secao `json:"sections"`
}

func (a Anamnese) Secao(id int) (Secao, bool) {
	for _, s := range a.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Secao{}, false
}

// CorpoResposta é o corpo do PATCH de uma resposta.
type CorpoResposta struct {
	Value       string `json:"value"`
	Observation string `json:"observation"`
}

const separadorOpcoes = ";"

// JuntarOpcoes codifica as opções marcadas de uma seleção múltipla.
// Uma opção que contenha ";" não volta igual em SepararOpcoes.
func JuntarOpcoes(opcoes []string) string {
	return strings.Join(opcoes, separadorOpcoes)
}

func SepararOpcoes(valor string) []string {
	if valor == "" {
		return []string{}
	}
	return strings.Split(valor, separadorOpcoes)
}
