package emulador

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type respostaJSON struct {
	ID          string  `json:"id"`
	Value       string  `json:"value"`
	Observation *string `json:"observation,omitempty"`
	QuestionID  uint    `json:"question_id"`
}

type perguntaJSON struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Observation *string       `json:"observation"`
	Tipo        string        `json:"question_type"`
	Options     []string      `json:"options"`
	Answers     *respostaJSON `json:"answers"`
}

type secaoJSON struct {
	ID          uint           `json:"id"`
	Icon        string         `json:"icon"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []perguntaJSON `json:"questions"`
}

type anamneseJSON struct {
	ID        string            `json:"id"`
	AthleteID string            `json:"athleteId"`
	CreatedAt string            `json:"createdAt"`
	Athlete   map[string]string `json:"athlete"`
	Sections  []secaoJSON       `json:"sections"`
}

type requisicaoResposta struct {
	Value       *string `json:"value"`
	Observation *string `json:"observation"`
}

// BuscarAnamnese devolve o questionário com as respostas do atleta.
func (h *Handler) BuscarAnamnese(w http.ResponseWriter, r *http.Request) {
	an, atleta, err := h.Repository.BuscarAnamnese(h.DB, orgDe(r), mux.Vars(r)["id"])
	if err != nil {
		falhaBanco(w, r, err, "Anamnese")
		return
	}
	secoes, err := h.Repository.Questionario(h.DB)
	if err != nil {
		falhaBanco(w, r, err, "Questionário")
		return
	}
	respostas, err := h.Repository.Respostas(h.DB, an.ID)
	if err != nil {
		falhaBanco(w, r, err, "Resposta")
		return
	}
	porPergunta := make(map[uint]Resposta, len(respostas))
	for _, resp := range respostas {
		porPergunta[resp.PerguntaID] = resp
	}

	out := anamneseJSON{
		ID:        an.ID,
		AthleteID: atleta.ID,
		CreatedAt: formatarData(an.CreatedAt),
		Athlete:   map[string]string{"name": atleta.Name},
		Sections:  make([]secaoJSON, len(secoes)),
	}
	for i, s := range secoes {
		sj := secaoJSON{ID: s.ID, Icon: s.Icon, Title: s.Title, Description: s.Description,
			Questions: make([]perguntaJSON, len(s.Perguntas))}
		for j, p := range s.Perguntas {
			pj := perguntaJSON{ID: p.ID, Title: p.Title, Description: p.Description,
				Observation: p.Observation, Tipo: p.Tipo, Options: p.Opcoes}
			if pj.Options == nil {
				pj.Options = []string{}
			}
			if resp, ok := porPergunta[p.ID]; ok {
				obs := resp.Observation
				pj.Answers = &respostaJSON{ID: resp.ID, Value: resp.Value, Observation: &obs, QuestionID: p.ID}
			}
			sj.Questions[j] = pj
		}
		out.Sections[i] = sj
	}
	escreverJSON(w, http.StatusOK, out)
}

// Responder grava a resposta de uma pergunta, criando-a se ainda não existir.
// Campo ausente no corpo mantém o valor anterior.
func (h *Handler) Responder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	secaoID, _ := strconv.ParseUint(vars["sectionId"], 10, 64)
	perguntaID, _ := strconv.ParseUint(vars["questionId"], 10, 64)

	var req requisicaoResposta
	if !lerCorpo(w, r, &req) {
		return
	}
	an, _, err := h.Repository.BuscarAnamnese(h.DB, orgDe(r), vars["id"])
	if err != nil {
		falhaBanco(w, r, err, "Anamnese")
		return
	}
	if _, err := h.Repository.BuscarPergunta(h.DB, uint(secaoID), uint(perguntaID)); err != nil {
		falhaBanco(w, r, err, "Pergunta")
		return
	}

	resp := Resposta{AnamneseID: an.ID, PerguntaID: uint(perguntaID), UpdatedAt: h.agora()}
	atuais, err := h.Repository.Respostas(h.DB, an.ID)
	if err != nil {
		falhaBanco(w, r, err, "Resposta")
		return
	}
	for _, atual := range atuais {
		if atual.PerguntaID == resp.PerguntaID {
			resp.Value, resp.Observation = atual.Value, atual.Observation
		}
	}
	if req.Value != nil {
		resp.Value = *req.Value
	}
	if req.Observation != nil {
		resp.Observation = *req.Observation
	}
	if err := h.Repository.SalvarResposta(h.DB, &resp); err != nil {
		falhaBanco(w, r, err, "Resposta")
		return
	}
	semConteudo(w)
}

