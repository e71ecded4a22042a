package emulador

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type itemAtleta struct {
	ID         string `json:"id"`
	Age        int    `json:"age"`
	Status     string `json:"status"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BloodType  string `json:"blood_type"`
	Gender     string `json:"gender"`
	Handedness string `json:"handedness"`
}

type metaPagina struct {
	PageIndex  int   `json:"pageIndex"`
	PerPage    int   `json:"perPage"`
	TotalCount int64 `json:"totalCount"`
}

type responsavelJSON struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	RelationshipDegree string `json:"relationship_degree"`
	CPF                string `json:"cpf"`
	RG                 string `json:"rg"`
	Gender             string `json:"gender"`
}

type referenciaAnamnese struct {
	ID        string `json:"id"`
	AthleteID string `json:"athlete_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type perfilAtleta struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Status     string              `json:"status"`
	BirthDate  string              `json:"birth_date"`
	CreatedAt  string              `json:"created_at"`
	BloodType  string              `json:"blood_type"`
	Gender     string              `json:"gender"`
	Handedness string              `json:"handedness"`
	Initials   string              `json:"initials"`
	Guardian   *responsavelJSON    `json:"guardian"`
	Anamnesis  *referenciaAnamnese `json:"anamnesis"`
}

type requisicaoNovoAtleta struct {
	Name         string `json:"name" validate:"required"`
	BirthDate    string `json:"birthDate" validate:"required"`
	BloodType    string `json:"bloodType"`
	Gender       string `json:"gender"`
	GuardianName string `json:"guardianName"`
	Handedness   string `json:"handedness"`
	Status       bool   `json:"status"`
}

type requisicaoAtleta struct {
	Name       string  `json:"name" validate:"required"`
	BirthDate  string  `json:"birthDate" validate:"required"`
	Gender     *string `json:"gender"`
	Handedness *string `json:"handedness"`
	BloodType  *string `json:"bloodType"`
}

type requisicaoResponsavel struct {
	Name               string  `json:"name"`
	Email              string  `json:"email" validate:"omitempty,email"`
	RelationshipDegree string  `json:"relationship_degree"`
	RG                 string  `json:"rg"`
	CPF                string  `json:"cpf"`
	Gender             *string `json:"gender"`
}

func statusTexto(ativo bool) string {
	if ativo {
		return "active"
	}
	return "inactive"
}

func orgDe(r *http.Request) string {
	return claimsDe(r.Context()).OrganizacaoID
}

// ListarAtletas pagina de 10 em 10 por nome, com filtros de nome e status.
func (h *Handler) ListarAtletas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := FiltroAtletas{Nome: q.Get("athleteName"), Status: q.Get("status")}
	if pi, err := strconv.Atoi(q.Get("pageIndex")); err == nil && pi > 0 {
		f.PageIndex = pi
	}

	atletas, total, err := h.Repository.ListarAtletas(h.DB, orgDe(r), f)
	if err != nil {
		falhaBanco(w, r, err, "Atleta")
		return
	}
	agora := h.agora()
	itens := make([]itemAtleta, len(atletas))
	for i, a := range atletas {
		itens[i] = itemAtleta{
			ID:         a.ID,
			Age:        Idade(a.BirthDate, agora),
			Status:     statusTexto(a.Status),
			Name:       a.Name,
			BirthDate:  formatarData(a.BirthDate),
			BloodType:  minusculo(a.BloodType),
			Gender:     minusculo(a.Gender),
			Handedness: minusculo(a.Handedness),
		}
	}
	escreverJSON(w, http.StatusOK, map[string]any{
		"athletes": itens,
		"meta":     metaPagina{PageIndex: f.PageIndex, PerPage: PorPagina, TotalCount: total},
	})
}

// CriarAtleta cadastra o atleta junto com o responsável e uma anamnese vazia.
func (h *Handler) CriarAtleta(w http.ResponseWriter, r *http.Request) {
	var req requisicaoNovoAtleta
	if !lerCorpo(w, r, &req) {
		return
	}
	nascimento, ok := lerData(req.BirthDate)
	if !ok {
		escreverErro(w, http.StatusBadRequest, CodigoInvalido, "Data de nascimento inválida.")
		return
	}

	a := &Atleta{
		ID:            uuid.NewString(),
		OrganizacaoID: orgDe(r),
		Name:          strings.TrimSpace(req.Name),
		BirthDate:     nascimento,
		BloodType:     enum(&req.BloodType),
		Gender:        enum(&req.Gender),
		Handedness:    enum(&req.Handedness),
		Status:        req.Status,
		Anamnese:      &Anamnese{ID: uuid.NewString()},
	}
	if nome := strings.TrimSpace(req.GuardianName); nome != "" {
		a.Responsavel = &Responsavel{ID: uuid.NewString(), Name: nome}
	}
	if err := h.Repository.CriarAtleta(h.DB, a); err != nil {
		falhaBanco(w, r, err, "Atleta")
		return
	}
	escreverJSON(w, http.StatusCreated, map[string]string{"id": a.ID})
}

func (h *Handler) BuscarAtleta(w http.ResponseWriter, r *http.Request) {
	a, err := h.Repository.BuscarAtleta(h.DB, orgDe(r), mux.Vars(r)["id"])
	if err != nil {
		falhaBanco(w, r, err, "Atleta")
		return
	}
	out := perfilAtleta{
		ID:         a.ID,
		Name:       a.Name,
		Status:     statusTexto(a.Status),
		BirthDate:  formatarData(a.BirthDate),
		CreatedAt:  formatarData(a.CreatedAt),
		BloodType:  valor(a.BloodType),
		Gender:     valor(a.Gender),
		Handedness: valor(a.Handedness),
		Initials:   Iniciais(a.Name),
	}
	if g := a.Responsavel; g != nil {
		out.Guardian = &responsavelJSON{
			ID: g.ID, Name: g.Name, Email: g.Email, RelationshipDegree: g.RelationshipDegree,
			CPF: g.CPF, RG: g.RG, Gender: valor(g.Gender),
		}
	}
	if an := a.Anamnese; an != nil {
		out.Anamnesis = &referenciaAnamnese{
			ID: an.ID, AthleteID: a.ID,
			CreatedAt: formatarData(an.CreatedAt), UpdatedAt: formatarData(an.UpdatedAt),
		}
	}
	escreverJSON(w, http.StatusOK, out)
}

func (h *Handler) AtualizarAtleta(w http.ResponseWriter, r *http.Request) {
	var req requisicaoAtleta
	if !lerCorpo(w, r, &req) {
		return
	}
	nascimento, ok := lerData(req.BirthDate)
	if !ok {
		escreverErro(w, http.StatusBadRequest, CodigoInvalido, "Data de nascimento inválida.")
		return
	}
	a, err := h.Repository.BuscarAtleta(h.DB, orgDe(r), mux.Vars(r)["id"])
	if err != nil {
		falhaBanco(w, r, err, "Atleta")
		return
	}
	a.Name = strings.TrimSpace(req.Name)
	a.BirthDate = nascimento
	a.Gender, a.Handedness, a.BloodType = enum(req.Gender), enum(req.Handedness), enum(req.BloodType)
	if err := h.Repository.SalvarAtleta(h.DB, a); err != nil {
		falhaBanco(w, r, err, "Atleta")
		return
	}
	semConteudo(w)
}

// AlternarStatus inverte ativo/inativo.
func (h *Handler) AlternarStatus(w http.ResponseWriter, r *http.Request) {
	a, err := h.Repository.BuscarAtleta(h.DB, orgDe(r), mux.Vars(r)["id"])
	if err != nil {
		falhaBanco(w, r, err, "Atleta")
		return
	}
	a.Status = !a.Status
	if err := h.Repository.SalvarAtleta(h.DB, a); err != nil {
		falhaBanco(w, r, err, "Atleta")
		return
	}
	semConteudo(w)
}

func (h *Handler) AtualizarResponsavel(w http.ResponseWriter, r *http.Request) {
	var req requisicaoResponsavel
	if !lerCorpo(w, r, &req) {
		return
	}
	g, err := h.Repository.BuscarResponsavel(h.DB, orgDe(r), mux.Vars(r)["id"])
	if err != nil {
		falhaBanco(w, r, err, "Responsável")
		return
	}
	g.Name, g.Email, g.RelationshipDegree = req.Name, req.Email, req.RelationshipDegree
	g.RG, g.CPF, g.Gender = req.RG, req.CPF, enum(req.Gender)
	if err := h.Repository.SalvarResponsavel(h.DB, g); err != nil {
		falhaBanco(w, r, err, "Responsável")
		return
	}
	semConteudo(w)
}
