package atleta

import (
	"net/url"
	"strconv"

	"github.com/t21arenapark/painel/internal/cache"
)

const (
	StatusAtivo   = "active"
	StatusInativo = "inactive"
	StatusTodos   = "all"
)

// Item é uma linha de GET /athletes.
type Item struct {
	ID         string `json:"id"`
	Age        int    `json:"age"`
	Status     string `json:"status"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BloodType  string `json:"blood_type"`
	Gender     string `json:"gender"`
	Handedness string `json:"handedness"`
}

type Meta struct {
	PageIndex  int `json:"pageIndex"`
	PerPage    int `json:"perPage"`
	TotalCount int `json:"totalCount"`
}

// UltimaPagina é ceil(totalCount/perPage), ou 1 quando não há itens.
func (m Meta) UltimaPagina() int {
	if m.PerPage <= 0 || m.TotalCount <= 0 {
		return 1
	}
	return (m.TotalCount + m.PerPage - 1) / m.PerPage
}

type Pagina struct {
	Athletes []Item `json:"athletes"`
	Meta     Meta   `json:"meta"`
}

// comStatusAlternado devolve uma cópia com o status do atleta invertido.
func (p Pagina) comStatusAlternado(id string) Pagina {
	out := p
	out.Athletes = make([]Item, len(p.Athletes))
	copy(out.Athletes, p.Athletes)
	for i := range out.Athletes {
		if out.Athletes[i].ID != id {
			continue
		}
		if out.Athletes[i].Status == StatusAtivo {
			out.Athletes[i].Status = StatusInativo
		} else {
			out.Athletes[i].Status = StatusAtivo
		}
	}
	return out
}

// Filtro vem da query da tela: page começa em 1, pageIndex em 0.
type Filtro struct {
	PageIndex int
	Nome      string
	Status    string
}

func FiltroDe(q url.Values) Filtro {
	f := Filtro{Nome: q.Get("athleteName"), Status: q.Get("status")}
	if f.Status == "" {
		f.Status = StatusAtivo
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 1 {
		f.PageIndex = page - 1
	}
	return f
}

func (f Filtro) Chave() cache.Chave {
	return cache.Chave{"athletes", strconv.Itoa(f.PageIndex), f.Nome, f.Status}
}

// Query monta os parâmetros de GET /athletes.
func (f Filtro) Query() url.Values {
	return url.Values{
		"pageIndex":   {strconv.Itoa(f.PageIndex)},
		"athleteName": {f.Nome},
		"status":      {f.Status},
	}
}

// URL devolve o endereço da tela com o filtro atual na página indicada.
func (f Filtro) URL(pageIndex int) string {
	q := url.Values{"page": {strconv.Itoa(pageIndex + 1)}}
	if f.Nome != "" {
		q.Set("athleteName", f.Nome)
	}
	if f.Status != "" && f.Status != StatusAtivo {
		q.Set("status", f.Status)
	}
	return "/athletes?" + q.Encode()
}

type Responsavel struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	RelationshipDegree string `json:"relationship_degree"`
	CPF                string `json:"cpf"`
	RG                 string `json:"rg"`
	Gender             string `json:"gender"`
}

type ReferenciaAnamnese struct {
	ID        string `json:"id"`
	AthleteID string `json:"athlete_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Perfil é a resposta de GET /athletes/{id}.
type Perfil struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Status     string              `json:"status"`
	BirthDate  string              `json:"birth_date"`
	CreatedAt  string              `json:"created_at"`
	BloodType  string              `json:"blood_type"`
	Gender     string              `json:"gender"`
	Handedness string              `json:"handedness"`
	Initials   string              `json:"initials"`
	Guardian   *Responsavel        `json:"guardian"`
	Anamnesis  *ReferenciaAnamnese `json:"anamnesis"`
}

// NovoAtleta é o corpo de POST /athletes; "none" segue literal.
type NovoAtleta struct {
	Name         string `json:"name"`
	BirthDate    string `json:"birthDate"`
	BloodType    string `json:"bloodType"`
	Gender       string `json:"gender"`
	GuardianName string `json:"guardianName"`
	Handedness   string `json:"handedness"`
	Status       bool   `json:"status"`
}

// Atualizacao é o corpo de PATCH /athletes/{id}; "none" vira null.
type Atualizacao struct {
	Gender     *string `json:"gender"`
	Name       string  `json:"name"`
	BirthDate  string  `json:"birthDate"`
	Handedness *string `json:"handedness"`
	BloodType  *string `json:"bloodType"`
}

// AtualizacaoResponsavel é o corpo de PATCH /guardians/{id}.
type AtualizacaoResponsavel struct {
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	RelationshipDegree string  `json:"relationship_degree"`
	RG                 string  `json:"rg"`
	CPF                string  `json:"cpf"`
	Gender             *string `json:"gender"`
}
