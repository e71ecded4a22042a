package voluntario

// Voluntario é um item de GET /volunteers. A área vem em minúsculas.
type Voluntario struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	AccessDate string `json:"access_date"`
	CreatedAt  string `json:"created_at"`
	Area       string `json:"area"`
	Status     bool   `json:"status"`
}

type Lista struct {
	Volunteers []Voluntario `json:"volunteers"`
}

// Ativos devolve os voluntários com status verdadeiro.
func (l Lista) Ativos() []Voluntario {
	out := make([]Voluntario, 0, len(l.Volunteers))
	for _, v := range l.Volunteers {
		if v.Status {
			out = append(out, v)
		}
	}
	return out
}

// comInativo devolve uma cópia com o voluntário marcado como inativo.
func (l Lista) comInativo(id string) Lista {
	out := Lista{Volunteers: make([]Voluntario, len(l.Volunteers))}
	copy(out.Volunteers, l.Volunteers)
	for i := range out.Volunteers {
		if out.Volunteers[i].ID == id {
			out.Volunteers[i].Status = false
		}
	}
	return out
}

const PapelVoluntario = "VOLUNTEER"

// Novo é o corpo de POST /volunteers.
type Novo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Area     string `json:"area"`
	Role     string `json:"role"`
}

// Atualizacao é o corpo de PUT /volunteers/{id}.
type Atualizacao struct {
	Name string `json:"name"`
	Area string `json:"area"`
}
