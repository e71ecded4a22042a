package perfil

type Endereco struct {
	ID           int    `json:"id,omitempty"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Zipcode      string `json:"zipcode"`
	Complement   string `json:"complement"`
	Number       string `json:"number"`
	City         string `json:"city"`
	UF           string `json:"uf"`
	Country      string `json:"country"`
}

// Perfil é a resposta de GET /me.
type Perfil struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Initials  string    `json:"initials"`
	Email     string    `json:"email"`
	Status    bool      `json:"status"`
	BirthDate string    `json:"birthDate,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	CPF       string    `json:"cpf,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt string    `json:"created_at"`
	Area      string    `json:"area"`
	Address   *Endereco `json:"address,omitempty"`
}

// comEmail devolve uma cópia com o e-mail trocado.
func (p Perfil) comEmail(email string) Perfil {
	p.Email = email
	return p
}

// Atualizacao é o corpo de PUT /me.
type Atualizacao struct {
	Name      string   `json:"name"`
	CPF       string   `json:"cpf"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	BirthDate string   `json:"birthDate"`
	Gender    *string  `json:"gender"`
	Address   Endereco `json:"address"`
}

type AtualizacaoEmail struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
}

type AtualizacaoSenha struct {
	NewPassword     string `json:"newPassword"`
	CurrentPassword string `json:"currentPassword"`
}
