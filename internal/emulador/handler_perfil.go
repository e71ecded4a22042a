package emulador

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

type enderecoJSON struct {
	ID           uint   `json:"id,omitempty"`
	Street       string `json:"street" validate:"max=120"`
	Neighborhood string `json:"neighborhood" validate:"max=80"`
	Zipcode      string `json:"zipcode" validate:"max=12"`
	Complement   string `json:"complement" validate:"max=80"`
	Number       string `json:"number" validate:"max=12"`
	City         string `json:"city" validate:"max=80"`
	UF           string `json:"uf" validate:"max=2"`
	Country      string `json:"country" validate:"max=60"`
}

func enderecoDe(e *Endereco) *enderecoJSON {
	if e == nil {
		return nil
	}
	return &enderecoJSON{
		ID: e.ID, Street: e.Street, Neighborhood: e.Neighborhood, Zipcode: e.Zipcode,
		Complement: e.Complement, Number: e.Number, City: e.City, UF: e.UF, Country: e.Country,
	}
}

// aplicar copia os campos para dst, criando o endereço se preciso.
func (e enderecoJSON) aplicar(dst **Endereco) {
	if *dst == nil {
		*dst = &Endereco{}
	}
	d := *dst
	d.Street, d.Neighborhood, d.Zipcode, d.Complement = e.Street, e.Neighborhood, e.Zipcode, e.Complement
	d.Number, d.City, d.UF, d.Country = e.Number, e.City, strings.ToUpper(e.UF), e.Country
}

type perfilJSON struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Initials  string        `json:"initials"`
	Email     string        `json:"email"`
	Status    bool          `json:"status"`
	BirthDate string        `json:"birthDate,omitempty"`
	Gender    string        `json:"gender,omitempty"`
	CPF       string        `json:"cpf,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Role      string        `json:"role"`
	CreatedAt string        `json:"created_at"`
	Area      string        `json:"area"`
	Address   *enderecoJSON `json:"address,omitempty"`
}

type requisicaoPerfil struct {
	Name      string       `json:"name" validate:"required"`
	CPF       string       `json:"cpf" validate:"required"`
	Email     string       `json:"email" validate:"omitempty,email"`
	Phone     string       `json:"phone"`
	BirthDate string       `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string      `json:"gender"`
	Address   enderecoJSON `json:"address"`
}

type requisicaoEmail struct {
	Email           string `json:"email" validate:"required,email"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
}

type requisicaoSenha struct {
	NewPassword     string `json:"newPassword" validate:"min=6"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
}

func (h *Handler) usuarioAtual(w http.ResponseWriter, r *http.Request) (*Usuario, bool) {
	u, err := h.Repository.BuscarUsuario(h.DB, claimsDe(r.Context()).Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// o usuário do token não existe mais
		escreverErro(w, http.StatusUnauthorized, CodigoNaoAutorizado, "Usuário não encontrado.")
		return nil, false
	}
	if err != nil {
		falhaBanco(w, r, err, "Usuário")
		return nil, false
	}
	return u, true
}

func (h *Handler) Perfil(w http.ResponseWriter, r *http.Request) {
	u, ok := h.usuarioAtual(w, r)
	if !ok {
		return
	}
	escreverJSON(w, http.StatusOK, perfilJSON{
		ID:        u.ID,
		Name:      u.Name,
		Initials:  Iniciais(u.Name),
		Email:     u.Email,
		Status:    u.Status,
		BirthDate: u.BirthDate,
		Gender:    u.Gender,
		CPF:       u.CPF,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: formatarData(u.CreatedAt),
		Area:      strings.ToLower(u.Area),
		Address:   enderecoDe(u.Endereco),
	})
}

func (h *Handler) AtualizarPerfil(w http.ResponseWriter, r *http.Request) {
	var req requisicaoPerfil
	if !lerCorpo(w, r, &req) {
		return
	}
	u, ok := h.usuarioAtual(w, r)
	if !ok {
		return
	}
	if req.Email != "" && !strings.EqualFold(req.Email, u.Email) {
		if !h.emailLivre(w, r, req.Email) {
			return
		}
		u.Email = req.Email
	}
	u.Name, u.CPF, u.Phone, u.BirthDate = req.Name, req.CPF, req.Phone, req.BirthDate
	u.Gender = valor(enum(req.Gender))
	req.Address.aplicar(&u.Endereco)

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(u.Endereco).Error; err != nil {
			return err
		}
		u.EnderecoID = &u.Endereco.ID
		return h.Repository.SalvarUsuario(tx, u)
	})
	if err != nil {
		falhaBanco(w, r, err, "Usuário")
		return
	}
	semConteudo(w)
}

func (h *Handler) emailLivre(w http.ResponseWriter, r *http.Request, email string) bool {
	_, err := h.Repository.BuscarUsuarioPorEmail(h.DB, email)
	if err == nil {
		escreverErro(w, http.StatusConflict, CodigoConflito, "E-mail já cadastrado.")
		return false
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		falhaBanco(w, r, err, "Usuário")
		return false
	}
	return true
}

// senhaAtualConfere responde 400, não 401, para não derrubar a sessão do painel.
func senhaAtualConfere(w http.ResponseWriter, u *Usuario, senha string) bool {
	if !senhaConfere(u.Senha, senha) {
		escreverErro(w, http.StatusBadRequest, CodigoInvalido, "Senha atual incorreta.")
		return false
	}
	return true
}

func (h *Handler) AtualizarEmail(w http.ResponseWriter, r *http.Request) {
	var req requisicaoEmail
	if !lerCorpo(w, r, &req) {
		return
	}
	u, ok := h.usuarioAtual(w, r)
	if !ok || !senhaAtualConfere(w, u, req.CurrentPassword) {
		return
	}
	if !strings.EqualFold(req.Email, u.Email) && !h.emailLivre(w, r, req.Email) {
		return
	}
	u.Email = req.Email
	if err := h.Repository.SalvarUsuario(h.DB, u); err != nil {
		falhaBanco(w, r, err, "Usuário")
		return
	}
	semConteudo(w)
}

func (h *Handler) AtualizarSenha(w http.ResponseWriter, r *http.Request) {
	var req requisicaoSenha
	if !lerCorpo(w, r, &req) {
		return
	}
	u, ok := h.usuarioAtual(w, r)
	if !ok || !senhaAtualConfere(w, u, req.CurrentPassword) {
		return
	}
	hash, ok := cifrar(w, req.NewPassword)
	if !ok {
		return
	}
	u.Senha = hash
	if err := h.Repository.SalvarUsuario(h.DB, u); err != nil {
		falhaBanco(w, r, err, "Usuário")
		return
	}
	semConteudo(w)
}
