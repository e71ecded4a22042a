package emulador

import (
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type organizacaoJSON struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Domain          string            `json:"domain"`
	DefaultPassword string            `json:"default_password"`
	Address         *enderecoJSON     `json:"address"`
	Owner           map[string]string `json:"owner"`
}

type voluntarioJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	AccessDate string `json:"access_date"`
	CreatedAt  string `json:"created_at"`
	Area       string `json:"area"`
	Status     bool   `json:"status"`
}

type requisicaoVoluntario struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
	Phone    string `json:"phone"`
	Area     string `json:"area" validate:"required"`
	Role     string `json:"role"`
}

type requisicaoEdicaoVoluntario struct {
	Name string `json:"name" validate:"min=3"`
	Area string `json:"area" validate:"required"`
}

func areaValida(w http.ResponseWriter, area string) (string, bool) {
	a := strings.ToUpper(area)
	if !slices.Contains(Areas, a) {
		escreverErro(w, http.StatusBadRequest, CodigoInvalido, "Área inválida.")
		return "", false
	}
	return a, true
}

func (h *Handler) Organizacao(w http.ResponseWriter, r *http.Request) {
	o, err := h.Repository.BuscarOrganizacao(h.DB, orgDe(r))
	if err != nil {
		falhaBanco(w, r, err, "Organização")
		return
	}
	dono := ""
	if u, err := h.Repository.BuscarUsuario(h.DB, o.OwnerID); err == nil {
		dono = u.Name
	}
	escreverJSON(w, http.StatusOK, organizacaoJSON{
		ID:              o.ID,
		Name:            o.Name,
		Domain:          o.Domain,
		DefaultPassword: o.DefaultPassword,
		Address:         enderecoDe(o.Endereco),
		Owner:           map[string]string{"name": dono},
	})
}

// AtualizarOrganizacao grava o endereço da organização.
func (h *Handler) AtualizarOrganizacao(w http.ResponseWriter, r *http.Request) {
	var req enderecoJSON
	if !lerCorpo(w, r, &req) {
		return
	}
	o, err := h.Repository.BuscarOrganizacao(h.DB, orgDe(r))
	if err != nil {
		falhaBanco(w, r, err, "Organização")
		return
	}
	req.aplicar(&o.Endereco)
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(o.Endereco).Error; err != nil {
			return err
		}
		o.EnderecoID = &o.Endereco.ID
		return h.Repository.SalvarOrganizacao(tx, o)
	})
	if err != nil {
		falhaBanco(w, r, err, "Organização")
		return
	}
	semConteudo(w)
}

func (h *Handler) ListarVoluntarios(w http.ResponseWriter, r *http.Request) {
	us, err := h.Repository.ListarVoluntarios(h.DB, orgDe(r))
	if err != nil {
		falhaBanco(w, r, err, "Voluntário")
		return
	}
	out := make([]voluntarioJSON, len(us))
	for i, u := range us {
		acesso := ""
		if !u.AccessDate.IsZero() {
			acesso = formatarData(u.AccessDate)
		}
		out[i] = voluntarioJSON{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Phone:      u.Phone,
			AccessDate: acesso,
			CreatedAt:  formatarData(u.CreatedAt),
			Area:       strings.ToLower(u.Area),
			Status:     u.Status,
		}
	}
	escreverJSON(w, http.StatusOK, map[string]any{"volunteers": out})
}

func (h *Handler) CriarVoluntario(w http.ResponseWriter, r *http.Request) {
	var req requisicaoVoluntario
	if !lerCorpo(w, r, &req) {
		return
	}
	area, ok := areaValida(w, req.Area)
	if !ok || !h.emailLivre(w, r, req.Email) {
		return
	}
	hash, ok := cifrar(w, req.Password)
	if !ok {
		return
	}
	u := &Usuario{
		ID:            uuid.NewString(),
		OrganizacaoID: orgDe(r),
		Name:          strings.TrimSpace(req.Name),
		Email:         req.Email,
		Senha:         hash,
		Phone:         req.Phone,
		Role:          PapelVoluntario,
		Area:          area,
		Status:        true,
	}
	if err := h.Repository.SalvarUsuario(h.DB, u); err != nil {
		falhaBanco(w, r, err, "Voluntário")
		return
	}
	escreverJSON(w, http.StatusCreated, map[string]string{"id": u.ID})
}

func (h *Handler) voluntario(w http.ResponseWriter, r *http.Request) (*Usuario, bool) {
	u, err := h.Repository.BuscarUsuario(h.DB, mux.Vars(r)["id"])
	if err == nil && (u.OrganizacaoID != orgDe(r) || u.Role != PapelVoluntario) {
		err = gorm.ErrRecordNotFound
	}
	if err != nil {
		falhaBanco(w, r, err, "Voluntário")
		return nil, false
	}
	return u, true
}

func (h *Handler) AtualizarVoluntario(w http.ResponseWriter, r *http.Request) {
	var req requisicaoEdicaoVoluntario
	if !lerCorpo(w, r, &req) {
		return
	}
	area, ok := areaValida(w, req.Area)
	if !ok {
		return
	}
	u, ok := h.voluntario(w, r)
	if !ok {
		return
	}
	u.Name, u.Area = strings.TrimSpace(req.Name), area
	if err := h.Repository.SalvarUsuario(h.DB, u); err != nil {
		falhaBanco(w, r, err, "Voluntário")
		return
	}
	semConteudo(w)
}

// ExcluirVoluntario desativa o voluntário; o registro continua na lista com status falso.
func (h *Handler) ExcluirVoluntario(w http.ResponseWriter, r *http.Request) {
	u, ok := h.voluntario(w, r)
	if !ok {
		return
	}
	u.Status = false
	if err := h.Repository.SalvarUsuario(h.DB, u); err != nil {
		falhaBanco(w, r, err, "Voluntário")
		return
	}
	semConteudo(w)
}
