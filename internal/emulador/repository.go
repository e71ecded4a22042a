package emulador

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const PorPagina = 10

// FiltroAtletas são os parâmetros de GET /athletes.
type FiltroAtletas struct {
	PageIndex int
	Nome      string
	Status    string
}

type contagemGenero struct {
	Gender *string
	Amount int
}

type Repository interface {
	BuscarUsuarioPorEmail(db *gorm.DB, email string) (*Usuario, error)
	BuscarUsuario(db *gorm.DB, id string) (*Usuario, error)
	SalvarUsuario(db *gorm.DB, u *Usuario) error
	ListarVoluntarios(db *gorm.DB, orgID string) ([]Usuario, error)

	BuscarOrganizacao(db *gorm.DB, id string) (*Organizacao, error)
	SalvarOrganizacao(db *gorm.DB, o *Organizacao) error

	ListarAtletas(db *gorm.DB, orgID string, f FiltroAtletas) ([]Atleta, int64, error)
	BuscarAtleta(db *gorm.DB, orgID, id string) (*Atleta, error)
	CriarAtleta(db *gorm.DB, a *Atleta) error
	SalvarAtleta(db *gorm.DB, a *Atleta) error
	BuscarResponsavel(db *gorm.DB, orgID, id string) (*Responsavel, error)
	SalvarResponsavel(db *gorm.DB, r *Responsavel) error

	BuscarAnamnese(db *gorm.DB, orgID, id string) (*Anamnese, *Atleta, error)
	Questionario(db *gorm.DB) ([]Secao, error)
	Respostas(db *gorm.DB, anamneseID string) ([]Resposta, error)
	BuscarPergunta(db *gorm.DB, secaoID, perguntaID uint) (*Pergunta, error)
	SalvarResposta(db *gorm.DB, r *Resposta) error

	ContarAtletas(db *gorm.DB, orgID string) (int64, error)
	ContarAnamneses(db *gorm.DB, orgID string) (int64, error)
	ContarResponsaveis(db *gorm.DB, orgID string) (int64, error)
	Nascimentos(db *gorm.DB, orgID string) ([]time.Time, error)
	AtletasPorGenero(db *gorm.DB, orgID string) ([]contagemGenero, error)
	CadastrosDesde(db *gorm.DB, orgID string, desde time.Time) ([]time.Time, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarUsuarioPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	err := db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) BuscarUsuario(db *gorm.DB, id string) (*Usuario, error) {
	var u Usuario
	err := db.Preload("Endereco").First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repositoryImpl) SalvarUsuario(db *gorm.DB, u *Usuario) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return db.Save(u).Error
}

func (r *repositoryImpl) ListarVoluntarios(db *gorm.DB, orgID string) ([]Usuario, error) {
	var us []Usuario
	err := db.Where("organizacao_id = ? AND role = ?", orgID, PapelVoluntario).
		Order("name").
		Find(&us).Error
	return us, err
}

func (r *repositoryImpl) BuscarOrganizacao(db *gorm.DB, id string) (*Organizacao, error) {
	var o Organizacao
	err := db.Preload("Endereco").First(&o, "id = ?", id).Error
	return &o, err
}

func (r *repositoryImpl) SalvarOrganizacao(db *gorm.DB, o *Organizacao) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return db.Save(o).Error
}

func (r *repositoryImpl) ListarAtletas(db *gorm.DB, orgID string, f FiltroAtletas) ([]Atleta, int64, error) {
	q := db.Model(&Atleta{}).Where("organizacao_id = ?", orgID)
	if nome := strings.TrimSpace(f.Nome); nome != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(nome)+"%")
	}
	switch f.Status {
	case "inactive":
		q = q.Where("status = ?", false)
	case "all":
	default:
		q = q.Where("status = ?", true)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var atletas []Atleta
	err := q.Order("name").Order("id").
		Offset(f.PageIndex * PorPagina).
		Limit(PorPagina).
		Find(&atletas).Error
	return atletas, total, err
}

func (r *repositoryImpl) BuscarAtleta(db *gorm.DB, orgID, id string) (*Atleta, error) {
	var a Atleta
	err := db.Preload("Responsavel").Preload("Anamnese").
		Where("organizacao_id = ?", orgID).
		First(&a, "id = ?", id).Error
	return &a, err
}

// CriarAtleta grava o atleta com o responsável e a anamnese numa transação.
func (r *repositoryImpl) CriarAtleta(db *gorm.DB, a *Atleta) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(a).Error
	})
}

func (r *repositoryImpl) SalvarAtleta(db *gorm.DB, a *Atleta) error {
	return db.Omit(clause.Associations).Save(a).Error
}

func (r *repositoryImpl) BuscarResponsavel(db *gorm.DB, orgID, id string) (*Responsavel, error) {
	var resp Responsavel
	err := db.Joins("JOIN atletas ON atletas.id = responsaveis.atleta_id").
		Where("atletas.organizacao_id = ?", orgID).
		First(&resp, "responsaveis.id = ?", id).Error
	return &resp, err
}

func (r *repositoryImpl) SalvarResponsavel(db *gorm.DB, resp *Responsavel) error {
	return db.Save(resp).Error
}

func (r *repositoryImpl) BuscarAnamnese(db *gorm.DB, orgID, id string) (*Anamnese, *Atleta, error) {
	var an Anamnese
	if err := db.First(&an, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}
	var a Atleta
	err := db.Where("organizacao_id = ?", orgID).First(&a, "id = ?", an.AtletaID).Error
	if err != nil {
		return nil, nil, err
	}
	return &an, &a, nil
}

func (r *repositoryImpl) Questionario(db *gorm.DB) ([]Secao, error) {
	var secoes []Secao
	err := db.Preload("Perguntas", func(db *gorm.DB) *gorm.DB {
		return db.Order("ordem").Order("id")
	}).Order("ordem").Order("id").Find(&secoes).Error
	return secoes, err
}

func (r *repositoryImpl) Respostas(db *gorm.DB, anamneseID string) ([]Resposta, error) {
	var rs []Resposta
	err := db.Where("anamnese_id = ?", anamneseID).Find(&rs).Error
	return rs, err
}

func (r *repositoryImpl) BuscarPergunta(db *gorm.DB, secaoID, perguntaID uint) (*Pergunta, error) {
	var p Pergunta
	err := db.Where("secao_id = ?", secaoID).First(&p, perguntaID).Error
	return &p, err
}

// SalvarResposta insere ou substitui a resposta da pergunta na anamnese.
func (r *repositoryImpl) SalvarResposta(db *gorm.DB, resp *Resposta) error {
	if resp.ID == "" {
		resp.ID = uuid.NewString()
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "anamnese_id"}, {Name: "pergunta_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "observation", "updated_at"}),
	}).Create(resp).Error
}

func (r *repositoryImpl) ContarAtletas(db *gorm.DB, orgID string) (int64, error) {
	var n int64
	err := db.Model(&Atleta{}).Where("organizacao_id = ?", orgID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) ContarAnamneses(db *gorm.DB, orgID string) (int64, error) {
	var n int64
	err := db.Model(&Anamnese{}).
		Joins("JOIN atletas ON atletas.id = anamneses.atleta_id").
		Where("atletas.organizacao_id = ?", orgID).
		Count(&n).Error
	return n, err
}

func (r *repositoryImpl) ContarResponsaveis(db *gorm.DB, orgID string) (int64, error) {
	var n int64
	err := db.Model(&Responsavel{}).
		Joins("JOIN atletas ON atletas.id = responsaveis.atleta_id").
		Where("atletas.organizacao_id = ?", orgID).
		Count(&n).Error
	return n, err
}

func (r *repositoryImpl) Nascimentos(db *gorm.DB, orgID string) ([]time.Time, error) {
	var ts []time.Time
	err := db.Model(&Atleta{}).Where("organizacao_id = ?", orgID).Pluck("birth_date", &ts).Error
	return ts, err
}

func (r *repositoryImpl) AtletasPorGenero(db *gorm.DB, orgID string) ([]contagemGenero, error) {
	var out []contagemGenero
	err := db.Model(&Atleta{}).
		Select("gender, COUNT(*) AS amount").
		Where("organizacao_id = ?", orgID).
		Group("gender").
		Order("gender").
		Scan(&out).Error
	return out, err
}

func (r *repositoryImpl) CadastrosDesde(db *gorm.DB, orgID string, desde time.Time) ([]time.Time, error) {
	var ts []time.Time
	err := db.Model(&Atleta{}).
		Where("organizacao_id = ? AND created_at >= ?", orgID, desde).
		Pluck("created_at", &ts).Error
	return ts, err
}
