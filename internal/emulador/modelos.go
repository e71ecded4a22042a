package emulador

import (
	"strings"
	"time"
)

const (
	PapelAdministrador = "ADMINISTRATOR"
	PapelVoluntario    = "VOLUNTEER"
)

var Areas = []string{
	"UNSPECIFIED", "PSYCHOLOGY", "PHYSIOTHERAPY", "NUTRITION", "NURSING", "PSYCHOPEDAGOGY", "PHYSICAL_EDUCATION",
}

type Endereco struct {
	ID           uint `gorm:"primaryKey"`
	Street       string
	Neighborhood string
	Zipcode      string
	Complement   string
	Number       string
	City         string
	UF           string
	Country      string
}

type Organizacao struct {
	ID              string `gorm:"primaryKey"`
	Name            string
	Domain          string
	DefaultPassword string
	OwnerID         string
	EnderecoID      *uint
	Endereco        *Endereco
	CreatedAt       time.Time
}

type Usuario struct {
	ID            string `gorm:"primaryKey"`
	OrganizacaoID string `gorm:"index"`
	Name          string
	Email         string `gorm:"uniqueIndex"`
	Senha         string
	Phone         string
	CPF           string
	BirthDate     string
	Gender        string
	Role          string
	Area          string
	Status        bool
	AccessDate    time.Time
	EnderecoID    *uint
	Endereco      *Endereco
	CreatedAt     time.Time
}

type Atleta struct {
	ID            string `gorm:"primaryKey"`
	OrganizacaoID string `gorm:"index"`
	Name          string `gorm:"index"`
	BirthDate     time.Time
	BloodType     *string
	Gender        *string
	Handedness    *string
	Status        bool
	Responsavel   *Responsavel `gorm:"foreignKey:AtletaID"`
	Anamnese      *Anamnese    `gorm:"foreignKey:AtletaID"`
	CreatedAt     time.Time
}

type Responsavel struct {
	ID                 string `gorm:"primaryKey"`
	AtletaID           string `gorm:"index"`
	Name               string
	Email              string
	RelationshipDegree string
	CPF                string
	RG                 string
	Gender             *string
	CreatedAt          time.Time
}

// Secao e Pergunta formam o questionário, o mesmo para todas as anamneses.
type Secao struct {
	ID          uint `gorm:"primaryKey"`
	Ordem       int
	Icon        string
	Title       string
	Description string
	Perguntas   []Pergunta `gorm:"foreignKey:SecaoID"`
}

type Pergunta struct {
	ID          uint `gorm:"primaryKey"`
	SecaoID     uint `gorm:"index"`
	Ordem       int
	Title       string
	Description *string
	Observation *string
	Tipo        string
	Opcoes      []string `gorm:"serializer:json"`
}

type Anamnese struct {
	ID        string `gorm:"primaryKey"`
	AtletaID  string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Resposta struct {
	ID          string `gorm:"primaryKey"`
	AnamneseID  string `gorm:"uniqueIndex:idx_resposta_pergunta"`
	PerguntaID  uint   `gorm:"uniqueIndex:idx_resposta_pergunta"`
	Value       string
	Observation string
	UpdatedAt   time.Time
}

// Iniciais devolve até duas letras maiúsculas do nome.
func Iniciais(nome string) string {
	var b strings.Builder
	for i, p := range strings.Fields(nome) {
		if i == 2 {
			break
		}
		b.WriteString(strings.ToUpper(string([]rune(p)[:1])))
	}
	return b.String()
}

// Idade em anos completos na data agora.
func Idade(nascimento, agora time.Time) int {
	anos := agora.Year() - nascimento.Year()
	if agora.Month() < nascimento.Month() || (agora.Month() == nascimento.Month() && agora.Day() < nascimento.Day()) {
		anos--
	}
	if anos < 0 {
		return 0
	}
	return anos
}

func (Endereco) TableName() string    { return "enderecos" }
func (Organizacao) TableName() string { return "organizacoes" }
func (Usuario) TableName() string     { return "usuarios" }
func (Atleta) TableName() string      { return "atletas" }
func (Responsavel) TableName() string { return "responsaveis" }
func (Secao) TableName() string       { return "secoes" }
func (Pergunta) TableName() string    { return "perguntas" }
func (Anamnese) TableName() string    { return "anamneses" }
func (Resposta) TableName() string    { return "respostas" }
