package emulador

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmailAdministrador = "admin@t21arenapark.com.br"
	SenhaSeed          = "123456"

	nomeOrganizacaoSeed = "T21 Arena Park"
)

// namespace dos ids gerados pelo seed, para que sejam estáveis entre execuções
var namespaceSeed = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://t21arenapark.com.br/apimock"))

func idSeed(nome string) string {
	return uuid.NewSHA1(namespaceSeed, []byte(nome)).String()
}

func texto(s string) *string { return &s }

type atletaSeed struct {
	nome        string
	nascimento  string
	genero      string
	sangue      string
	lateralidade string
	ativo       bool
	responsavel string
}

var atletasSeed = []atletaSeed{
	{"Ana Silva", "2012-03-14", "FEMALE", "A_POSITIVE", "RIGHT", false, "Marta Silva"},
	{"Bruno Silva", "2010-07-02", "MALE", "O_POSITIVE", "RIGHT", true, "Carlos Silva"},
	{"Carla Souza Silva", "2014-11-20", "FEMALE", "B_NEGATIVE", "LEFT", false, ""},
	{"Daniel Costa", "2011-01-30", "MALE", "AB_POSITIVE", "RIGHT", true, "Paula Costa"},
	{"Eduarda Lima", "2013-05-08", "FEMALE", "O_NEGATIVE", "RIGHT", true, "Roberto Lima"},
	{"Felipe Araújo", "2009-09-17", "MALE", "A_NEGATIVE", "LEFT", true, ""},
	{"Gabriela Rocha", "2015-02-25", "FEMALE", "O_POSITIVE", "RIGHT", true, "Helena Rocha"},
	{"Henrique Martins", "2012-12-03", "MALE", "B_POSITIVE", "RIGHT", true, ""},
	{"Isabela Ferreira", "2010-04-11", "FEMALE", "A_POSITIVE", "RIGHT", true, "Jorge Ferreira"},
	{"João Pedro Alves", "2011-08-29", "MALE", "O_POSITIVE", "RIGHT", true, "Luciana Alves"},
	{"Larissa Gomes", "2014-06-16", "FEMALE", "AB_NEGATIVE", "LEFT", true, ""},
	{"Mateus Ribeiro", "2013-10-05", "MALE", "A_POSITIVE", "RIGHT", true, "Renata Ribeiro"},
}

func questionario() []Secao {
	return []Secao{
		{ID: 1, Ordem: 1, Icon: "user", Title: "Informações gerais", Description: "Dados gerais sobre a rotina do atleta.",
			Perguntas: []Pergunta{
				{ID: 1, Ordem: 1, Title: "Escola onde estuda", Tipo: "SHORT_ANSWER"},
				{ID: 2, Ordem: 2, Title: "Data da última consulta médica", Tipo: "DATE"},
				{ID: 3, Ordem: 3, Title: "Horário preferido para treinar", Tipo: "TIME"},
				{ID: 4, Ordem: 4, Title: "Peso (kg)", Tipo: "NUMBER", Observation: texto("Informe a data da pesagem")},
			}},
		{ID: 2, Ordem: 2, Icon: "heart", Title: "Saúde", Description: "Histórico de saúde do atleta.",
			Perguntas: []Pergunta{
				{ID: 5, Ordem: 1, Title: "Possui alergias?", Tipo: "TRUE_FALSE", Observation: texto("Quais?")},
				{ID: 6, Ordem: 2, Title: "Faz acompanhamento cardiológico?", Tipo: "MULTIPLE_CHOICE",
					Opcoes: []string{"Sim, regularmente", "Sim, eventualmente", "Não"}},
				{ID: 7, Ordem: 3, Title: "Histórico de cirurgias", Tipo: "ESSAY",
					Description: texto("Descreva cirurgias e internações anteriores.")},
				{ID: 8, Ordem: 4, Title: "Frequência de atividade física", Tipo: "DROPDOWN",
					Opcoes: []string{"Nenhuma", "1 a 2 vezes por semana", "3 a 4 vezes por semana", "Todos os dias"}},
			}},
		{ID: 3, Ordem: 3, Icon: "smile", Title: "Comportamento", Description: "Como o atleta se relaciona nos treinos.",
			Perguntas: []Pergunta{
				{ID: 9, Ordem: 1, Title: "Características", Tipo: "MULTI_SELECT",
					Opcoes: []string{"Calmo", "Agitado", "Tímido", "Comunicativo", "Concentrado"}},
				{ID: 10, Ordem: 2, Title: "Interação com o grupo", Tipo: "RATING"},
				{ID: 11, Ordem: 3, Title: "Observações gerais", Tipo: "ESSAY", Observation: texto("Observação do profissional")},
			}},
	}
}

// Seed popula o banco com dados de demonstração. Não faz nada se o
// administrador já existir.
func Seed(db *gorm.DB, agora time.Time) error {
	repo := NewRepository()
	_, err := repo.BuscarUsuarioPorEmail(db, EmailAdministrador)
	if err == nil {
		slog.Info("seed já aplicado")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := cifrarSenha(SenhaSeed)
	if err != nil {
		return fmt.Errorf("erro ao gerar hash: %w", err)
	}
	padrao, err := SenhaPadrao(nomeOrganizacaoSeed)
	if err != nil {
		return fmt.Errorf("erro ao gerar senha padrão: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		endereco := &Endereco{Street: "Rua das Palmeiras", Number: "210", Neighborhood: "Centro",
			Zipcode: "37500-000", City: "Itajubá", UF: "MG", Country: "Brasil"}
		if err := tx.Create(endereco).Error; err != nil {
			return err
		}

		org := &Organizacao{
			ID: idSeed("org"), Name: nomeOrganizacaoSeed, Domain: "t21arenapark.com.br",
			DefaultPassword: padrao, OwnerID: idSeed("admin"), EnderecoID: &endereco.ID,
		}
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		usuarios := []Usuario{
			{ID: idSeed("admin"), OrganizacaoID: org.ID, Name: "Administrador Arena", Email: EmailAdministrador,
				Senha: hash, CPF: "000.000.000-00", Role: PapelAdministrador, Area: "UNSPECIFIED", Status: true},
			{ID: idSeed("voluntario"), OrganizacaoID: org.ID, Name: "Beatriz Nogueira", Email: "voluntario@t21arenapark.com.br",
				Senha: hash, Phone: "(35) 99999-0000", Role: PapelVoluntario, Area: "PSYCHOLOGY", Status: true},
		}
		if err := tx.Create(&usuarios).Error; err != nil {
			return err
		}

		secoes := questionario()
		if err := tx.Create(&secoes).Error; err != nil {
			return err
		}

		for i, s := range atletasSeed {
			nasc, err := time.Parse("2006-01-02", s.nascimento)
			if err != nil {
				return err
			}
			a := &Atleta{
				ID: idSeed("atleta-" + s.nome), OrganizacaoID: org.ID, Name: s.nome, BirthDate: nasc,
				Gender: texto(s.genero), BloodType: texto(s.sangue), Handedness: texto(s.lateralidade),
				Status:    s.ativo,
				Anamnese:  &Anamnese{ID: idSeed("anamnese-" + s.nome)},
				CreatedAt: agora.AddDate(0, 0, -(i % 9)),
			}
			if s.responsavel != "" {
				a.Responsavel = &Responsavel{ID: idSeed("responsavel-" + s.nome), Name: s.responsavel,
					RelationshipDegree: "PARENT"}
			}
			if err := repo.CriarAtleta(tx, a); err != nil {
				return err
			}
		}

		// respostas de exemplo para o primeiro atleta
		primeira := idSeed("anamnese-" + atletasSeed[0].nome)
		respostas := []Resposta{
			{ID: uuid.NewString(), AnamneseID: primeira, PerguntaID: 5, Value: "true", Observation: "Amendoim"},
			{ID: uuid.NewString(), AnamneseID: primeira, PerguntaID: 7, Value: "Nenhuma cirurgia."},
			{ID: uuid.NewString(), AnamneseID: primeira, PerguntaID: 9, Value: "Calmo;Concentrado"},
		}
		if err := tx.Create(&respostas).Error; err != nil {
			return err
		}

		slog.Info("seed aplicado", "organizacao", org.Name, "atletas", len(atletasSeed))
		return nil
	})
}
