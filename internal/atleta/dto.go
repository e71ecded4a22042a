package atleta

import (
	"net/http"
	"strings"

	"github.com/t21arenapark/painel/internal/api"
)

const (
	acaoCriar       = "criar"
	acaoEditar      = "editar"
	acaoResponsavel = "responsavel"
)

type formAtleta struct {
	Nome           string `form:"name" validate:"required" msg:"O nome é obrigatório"`
	DataNascimento string `form:"birthDate" validate:"required,datetime=2006-01-02" msg:"Formato da data inválido"`
	Lateralidade   string `form:"handedness" validate:"oneof=RIGHT LEFT none" msg:"Selecione uma opção válida"`
	Genero         string `form:"gender" validate:"oneof=MALE FEMALE none" msg:"Selecione uma opção válida"`
	TipoSanguineo  string `form:"bloodType" validate:"oneof=A_POSITIVE A_NEGATIVE B_POSITIVE B_NEGATIVE AB_POSITIVE AB_NEGATIVE O_POSITIVE O_NEGATIVE none" msg:"Selecione uma opção válida"`
}

type formNovoAtleta struct {
	formAtleta
	NomeResponsavel string `form:"guardianName"`
}

func opcaoOuNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}

func lerFormAtleta(r *http.Request) formAtleta {
	return formAtleta{
		Nome:           strings.TrimSpace(r.PostFormValue("name")),
		DataNascimento: r.PostFormValue("birthDate"),
		Lateralidade:   opcaoOuNone(r.PostFormValue("handedness")),
		Genero:         opcaoOuNone(r.PostFormValue("gender")),
		TipoSanguineo:  opcaoOuNone(r.PostFormValue("bloodType")),
	}
}

func (f formNovoAtleta) corpo() NovoAtleta {
	return NovoAtleta{
		Name:         f.Nome,
		BirthDate:    f.DataNascimento,
		BloodType:    f.TipoSanguineo,
		Gender:       f.Genero,
		GuardianName: f.NomeResponsavel,
		Handedness:   f.Lateralidade,
		Status:       true,
	}
}

func (f formAtleta) corpo() Atualizacao {
	return Atualizacao{
		Gender:     api.Opcional(f.Genero),
		Name:       f.Nome,
		BirthDate:  f.DataNascimento,
		Handedness: api.Opcional(f.Lateralidade),
		BloodType:  api.Opcional(f.TipoSanguineo),
	}
}

type formResponsavel struct {
	ID             string `form:"guardianId" validate:"required" msg:"Responsável não encontrado"`
	Nome           string `form:"name"`
	Email          string `form:"email" validate:"omitempty,email" msg:"E-mail inválido"`
	GrauParentesco string `form:"relationship_degree"`
	RG             string `form:"rg"`
	CPF            string `form:"cpf"`
	Genero         string `form:"gender" validate:"oneof=MALE FEMALE none" msg:"Selecione uma opção válida"`
}

func lerFormResponsavel(r *http.Request) formResponsavel {
	return formResponsavel{
		ID:             r.PostFormValue("guardianId"),
		Nome:           strings.TrimSpace(r.PostFormValue("name")),
		Email:          strings.TrimSpace(r.PostFormValue("email")),
		GrauParentesco: r.PostFormValue("relationship_degree"),
		RG:             r.PostFormValue("rg"),
		CPF:            r.PostFormValue("cpf"),
		Genero:         opcaoOuNone(r.PostFormValue("gender")),
	}
}

func (f formResponsavel) corpo() AtualizacaoResponsavel {
	return AtualizacaoResponsavel{
		Name:               f.Nome,
		Email:              f.Email,
		RelationshipDegree: f.GrauParentesco,
		RG:                 f.RG,
		CPF:                f.CPF,
		Gender:             api.Opcional(f.Genero),
	}
}
