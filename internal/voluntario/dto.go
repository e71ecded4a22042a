package voluntario

import (
	"net/http"
	"strings"
)

const AcaoCriar = "voluntario-criar"

// AcaoEditar identifica o formulário de edição de um voluntário.
func AcaoEditar(id string) string {
	return "voluntario-editar-" + id
}

type formNovo struct {
	Nome     string `form:"name" validate:"required" msg:"O nome é obrigatório"`
	Email    string `form:"email" validate:"required,email" msg:"E-mail inválido"`
	Senha    string `form:"password" validate:"min=6" msg:"Senha precisa ter no mínimo 6 caracteres"`
	Telefone string `form:"phone"`
	Area     string `form:"area" validate:"oneof=UNSPECIFIED PSYCHOLOGY PHYSIOTHERAPY NUTRITION NURSING PSYCHOPEDAGOGY PHYSICAL_EDUCATION" msg:"Selecione uma área"`
}

func lerFormNovo(r *http.Request) formNovo {
	return formNovo{
		Nome:     strings.TrimSpace(r.PostFormValue("name")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Senha:    r.PostFormValue("password"),
		Telefone: strings.TrimSpace(r.PostFormValue("phone")),
		Area:     strings.ToUpper(r.PostFormValue("area")),
	}
}

func (f formNovo) corpo() Novo {
	return Novo{Name: f.Nome, Email: f.Email, Password: f.Senha, Phone: f.Telefone, Area: f.Area}
}

type formEdicao struct {
	Nome string `form:"name" validate:"min=3" msg:"O nome do usuário precisa ter no mínimo 3 caracteres"`
	Area string `form:"area" validate:"oneof=UNSPECIFIED PSYCHOLOGY PHYSIOTHERAPY NUTRITION NURSING PSYCHOPEDAGOGY PHYSICAL_EDUCATION" msg:"Selecione uma área"`
}

func lerFormEdicao(r *http.Request) formEdicao {
	return formEdicao{
		Nome: strings.TrimSpace(r.PostFormValue("name")),
		Area: strings.ToUpper(r.PostFormValue("area")),
	}
}

func (f formEdicao) corpo() Atualizacao {
	return Atualizacao{Name: f.Nome, Area: f.Area}
}
