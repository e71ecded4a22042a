package perfil

import (
	"net/http"
	"strings"

	"github.com/t21arenapark/painel/internal/api"
)

const (
	acaoDados = "dados"
	acaoEmail = "email"
	acaoSenha = "senha"
)

type formDados struct {
	Nome           string `form:"name" validate:"required" msg:"Nome não pode ser vazio"`
	CPF            string `form:"cpf" validate:"required" msg:"CPF não pode ser vazio"`
	Telefone       string `form:"phone"`
	DataNascimento string `form:"birthDate" validate:"omitempty,datetime=2006-01-02" msg:"Formato da data inválido"`
	Genero         string `form:"gender" validate:"oneof=MALE FEMALE none" msg:"Selecione uma opção válida"`
	Rua            string `form:"street"`
	Numero         string `form:"number"`
	Complemento    string `form:"complement"`
	Bairro         string `form:"neighborhood"`
	Cidade         string `form:"city"`
	UF             string `form:"uf" validate:"max=2" msg:"Use a sigla do estado"`
	CEP            string `form:"zipcode"`
	Pais           string `form:"country"`
}

func lerFormDados(r *http.Request) formDados {
	campo := func(nome string) string { return strings.TrimSpace(r.PostFormValue(nome)) }
	genero := campo("gender")
	if genero == "" {
		genero = "none"
	}
	return formDados{
		Nome:           campo("name"),
		CPF:            campo("cpf"),
		Telefone:       campo("phone"),
		DataNascimento: campo("birthDate"),
		Genero:         genero,
		Rua:            campo("street"),
		Numero:         campo("number"),
		Complemento:    campo("complement"),
		Bairro:         campo("neighborhood"),
		Cidade:         campo("city"),
		UF:             strings.ToUpper(campo("uf")),
		CEP:            campo("zipcode"),
		Pais:           campo("country"),
	}
}

// corpo monta PUT /me; o e-mail só muda pelo fluxo próprio e segue o atual.
func (f formDados) corpo(emailAtual string) Atualizacao {
	return Atualizacao{
		Name:      f.Nome,
		CPF:       f.CPF,
		Email:     emailAtual,
		Phone:     f.Telefone,
		BirthDate: f.DataNascimento,
		Gender:    api.Opcional(f.Genero),
		Address: Endereco{
			Street:       f.Rua,
			Number:       f.Numero,
			City:         f.Cidade,
			Zipcode:      f.CEP,
			Neighborhood: f.Bairro,
			Country:      f.Pais,
			UF:           f.UF,
			Complement:   f.Complemento,
		},
	}
}

type formEmail struct {
	Email      string `form:"email" validate:"required,email" msg:"E-mail inválido"`
	SenhaAtual string `form:"currentPassword" validate:"min=6" msg:"Senha deve ter ao menos 6 caracteres"`
}

type formSenha struct {
	SenhaAtual  string `form:"currentPassword" validate:"min=6" msg:"Senha deve ter ao menos 6 caracteres"`
	NovaSenha   string `form:"newPassword" validate:"min=6" msg:"A nova senha deve ter ao menos 6 caracteres"`
	Confirmacao string `form:"confirmPassword" validate:"eqfield=NovaSenha" msg:"As senhas não correspondem"`
}
