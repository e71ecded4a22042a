package web

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validador() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			nome := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if nome == "-" || nome == "" {
				return f.Name
			}
			return nome
		})
	})
	return validate
}

// Erros mapeia o nome do campo do formulário para a mensagem exibida.
type Erros map[string]string

// Validar aplica as tags validate de v. A mensagem vem da tag msg do campo
// ou, na falta dela, de um texto padrão por regra.
func Validar(v any) Erros {
	err := validador().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Erros{"_": MensagemInvalido}
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := Erros{}
	for _, fe := range verrs {
		if _, ja := out[fe.Field()]; ja {
			continue
		}
		msg := ""
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			msg = sf.Tag.Get("msg")
		}
		if msg == "" {
			msg = mensagemPadrao(fe)
		}
		out[fe.Field()] = msg
	}
	return out
}

const MensagemInvalido = "Valor inválido"

func mensagemPadrao(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "E-mail inválido"
	case "min":
		return "Deve ter ao menos " + fe.Param() + " caracteres"
	case "datetime":
		return "Data inválida"
	case "oneof":
		return "Opção inválida"
	}
	return MensagemInvalido
}

// Formulario carrega os valores enviados e os erros para re-renderizar um formulário.
type Formulario struct {
	Acao    string
	Valores map[string]string
	Erros   Erros
}

// NovoFormulario copia os campos enviados em r.
func NovoFormulario(r *http.Request, acao string) *Formulario {
	f := &Formulario{Acao: acao, Valores: map[string]string{}}
	for k, vs := range r.PostForm {
		if k == CampoCSRFNome || len(vs) == 0 {
			continue
		}
		f.Valores[k] = strings.Join(vs, ";")
	}
	return f
}

// Valor devolve o valor enviado, se o formulário for o desta ação, ou padrao.
func (f *Formulario) Valor(acao, campo, padrao string) string {
	if f == nil || f.Acao != acao {
		return padrao
	}
	if v, ok := f.Valores[campo]; ok {
		return v
	}
	return padrao
}

func (f *Formulario) Erro(acao, campo string) string {
	if f == nil || f.Acao != acao {
		return ""
	}
	return f.Erros[campo]
}

// Aberto informa se o formulário desta ação voltou com erros.
func (f *Formulario) Aberto(acao string) bool {
	return f != nil && f.Acao == acao && len(f.Erros) > 0
}

func erroCampo(h *HTML, msg string) {
	if msg != "" {
		h.Raw(`<span class="field-error" role="alert">`)
		h.Texto(msg)
		h.Raw(`</span>`)
	}
}

// CampoTexto renderiza label, input e mensagem de erro.
func CampoTexto(tipo, nome, rotulo, valor, erro string) templ.Component {
	return Componente(func(ctx context.Context, h *HTML) {
		h.Raw(`<label class="field"><span>`)
		h.Texto(rotulo)
		h.Raw(`</span><input type="`, Esc(tipo), `" name="`, Esc(nome), `" value="`, Esc(valor), `">`)
		erroCampo(h, erro)
		h.Raw(`</label>`)
	})
}

func CampoSelect(nome, rotulo string, opcoes []Opcao, selecionado, erro string) templ.Component {
	return Componente(func(ctx context.Context, h *HTML) {
		h.Raw(`<label class="field"><span>`)
		h.Texto(rotulo)
		h.Raw(`</span><select name="`, Esc(nome), `">`)
		for _, o := range opcoes {
			h.Raw(`<option value="`, Esc(o.Valor), `"`, Marcado(strings.EqualFold(o.Valor, selecionado), "selected"), `>`)
			h.Texto(o.Rotulo)
			h.Raw(`</option>`)
		}
		h.Raw(`</select>`)
		erroCampo(h, erro)
		h.Raw(`</label>`)
	})
}

// ValidarValor aplica uma tag validate a um valor avulso.
func ValidarValor(valor, tag string) bool {
	return validador().Var(valor, tag) == nil
}
