package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t21arenapark/painel/internal/api"
)

func documento(t *testing.T, ctx context.Context, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestTotalPaginas(t *testing.T) {
	assert.Equal(t, 1, TotalPaginas(0, 10))
	assert.Equal(t, 1, TotalPaginas(10, 10))
	assert.Equal(t, 2, TotalPaginas(11, 10))
	assert.Equal(t, 3, TotalPaginas(25, 10))
	assert.Equal(t, 1, TotalPaginas(5, 0))
}

func TestPaginacao(t *testing.T) {
	link := func(i int) string { return fmt.Sprintf("/athletes?page=%d", i+1) }

	doc := documento(t, context.Background(), Paginacao(0, 10, 25, link))
	assert.Contains(t, doc.Text(), "Total de 25 item(s)")
	assert.Contains(t, doc.Text(), "Página 1 de 3")
	assert.Equal(t, 2, doc.Find(`[aria-disabled="true"]`).Length())
	ultima, _ := doc.Find(`a[title="Última página"]`).Attr("href")
	assert.Equal(t, "/athletes?page=3", ultima)

	doc = documento(t, context.Background(), Paginacao(2, 10, 25, link))
	assert.Contains(t, doc.Text(), "Página 3 de 3")
	anterior, _ := doc.Find(`a[title="Página anterior"]`).Attr("href")
	assert.Equal(t, "/athletes?page=2", anterior)
	assert.Equal(t, 0, doc.Find(`a[title="Próxima página"]`).Length())
}

type formLogin struct {
	Email string `form:"email" validate:"required,email" msg:"E-mail inválido"`
	Senha string `form:"password" validate:"min=6" msg:"Senha deve ter ao menos 6 caracteres"`
	Nome  string `form:"name" validate:"required"`
}

func TestValidar(t *testing.T) {
	erros := Validar(formLogin{Email: "x", Senha: "123"})
	assert.Equal(t, Erros{
		"email":    "E-mail inválido",
		"password": "Senha deve ter ao menos 6 caracteres",
		"name":     "Campo obrigatório",
	}, erros)

	assert.Nil(t, Validar(&formLogin{Email: "a@b.com", Senha: "123456", Nome: "A"}))
}

func TestFormulario(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{
		"name": {"Ana"}, CampoCSRFNome: {"tok"}, "tags": {"A", "B"},
	}.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, r.ParseForm())

	f := NovoFormulario(r, "criar")
	f.Erros = Erros{"name": "curto"}
	assert.Equal(t, "Ana", f.Valor("criar", "name", "x"))
	assert.Equal(t, "x", f.Valor("editar", "name", "x"))
	assert.Equal(t, "A;B", f.Valores["tags"])
	assert.NotContains(t, f.Valores, CampoCSRFNome)
	assert.Equal(t, "curto", f.Erro("criar", "name"))
	assert.True(t, f.Aberto("criar"))
	assert.False(t, f.Aberto("editar"))

	var nilForm *Formulario
	assert.Equal(t, "p", nilForm.Valor("a", "b", "p"))
}

func TestToastIdaEVolta(t *testing.T) {
	rec := httptest.NewRecorder()
	ToastDeSucesso(rec, "Salvo com sucesso!")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	rec2 := httptest.NewRecorder()
	var visto Toast
	Contexto(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		visto, ok = ToastAtual(r.Context())
		assert.True(t, ok)
	})).ServeHTTP(rec2, req)

	assert.Equal(t, Toast{Tipo: ToastSucesso, Mensagem: "Salvo com sucesso!"}, visto)
	assert.Equal(t, -1, rec2.Result().Cookies()[0].MaxAge)
}

func TestLayout(t *testing.T) {
	ctx := ComConta(context.Background(), Conta{Nome: "Ana <b>", Email: "ana@x.com", Iniciais: "AN"})
	corpo := Componente(func(ctx context.Context, h *HTML) { h.Raw(`<p id="c">oi</p>`) })

	doc := documento(t, ctx, Layout(Pagina{Titulo: "Atletas"}, corpo))
	assert.Equal(t, "Atletas | T21 Arena Park", doc.Find("title").Text())
	assert.Equal(t, "oi", doc.Find("main #c").Text())
	assert.Equal(t, "Ana <b>", doc.Find(".account-menu strong").Text())
	assert.Equal(t, 1, doc.Find(`form[action="/sign-out"]`).Length())
	assert.Equal(t, 0, doc.Find(`input[name="csrf_token"]`).Length())
}

func TestI18n(t *testing.T) {
	assert.Equal(t, "O+", TipoSanguineo("o_positive"))
	assert.Equal(t, "AB-", TipoSanguineo("AB_NEGATIVE"))
	assert.Equal(t, "Masculino", Genero("male"))
	assert.Equal(t, "Destro", Lateralidade("RIGHT"))
	assert.Equal(t, "Educação Física", Area("physical_education"))
	assert.Equal(t, "Inativo", StatusAtleta("inactive"))
	assert.Equal(t, "-", Genero(""))
}

func TestFalharEmMutacaoUsaMensagemDaAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/volunteers", nil)
	Falhar(rec, req, &api.Error{Status: 409, Message: "E-mail já cadastrado"}, "", "/mine")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/mine", rec.Header().Get("Location"))

	req2 := httptest.NewRequest(http.MethodGet, "/mine", nil)
	req2.AddCookie(rec.Result().Cookies()[0])
	t2, ok := ConsumirToast(httptest.NewRecorder(), req2)
	require.True(t, ok)
	assert.Equal(t, "E-mail já cadastrado", t2.Mensagem)
	assert.Equal(t, ToastErro, t2.Tipo)
}

func TestFalharEmGet(t *testing.T) {
	rec := httptest.NewRecorder()
	Falhar(rec, httptest.NewRequest(http.MethodGet, "/athletes/x", nil), &api.Error{Status: 404}, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Esse não é o nosso estádio.")

	rec = httptest.NewRecorder()
	Falhar(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("conexão recusada"), "", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Parece que o jogo está no intervalo.")
}
