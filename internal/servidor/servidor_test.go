package servidor

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/t21arenapark/painel/internal/auth"
	"github.com/t21arenapark/painel/internal/config"
	"github.com/t21arenapark/painel/internal/emulador"
)

const segredoCookie = "segredo-de-teste"

type chamada struct {
	Metodo  string
	Caminho string
	Corpo   string
}

// gravador registra as chamadas que chegam ao emulador.
type gravador struct {
	mu       sync.Mutex
	chamadas []chamada
	next     http.Handler
}

func (g *gravador) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	corpo, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(corpo))
	g.mu.Lock()
	g.chamadas = append(g.chamadas, chamada{Metodo: r.Method, Caminho: r.URL.RequestURI(), Corpo: string(corpo)})
	g.mu.Unlock()
	g.next.ServeHTTP(w, r)
}

func (g *gravador) limpar() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.chamadas = nil
}

func (g *gravador) com(metodo string) []chamada {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []chamada
	for _, c := range g.chamadas {
		if c.Metodo == metodo {
			out = append(out, c)
		}
	}
	return out
}

type ambiente struct {
	db      *gorm.DB
	api     *httptest.Server
	painel  *httptest.Server
	chamou  *gravador
	cliente *http.Client
}

// novoAmbiente sobe o emulador com o seed e o painel apontando para ele.
func novoAmbiente(t *testing.T) *ambiente {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// cache compartilhado do sqlite em memória não aceita escrita concorrente
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, emulador.Migrar(db))
	require.NoError(t, emulador.Seed(db, time.Now()))

	g := &gravador{next: emulador.NewHandler(db, emulador.NewEmissor("jwt-de-teste")).Rotas()}
	apiSrv := httptest.NewServer(g)
	t.Cleanup(apiSrv.Close)

	cfg := &config.Config{
		APIURL:       apiSrv.URL,
		APITimeout:   5 * time.Second,
		CookieSecret: segredoCookie,
		CacheTTL:     time.Minute,
	}
	painel := httptest.NewServer(New(cfg))
	t.Cleanup(painel.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	cliente := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &ambiente{db: db, api: apiSrv, painel: painel, chamou: g, cliente: cliente}
}

func (a *ambiente) get(t *testing.T, caminho string) *http.Response {
	t.Helper()
	resp, err := a.cliente.Get(a.painel.URL + caminho)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (a *ambiente) post(t *testing.T, caminho string, valores url.Values) *http.Response {
	t.Helper()
	resp, err := a.cliente.PostForm(a.painel.URL+caminho, valores)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (a *ambiente) pagina(t *testing.T, caminho string) *goquery.Document {
	t.Helper()
	resp := a.get(t, caminho)
	require.Equal(t, http.StatusOK, resp.StatusCode, caminho)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

func (a *ambiente) entrar(t *testing.T) {
	t.Helper()
	resp := a.post(t, "/sign-in", url.Values{"email": {emulador.EmailAdministrador}, "password": {emulador.SenhaSeed}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}

// valoresDe monta o corpo que o navegador enviaria para o formulário.
func valoresDe(form *goquery.Selection) url.Values {
	v := url.Values{}
	form.Find("input[name]").Each(func(_ int, s *goquery.Selection) {
		tipo := s.AttrOr("type", "text")
		if (tipo == "radio" || tipo == "checkbox") && s.AttrOr("checked", "-") == "-" {
			return
		}
		v.Add(s.AttrOr("name", ""), s.AttrOr("value", ""))
	})
	form.Find("textarea[name]").Each(func(_ int, s *goquery.Selection) {
		v.Add(s.AttrOr("name", ""), s.Text())
	})
	form.Find("select[name]").Each(func(_ int, s *goquery.Selection) {
		v.Add(s.AttrOr("name", ""), s.Find("option[selected]").AttrOr("value", ""))
	})
	return v
}

func TestEntrarEDashboard(t *testing.T) {
	a := novoAmbiente(t)
	a.entrar(t)
	a.chamou.limpar()

	doc := a.pagina(t, "/")
	cartoes := doc.Find(".metric-card")
	require.Equal(t, 4, cartoes.Length())
	assert.Equal(t, "Total de atletas", cartoes.Eq(0).Find("h3").Text())
	assert.Equal(t, "12", cartoes.Eq(0).Find(".amount").Text())
	assert.Equal(t, "8", cartoes.Eq(2).Find(".amount").Text())
	assert.Equal(t, 7, doc.Find(".chart.week li").Length())

	var caminhos []string
	for _, c := range a.chamou.com(http.MethodGet) {
		caminhos = append(caminhos, c.Caminho)
	}
	for _, c := range []string{
		"/metrics/athletes-amount",
		"/metrics/anamnesis-amount",
		"/metrics/guardians-amount",
		"/metrics/average-age-amount",
	} {
		assert.Contains(t, caminhos, c)
	}
}

func TestFiltrarAtletas(t *testing.T) {
	a := novoAmbiente(t)
	a.entrar(t)

	doc := a.pagina(t, "/athletes?page=1&status=inactive&athleteName=Silva")
	var nomes []string
	doc.Find("tr[data-athlete-id] td:first-child a").Each(func(_ int, s *goquery.Selection) {
		nomes = append(nomes, s.Text())
	})
	assert.Equal(t, []string{"Ana Silva", "Carla Souza Silva"}, nomes)
	assert.Equal(t, 2, doc.Find("td.status-inactive").Length())
	assert.Equal(t, "inactive", doc.Find("select[name=status] option[selected]").AttrOr("value", ""))

	limpar, ok := doc.Find("form.filters a.button").Attr("href")
	require.True(t, ok)
	doc = a.pagina(t, limpar)
	assert.Equal(t, 10, doc.Find("tr[data-athlete-id]").Length())
	assert.Equal(t, 10, doc.Find("td.status-active").Length())
	assert.Equal(t, "active", doc.Find("select[name=status] option[selected]").AttrOr("value", ""))
	assert.Empty(t, doc.Find("input[name=athleteName]").AttrOr("value", "x"))
	assert.Contains(t, doc.Find(".pagination").Text(), "Página 1 de 1")
}

func TestResponderAnamnese(t *testing.T) {
	a := novoAmbiente(t)
	a.entrar(t)

	var atleta emulador.Atleta
	require.NoError(t, a.db.Preload("Anamnese").First(&atleta, "name = ?", "Ana Silva").Error)
	id := atleta.Anamnese.ID

	doc := a.pagina(t, "/anamnesis/"+id)
	form := doc.Find("form[action='/anamnesis/" + id + "/section/2']")
	require.Equal(t, 1, form.Length())
	assert.Equal(t, "Nenhuma cirurgia.", form.Find("textarea[name='q.7']").Text())

	valores := valoresDe(form)
	valores.Set("q.7", "Apendicectomia em 2020.")
	a.chamou.limpar()

	resp := a.post(t, "/anamnesis/"+id+"/section/2", valores)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/anamnesis/"+id+"#section-2", resp.Header.Get("Location"))

	patches := a.chamou.com(http.MethodPatch)
	require.Len(t, patches, 1)
	assert.Equal(t, "/anamnesis/"+id+"/section/2/question/7/answer", patches[0].Caminho)
	var corpo map[string]any
	require.NoError(t, json.Unmarshal([]byte(patches[0].Corpo), &corpo))
	assert.Equal(t, "Apendicectomia em 2020.", corpo["value"])

	a.chamou.limpar()
	doc = a.pagina(t, "/anamnesis/"+id)
	assert.Equal(t, "Dados da anamnese do usuário atualizados com sucesso!", strings.TrimSpace(doc.Find(".toast-sucesso").Text()))
	assert.Equal(t, "Apendicectomia em 2020.", doc.Find("textarea[name='q.7']").Text())

	// o cache foi invalidado: a tela buscou a anamnese de novo
	var buscas int
	for _, c := range a.chamou.com(http.MethodGet) {
		if c.Caminho == "/anamnesis/"+id {
			buscas++
		}
	}
	assert.Equal(t, 1, buscas)
}

func TestSemSessaoVaiParaLogin(t *testing.T) {
	a := novoAmbiente(t)

	resp := a.get(t, "/")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/sign-in?logout=true", resp.Header.Get("Location"))
}

func TestTokenRevogadoVaiParaLogin(t *testing.T) {
	a := novoAmbiente(t)

	// emite o token direto na API e grava o cookie como o painel faria
	corpo, _ := json.Marshal(map[string]string{"email": emulador.EmailAdministrador, "password": emulador.SenhaSeed})
	resp, err := http.Post(a.api.URL+"/sessions", "application/json", bytes.NewReader(corpo))
	require.NoError(t, err)
	var sessao map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sessao))
	resp.Body.Close()

	rec := httptest.NewRecorder()
	require.NoError(t, auth.NewCookies(auth.NewSelador(segredoCookie), false).Gravar(rec, sessao["token"]))
	u, _ := url.Parse(a.painel.URL)
	a.cliente.Jar.SetCookies(u, rec.Result().Cookies())

	req, _ := http.NewRequest(http.MethodPost, a.api.URL+"/sign-out", nil)
	req.Header.Set("Authorization", "Bearer "+sessao["token"])
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = a.get(t, "/athletes")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/sign-in?logout=true", resp.Header.Get("Location"))

	var limpo bool
	for _, ck := range resp.Cookies() {
		if ck.Name == auth.NomeCookie && ck.MaxAge < 0 {
			limpo = true
		}
	}
	assert.True(t, limpo)
}

func TestPaginaNaoEncontrada(t *testing.T) {
	a := novoAmbiente(t)

	resp := a.get(t, "/nao-existe")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, doc.Text(), "Esse não é o nosso estádio.")
}

func TestRecuperarPanic(t *testing.T) {
	h := Recuperar(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("quebrou")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tivemos um erro no servidor interno.")
}

func TestCSRFSemToken(t *testing.T) {
	chamado := false
	h := CSRF(strings.Repeat("k", 32), false)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		chamado = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/athletes", strings.NewReader("name=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/athletes")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, chamado)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/athletes", rec.Header().Get("Location"))

	var toast bool
	for _, ck := range rec.Result().Cookies() {
		toast = toast || ck.Name == "toast"
	}
	assert.True(t, toast)
}

func TestCSRFDesligadoSemChave(t *testing.T) {
	chamado := false
	h := CSRF("", false)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { chamado = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	assert.True(t, chamado)
}

func TestRegistrarRequisicoesGuardaStatus(t *testing.T) {
	h := RegistrarRequisicoes(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
