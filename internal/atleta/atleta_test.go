package atleta

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/t21arenapark/painel/internal/api"
	"github.com/t21arenapark/painel/internal/cache"
	"github.com/t21arenapark/painel/internal/web"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) Listar(ctx context.Context, f Filtro) (Pagina, error) {
	args := m.Called(f)
	return args.Get(0).(Pagina), args.Error(1)
}

func (m *repoMock) BuscarPorID(ctx context.Context, id string) (Perfil, error) {
	args := m.Called(id)
	return args.Get(0).(Perfil), args.Error(1)
}

func (m *repoMock) Criar(ctx context.Context, novo NovoAtleta) error {
	return m.Called(novo).Error(0)
}

func (m *repoMock) Atualizar(ctx context.Context, id string, dados Atualizacao) error {
	return m.Called(id, dados).Error(0)
}

func (m *repoMock) AlternarStatus(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

func (m *repoMock) AtualizarResponsavel(ctx context.Context, id string, dados AtualizacaoResponsavel) error {
	return m.Called(id, dados).Error(0)
}

func paginaDeTeste() Pagina {
	return Pagina{
		Athletes: []Item{
			{ID: "a1", Name: "Ana", Age: 12, Status: StatusAtivo, Gender: "FEMALE", Handedness: "RIGHT", BloodType: "O_POSITIVE"},
			{ID: "a2", Name: "Bruno", Age: 15, Status: StatusAtivo},
		},
		Meta: Meta{PageIndex: 0, PerPage: 10, TotalCount: 2},
	}
}

func TestFiltroDe(t *testing.T) {
	f := FiltroDe(url.Values{})
	assert.Equal(t, Filtro{PageIndex: 0, Status: StatusAtivo}, f)

	f = FiltroDe(url.Values{"page": {"3"}, "athleteName": {"ana"}, "status": {"all"}})
	assert.Equal(t, 2, f.PageIndex)
	assert.Equal(t, cache.Chave{"athletes", "2", "ana", "all"}, f.Chave())
	assert.Equal(t, "2", f.Query().Get("pageIndex"))
	assert.Equal(t, "/athletes?athleteName=ana&page=2&status=all", f.URL(1))

	assert.Equal(t, 0, FiltroDe(url.Values{"page": {"abc"}}).PageIndex)
}

func TestMetaUltimaPagina(t *testing.T) {
	assert.Equal(t, 1, Meta{PerPage: 10}.UltimaPagina())
	assert.Equal(t, 3, Meta{PerPage: 10, TotalCount: 21}.UltimaPagina())
}

func TestAlternarStatusCorrigeListasEmCache(t *testing.T) {
	repo := &repoMock{}
	f := Filtro{Status: StatusAtivo}
	repo.On("Listar", f).Return(paginaDeTeste(), nil).Once()
	repo.On("AlternarStatus", "a1").Return(nil).Once()

	s := NewServico(repo)
	c := cache.New(0)
	ctx := context.Background()

	_, err := s.Listar(ctx, c, f)
	require.NoError(t, err)
	require.NoError(t, s.AlternarStatus(ctx, c, "a1"))

	p, ok := cache.Obter[Pagina](c, f.Chave())
	require.True(t, ok)
	assert.Equal(t, StatusInativo, p.Athletes[0].Status)
	assert.Equal(t, StatusAtivo, p.Athletes[1].Status)
	assert.False(t, s.Pendente("a1"))
	repo.AssertExpectations(t)
}

func TestAlternarStatusComFalhaMantemCache(t *testing.T) {
	repo := &repoMock{}
	f := Filtro{Status: StatusAtivo}
	repo.On("Listar", f).Return(paginaDeTeste(), nil).Once()
	repo.On("AlternarStatus", "a1").Return(&api.Error{Status: 500, Message: "falhou"}).Once()

	s := NewServico(repo)
	c := cache.New(0)
	ctx := context.Background()
	_, err := s.Listar(ctx, c, f)
	require.NoError(t, err)

	assert.Error(t, s.AlternarStatus(ctx, c, "a1"))
	p, ok := cache.Obter[Pagina](c, f.Chave())
	require.True(t, ok)
	assert.Equal(t, StatusAtivo, p.Athletes[0].Status)
}

func TestAlternarStatusRecusaChamadaConcorrente(t *testing.T) {
	repo := &repoMock{}
	liberar := make(chan struct{})
	entrou := make(chan struct{})
	repo.On("AlternarStatus", "a1").Run(func(mock.Arguments) {
		close(entrou)
		<-liberar
	}).Return(nil).Once()

	s := NewServico(repo)
	c := cache.New(0)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, s.AlternarStatus(context.Background(), c, "a1"))
	}()
	<-entrou

	assert.True(t, s.Pendente("a1"))
	assert.ErrorIs(t, s.AlternarStatus(context.Background(), c, "a1"), ErrAlteracaoPendente)
	close(liberar)
	wg.Wait()

	assert.False(t, s.Pendente("a1"))
	repo.AssertNumberOfCalls(t, "AlternarStatus", 1)
}

func roteador(h *Handler) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/athletes", h.Listar).Methods(http.MethodGet)
	r.HandleFunc("/athletes", h.Criar).Methods(http.MethodPost)
	r.HandleFunc("/athletes/{id}", h.Detalhe).Methods(http.MethodGet)
	r.HandleFunc("/athletes/{id}", h.Atualizar).Methods(http.MethodPost)
	r.HandleFunc("/athletes/{id}/status", h.AlternarStatus).Methods(http.MethodPost)
	r.HandleFunc("/athletes/{id}/guardian", h.AtualizarResponsavel).Methods(http.MethodPost)
	return r
}

func postar(h http.Handler, caminho string, valores url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, caminho, strings.NewReader(valores.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func toastDe(t *testing.T, rec *httptest.ResponseRecorder) web.Toast {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range rec.Result().Cookies() {
		req.AddCookie(ck)
	}
	toast, ok := web.ConsumirToast(httptest.NewRecorder(), req)
	require.True(t, ok)
	return toast
}

func TestListarRenderizaTabela(t *testing.T) {
	repo := &repoMock{}
	repo.On("Listar", Filtro{Status: StatusAtivo}).Return(paginaDeTeste(), nil)

	rec := httptest.NewRecorder()
	roteador(NewHandler(repo)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/athletes", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	linhas := doc.Find("tbody tr[data-athlete-id]")
	assert.Equal(t, 2, linhas.Length())
	assert.Contains(t, linhas.First().Text(), "Feminino")
	assert.Contains(t, linhas.First().Text(), "Destro")
	assert.Contains(t, doc.Text(), "Total de 2 item(s)")
}

func TestListarVazio(t *testing.T) {
	repo := &repoMock{}
	repo.On("Listar", mock.Anything).Return(Pagina{Meta: Meta{PerPage: 10}}, nil)

	rec := httptest.NewRecorder()
	roteador(NewHandler(repo)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/athletes?athleteName=zzz", nil))
	assert.Contains(t, rec.Body.String(), "Nenhum atleta encontrado")
}

func TestCriarComErroDeValidacao(t *testing.T) {
	repo := &repoMock{}
	repo.On("Listar", mock.Anything).Return(paginaDeTeste(), nil)

	rec := postar(roteador(NewHandler(repo)), "/athletes", url.Values{"name": {""}, "birthDate": {"15/01/2010"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "O nome é obrigatório")
	assert.Contains(t, rec.Body.String(), "Formato da data inválido")
	repo.AssertNotCalled(t, "Criar", mock.Anything)
}

func TestCriarEnviaNoneLiteral(t *testing.T) {
	repo := &repoMock{}
	repo.On("Criar", NovoAtleta{
		Name: "Carla", BirthDate: "2010-01-15", BloodType: "none", Gender: "FEMALE",
		GuardianName: "Marta", Handedness: "none", Status: true,
	}).Return(nil).Once()

	rec := postar(roteador(NewHandler(repo)), "/athletes", url.Values{
		"name": {"Carla"}, "birthDate": {"2010-01-15"}, "gender": {"FEMALE"}, "guardianName": {"Marta"},
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/athletes", rec.Header().Get("Location"))
	assert.Equal(t, "Atleta cadastrado com sucesso!", toastDe(t, rec).Mensagem)
	repo.AssertExpectations(t)
}

func TestAtualizarConverteNoneEmNulo(t *testing.T) {
	repo := &repoMock{}
	repo.On("Atualizar", "a1", mock.MatchedBy(func(d Atualizacao) bool {
		return d.Name == "Ana" && d.Gender == nil && d.Handedness != nil && *d.Handedness == "LEFT"
	})).Return(nil).Once()

	rec := postar(roteador(NewHandler(repo)), "/athletes/a1", url.Values{
		"name": {"Ana"}, "birthDate": {"2011-02-03"}, "gender": {"none"}, "handedness": {"LEFT"}, "bloodType": {"none"},
	})
	assert.Equal(t, "/athletes/a1", rec.Header().Get("Location"))
	assert.Equal(t, "Os dados do atleta foram atualizados com sucesso.", toastDe(t, rec).Mensagem)
	repo.AssertExpectations(t)
}

func TestAlternarStatusHandler(t *testing.T) {
	repo := &repoMock{}
	repo.On("AlternarStatus", "a1").Return(nil).Once()
	repo.On("AlternarStatus", "a2").Return(errors.New("timeout")).Once()
	h := roteador(NewHandler(repo))

	rec := postar(h, "/athletes/a1/status", url.Values{"name": {"Ana"}, "redirect": {"/athletes?page=2"}})
	assert.Equal(t, "/athletes?page=2", rec.Header().Get("Location"))
	assert.Equal(t, "O status do Ana atualizado com sucesso!", toastDe(t, rec).Mensagem)

	rec = postar(h, "/athletes/a2/status", url.Values{"name": {"Bruno"}, "redirect": {"https://evil.example"}})
	assert.Equal(t, "/athletes", rec.Header().Get("Location"))
	toast := toastDe(t, rec)
	assert.Equal(t, web.ToastErro, toast.Tipo)
	assert.Equal(t, "Erro ao atualizar o status do atleta", toast.Mensagem)
}

func TestDetalheNaoEncontrado(t *testing.T) {
	repo := &repoMock{}
	repo.On("BuscarPorID", "x").Return(Perfil{}, &api.Error{Status: http.StatusNotFound}).Once()

	rec := httptest.NewRecorder()
	roteador(NewHandler(repo)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/athletes/x", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDetalheMostraResponsavelEAnamnese(t *testing.T) {
	repo := &repoMock{}
	repo.On("BuscarPorID", "a1").Return(Perfil{
		ID: "a1", Name: "Ana Lima", Status: StatusAtivo, Initials: "AL", BirthDate: "2011-02-03T00:00:00.000Z",
		Guardian:  &Responsavel{ID: "g1", Name: "Marta", Gender: "FEMALE"},
		Anamnesis: &ReferenciaAnamnese{ID: "an1"},
	}, nil)

	rec := httptest.NewRecorder()
	roteador(NewHandler(repo)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/athletes/a1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	href, _ := doc.Find(".anamnesis a").Attr("href")
	assert.Equal(t, "/anamnesis/an1", href)
	id, _ := doc.Find(`input[name="guardianId"]`).Attr("value")
	assert.Equal(t, "g1", id)
	data, _ := doc.Find(`form[action="/athletes/a1"] input[name="birthDate"]`).Attr("value")
	assert.Equal(t, "2011-02-03", data)
}

func TestAtualizarResponsavelValidaEmail(t *testing.T) {
	repo := &repoMock{}
	repo.On("BuscarPorID", "a1").Return(Perfil{ID: "a1", Guardian: &Responsavel{ID: "g1"}}, nil)
	repo.On("AtualizarResponsavel", "g1", mock.Anything).Return(nil).Once()
	h := roteador(NewHandler(repo))

	rec := postar(h, "/athletes/a1/guardian", url.Values{"guardianId": {"g1"}, "email": {"nao-e-email"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "E-mail inválido")

	rec = postar(h, "/athletes/a1/guardian", url.Values{"guardianId": {"g1"}, "name": {"Marta"}, "email": {"m@x.com"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "Os dados do responsável foram atualizados com sucesso.", toastDe(t, rec).Mensagem)
	repo.AssertExpectations(t)
}
