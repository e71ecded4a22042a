package sessao

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t21arenapark/painel/internal/api"
	"github.com/t21arenapark/painel/internal/auth"
)

type verificadorFake struct {
	VerificarFunc func(ctx context.Context) (bool, error)
	chamadas      int32
}

func (v *verificadorFake) Verificar(ctx context.Context) (bool, error) {
	atomic.AddInt32(&v.chamadas, 1)
	return v.VerificarFunc(ctx)
}

// contador conta quantas vezes o cabeçalho foi escrito.
type contador struct {
	*httptest.ResponseRecorder
	escritas int32
}

func (c *contador) WriteHeader(code int) {
	atomic.AddInt32(&c.escritas, 1)
	c.ResponseRecorder.WriteHeader(code)
}

func novoGerenciador(v Verificador) (*Gerenciador, *auth.Cookies) {
	cookies := auth.NewCookies(auth.NewSelador("teste"), false)
	return NewGerenciador(v, cookies, 0), cookies
}

func requisicaoCom(t *testing.T, cookies *auth.Cookies, token string) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, cookies.Gravar(rec, token))
	req := httptest.NewRequest(http.MethodGet, "/athletes", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	return req
}

func jwtCom(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}).
		SignedString([]byte("x"))
	require.NoError(t, err)
	return s
}

func TestProtegerSemCookieRedireciona(t *testing.T) {
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) { return true, nil }}
	g, _ := novoGerenciador(v)

	rec := httptest.NewRecorder()
	g.Proteger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("não deveria chegar ao handler")
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DestinoLogout, rec.Header().Get("Location"))
	assert.Equal(t, int32(0), atomic.LoadInt32(&v.chamadas))
}

func TestProtegerTokenExpiradoNaoChamaAPI(t *testing.T) {
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) { return true, nil }}
	g, cookies := novoGerenciador(v)

	rec := httptest.NewRecorder()
	req := requisicaoCom(t, cookies, jwtCom(t, time.Now().Add(-time.Hour)))
	g.Proteger(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, DestinoLogout, rec.Header().Get("Location"))
	assert.Equal(t, int32(0), atomic.LoadInt32(&v.chamadas))
}

func TestProtegerVerificaUmaVezPorSessao(t *testing.T) {
	liberar := make(chan struct{})
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) {
		assert.Equal(t, "tok", api.TokenDe(ctx))
		<-liberar
		return true, nil
	}}
	g, cookies := novoGerenciador(v)

	var passaram int32
	h := g.Proteger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := SessaoDe(r.Context())
		if assert.NotNil(t, s) {
			assert.Equal(t, Autenticado, s.Estado())
		}
		assert.Equal(t, "tok", api.TokenDe(r.Context()))
		atomic.AddInt32(&passaram, 1)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.ServeHTTP(httptest.NewRecorder(), requisicaoCom(t, cookies, "tok"))
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(liberar)
	wg.Wait()

	h.ServeHTTP(httptest.NewRecorder(), requisicaoCom(t, cookies, "tok"))

	assert.Equal(t, int32(6), atomic.LoadInt32(&passaram))
	assert.Equal(t, int32(1), atomic.LoadInt32(&v.chamadas))
	assert.Equal(t, 1, g.Ativas())
}

func TestProtegerNaoAutenticadoEncerra(t *testing.T) {
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) { return false, nil }}
	g, cookies := novoGerenciador(v)

	rec := httptest.NewRecorder()
	g.Proteger(http.NotFoundHandler()).ServeHTTP(rec, requisicaoCom(t, cookies, "tok"))

	assert.Equal(t, DestinoLogout, rec.Header().Get("Location"))
	assert.Equal(t, 0, g.Ativas())
	ck := rec.Result().Cookies()
	require.Len(t, ck, 1)
	assert.Equal(t, -1, ck[0].MaxAge)
}

func TestVerificacaoCanceladaNaoDerrubaOutraRequisicao(t *testing.T) {
	entrou := make(chan struct{})
	liberar := make(chan struct{})
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) {
		close(entrou)
		<-liberar
		return ctx.Err() == nil, ctx.Err()
	}}
	g, cookies := novoGerenciador(v)
	h := g.Proteger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	ctx, cancelar := context.WithCancel(context.Background())
	primeira := requisicaoCom(t, cookies, "tok").WithContext(ctx)
	segunda := requisicaoCom(t, cookies, "tok")
	recs := []*httptest.ResponseRecorder{httptest.NewRecorder(), httptest.NewRecorder()}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		h.ServeHTTP(recs[0], primeira)
	}()
	<-entrou
	go func() {
		defer wg.Done()
		h.ServeHTTP(recs[1], segunda)
	}()
	time.Sleep(20 * time.Millisecond)
	cancelar()
	close(liberar)
	wg.Wait()

	assert.Equal(t, http.StatusNoContent, recs[1].Code)
	assert.Empty(t, recs[1].Result().Cookies())
	assert.Equal(t, int32(1), atomic.LoadInt32(&v.chamadas))
	assert.Equal(t, 1, g.Ativas())
}

func TestFalhaDeRedeNaVerificacaoMantemSessao(t *testing.T) {
	falhar := true
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) {
		if falhar {
			return false, errors.New("connection refused")
		}
		return true, nil
	}}
	g, cookies := novoGerenciador(v)
	h := g.Proteger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requisicaoCom(t, cookies, "tok"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, Carregando, g.Obter("tok").Estado())

	falhar = false
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requisicaoCom(t, cookies, "tok"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int32(2), atomic.LoadInt32(&v.chamadas))
}

func TestVerificacaoComTokenRecusadoEncerra(t *testing.T) {
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) {
		return false, &api.Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED"}
	}}
	g, cookies := novoGerenciador(v)

	rec := httptest.NewRecorder()
	g.Proteger(http.NotFoundHandler()).ServeHTTP(rec, requisicaoCom(t, cookies, "tok"))

	assert.Equal(t, DestinoLogout, rec.Header().Get("Location"))
	assert.Equal(t, 0, g.Ativas())
}

func TestVarios401RedirecionamUmaVez(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/verify-auth" {
			_, _ = w.Write([]byte(`{"authenticated":true}`))
			return
		}
		time.Sleep(5 * time.Millisecond)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"Token inválido"}`))
	}))
	defer upstream.Close()

	client := api.NewClient(upstream.URL, api.WithSessaoInvalida(AoSessaoInvalida))
	g, cookies := novoGerenciador(auth.NewRepository(client))

	h := g.Proteger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var wg sync.WaitGroup
		for i := 0; i < 6; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := client.Get(r.Context(), "/metrics/athletes-amount", nil, nil)
				assert.True(t, api.SessaoInvalida(err))
			}()
		}
		wg.Wait()
		if Redirecionado(r.Context()) {
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := &contador{ResponseRecorder: httptest.NewRecorder()}
	h.ServeHTTP(rec, requisicaoCom(t, cookies, "tok"))

	assert.Equal(t, int32(1), atomic.LoadInt32(&rec.escritas))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DestinoLogout, rec.Header().Get("Location"))
	assert.Equal(t, 0, g.Ativas())
}

func TestDesviarForaDeRotaProtegida(t *testing.T) {
	assert.False(t, Desviar(context.Background()))
	assert.False(t, Redirecionado(context.Background()))
	assert.NotNil(t, CacheDe(context.Background()))
}

func TestPodar(t *testing.T) {
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) { return true, nil }}
	g, _ := novoGerenciador(v)
	agora := time.Now()
	g.agora = func() time.Time { return agora }

	g.Obter("a")
	agora = agora.Add(2 * time.Hour)
	g.Obter("b")

	assert.Equal(t, 1, g.Podar(time.Hour))
	assert.Equal(t, 1, g.Ativas())
}

func TestSairLimpaCookieESessao(t *testing.T) {
	v := &verificadorFake{VerificarFunc: func(ctx context.Context) (bool, error) { return true, nil }}
	g, cookies := novoGerenciador(v)
	req := requisicaoCom(t, cookies, "tok")
	g.Obter("tok")

	rec := httptest.NewRecorder()
	g.Sair(rec, req)
	assert.Equal(t, 0, g.Ativas())
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}
