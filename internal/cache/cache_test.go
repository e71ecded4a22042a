package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type perfil struct {
	Nome  string
	Email string
	CPF   string
}

func TestBuscarDeduplicaChamadasConcorrentes(t *testing.T) {
	c := New(0)
	var chamadas int32
	liberar := make(chan struct{})

	fn := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&chamadas, 1)
		<-liberar
		return 42, nil
	}

	var wg sync.WaitGroup
	resultados := make([]int, 10)
	for i := range resultados {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Buscar(context.Background(), c, Chave{"metrics", "athletes"}, fn)
			assert.NoError(t, err)
			resultados[i] = v
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(liberar)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&chamadas))
	for _, v := range resultados {
		assert.Equal(t, 42, v)
	}

	v, err := Buscar(context.Background(), c, Chave{"metrics", "athletes"}, fn)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&chamadas))
}

func TestBuscarNaoHerdaCancelamentoDeQuemChegouPrimeiro(t *testing.T) {
	c := New(0)
	entrou := make(chan struct{})
	liberar := make(chan struct{})
	fn := func(ctx context.Context) (int, error) {
		close(entrou)
		<-liberar
		return 12, ctx.Err()
	}

	primeiro, cancelar := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = Buscar(primeiro, c, Chave{"metrics", "athletes"}, fn)
	}()
	<-entrou

	var v int
	var err error
	go func() {
		defer wg.Done()
		v, err = Buscar(context.Background(), c, Chave{"metrics", "athletes"}, fn)
	}()
	time.Sleep(20 * time.Millisecond)
	cancelar()
	close(liberar)
	wg.Wait()

	require.NoError(t, err)
	assert.Equal(t, 12, v)
	got, ok := Obter[int](c, Chave{"metrics", "athletes"})
	assert.True(t, ok)
	assert.Equal(t, 12, got)
}

func TestBuscarNaoGuardaErro(t *testing.T) {
	c := New(0)
	_, err := Buscar(context.Background(), c, Chave{"me"}, func(ctx context.Context) (string, error) {
		return "", errors.New("falhou")
	})
	assert.Error(t, err)
	_, ok := c.Obter(Chave{"me"})
	assert.False(t, ok)
}

func TestBuscarDescartaResultadoInvalidadoDuranteBusca(t *testing.T) {
	c := New(0)
	_, err := Buscar(context.Background(), c, Chave{"me"}, func(ctx context.Context) (string, error) {
		c.Invalidar(Chave{"me"})
		return "velho", nil
	})
	require.NoError(t, err)
	_, ok := c.Obter(Chave{"me"})
	assert.False(t, ok)
}

func TestTTL(t *testing.T) {
	c := New(time.Minute)
	agora := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.agora = func() time.Time { return agora }

	c.Definir(Chave{"orgs"}, "org")
	_, ok := c.Obter(Chave{"orgs"})
	assert.True(t, ok)

	agora = agora.Add(2 * time.Minute)
	_, ok = c.Obter(Chave{"orgs"})
	assert.False(t, ok)
}

func TestInvalidarPorPrefixo(t *testing.T) {
	c := New(0)
	c.Definir(Chave{"athletes", "0", "", "active"}, 1)
	c.Definir(Chave{"athletes", "1", "", "active"}, 2)
	c.Definir(Chave{"athlete", "x"}, 3)
	c.Definir(Chave{"volunteers"}, 4)

	c.Invalidar(Chave{"athletes"})

	assert.Empty(t, c.chaves(Chave{"athletes"}))
	assert.Len(t, c.chaves(Chave{"athlete"}), 1)
	assert.Len(t, c.chaves(nil), 2)

	c.Limpar()
	assert.Empty(t, c.chaves(nil))
}

func TestTemPrefixo(t *testing.T) {
	assert.True(t, Chave{"a", "b"}.TemPrefixo(Chave{"a"}))
	assert.True(t, Chave{"a"}.TemPrefixo(nil))
	assert.False(t, Chave{"a"}.TemPrefixo(Chave{"a", "b"}))
	assert.False(t, Chave{"ab"}.TemPrefixo(Chave{"a"}))
}

func TestExecutarOtimistaReverteSnapshotExato(t *testing.T) {
	c := New(0)
	antes := perfil{Nome: "Ana", Email: "ana@old.com", CPF: "123"}
	c.Definir(Chave{"profile"}, antes)

	m := Mutacao{
		Otimista: []Patch{Alterar(Chave{"profile"}, func(p perfil) perfil {
			p.Email = "ana@new.com"
			return p
		})},
		Invalidar: []Chave{{"profile"}},
	}

	err := c.Executar(context.Background(), m, func(ctx context.Context) error {
		atual, ok := Obter[perfil](c, Chave{"profile"})
		require.True(t, ok)
		assert.Equal(t, "ana@new.com", atual.Email)
		return errors.New("senha incorreta")
	})
	require.Error(t, err)

	depois, ok := Obter[perfil](c, Chave{"profile"})
	require.True(t, ok)
	assert.Equal(t, antes, depois)
}

func TestExecutarSucessoAplicaConfirmadaEInvalida(t *testing.T) {
	c := New(0)
	c.Definir(Chave{"athletes", "0"}, []string{"active", "active"})
	c.Definir(Chave{"athletes", "1"}, []string{"active"})
	c.Definir(Chave{"volunteers"}, "v")
	c.Definir(Chave{"me"}, "m")

	m := Mutacao{
		Confirmada: []Patch{Alterar(Chave{"athletes"}, func(s []string) []string {
			out := append([]string(nil), s...)
			out[0] = "inactive"
			return out
		})},
		Invalidar: []Chave{{"volunteers"}},
	}
	require.NoError(t, c.Executar(context.Background(), m, func(ctx context.Context) error { return nil }))

	p0, _ := Obter[[]string](c, Chave{"athletes", "0"})
	p1, _ := Obter[[]string](c, Chave{"athletes", "1"})
	assert.Equal(t, []string{"inactive", "active"}, p0)
	assert.Equal(t, []string{"inactive"}, p1)
	_, ok := c.Obter(Chave{"volunteers"})
	assert.False(t, ok)
	_, ok = c.Obter(Chave{"me"})
	assert.True(t, ok)
}

func TestExecutarFalhaNaoAplicaConfirmada(t *testing.T) {
	c := New(0)
	c.Definir(Chave{"volunteers"}, true)
	m := Mutacao{
		Confirmada: []Patch{Alterar(Chave{"volunteers"}, func(b bool) bool { return false })},
		Invalidar:  []Chave{{"volunteers"}},
	}
	err := c.Executar(context.Background(), m, func(ctx context.Context) error { return errors.New("x") })
	require.Error(t, err)
	v, ok := Obter[bool](c, Chave{"volunteers"})
	assert.True(t, ok)
	assert.True(t, v)
}

func TestPatchIgnoraOutroTipo(t *testing.T) {
	c := New(0)
	c.Definir(Chave{"profile"}, "string")
	err := c.Executar(context.Background(), Mutacao{
		Otimista: []Patch{Alterar(Chave{"profile"}, func(p perfil) perfil { return perfil{} })},
	}, func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	v, _ := c.Obter(Chave{"profile"})
	assert.Equal(t, "string", v)
}
