package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Chave identifica um recurso lógico, ex: {"athletes", "0", "", "active"}.
type Chave []string

func (k Chave) String() string {
	return strings.Join(k, "\x1f")
}

// TemPrefixo informa se k começa pelos mesmos segmentos de p.
func (k Chave) TemPrefixo(p Chave) bool {
	if len(p) > len(k) {
		return false
	}
	for i := range p {
		if k[i] != p[i] {
			return false
		}
	}
	return true
}

type entrada struct {
	chave Chave
	valor any
	em    time.Time
}

// Cache guarda respostas da API por chave. Seguro para uso concorrente.
type Cache struct {
	mu      sync.RWMutex
	itens   map[string]entrada
	geracao uint64
	ttl     time.Duration
	grupo   singleflight.Group
	agora   func() time.Time
}

// New cria um cache; ttl zero mantém as entradas até a invalidação.
func New(ttl time.Duration) *Cache {
	return &Cache{
		itens: make(map[string]entrada),
		ttl:   ttl,
		agora: time.Now,
	}
}

func (c *Cache) Obter(k Chave) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.itens[k.String()]
	if !ok || c.expirada(e) {
		return nil, false
	}
	return e.valor, true
}

func (c *Cache) Definir(k Chave, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.definir(k, v)
}

func (c *Cache) definir(k Chave, v any) {
	cp := append(Chave(nil), k...)
	c.itens[k.String()] = entrada{chave: cp, valor: v, em: c.agora()}
}

// Invalidar remove todas as entradas sob o prefixo.
func (c *Cache) Invalidar(prefixo Chave) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.geracao++
	for s, e := range c.itens {
		if e.chave.TemPrefixo(prefixo) {
			delete(c.itens, s)
		}
	}
}

// Limpar descarta tudo.
func (c *Cache) Limpar() {
	c.Invalidar(nil)
}

// chaves lista as chaves presentes sob o prefixo.
func (c *Cache) chaves(prefixo Chave) []Chave {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Chave
	for _, e := range c.itens {
		if e.chave.TemPrefixo(prefixo) {
			out = append(out, e.chave)
		}
	}
	return out
}

func (c *Cache) expirada(e entrada) bool {
	return c.ttl > 0 && c.agora().Sub(e.em) > c.ttl
}

// Obter devolve o valor tipado da chave, se existir.
func Obter[T any](c *Cache, k Chave) (T, bool) {
	var zero T
	v, ok := c.Obter(k)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Buscar devolve o valor em cache ou executa fn uma única vez por chave,
// mesmo com chamadas concorrentes, e guarda o resultado.
// O resultado não é guardado se houve invalidação durante a busca.
// fn não herda o cancelamento de ctx, pois outras chamadas podem estar
// esperando pelo mesmo resultado.
func Buscar[T any](ctx context.Context, c *Cache, k Chave, fn func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := Obter[T](c, k); ok {
		return v, nil
	}

	v, err, _ := c.grupo.Do(k.String(), func() (any, error) {
		c.mu.RLock()
		geracao := c.geracao
		c.mu.RUnlock()

		v, err := fn(context.WithoutCancel(ctx))
		if err != nil {
			return v, err
		}

		c.mu.Lock()
		if c.geracao == geracao {
			c.definir(k, v)
		}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: tipo inesperado para %v: %T", []string(k), v)
	}
	return t, nil
}
