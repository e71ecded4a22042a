package cache

import "context"

// Patch altera as entradas sob Prefixo. Entradas de outro tipo ficam intactas.
type Patch struct {
	Prefixo Chave
	aplicar func(v any) (any, bool)
}

// Alterar cria um patch tipado. fn deve devolver uma cópia e nunca mexer
// no valor recebido, que pode ser o snapshot de restauração.
func Alterar[T any](prefixo Chave, fn func(T) T) Patch {
	return Patch{
		Prefixo: prefixo,
		aplicar: func(v any) (any, bool) {
			t, ok := v.(T)
			if !ok {
				return v, false
			}
			return fn(t), true
		},
	}
}

// Mutacao descreve o efeito de uma escrita no cache:
// Otimista é aplicado antes da chamada e desfeito se ela falhar;
// Confirmada é aplicado após sucesso, seguido das invalidações.
type Mutacao struct {
	Otimista   []Patch
	Confirmada []Patch
	Invalidar  []Chave
}

// Executar aplica m em torno de fn. Em erro, toda entrada tocada pelos
// patches otimistas volta exatamente ao valor anterior.
func (c *Cache) Executar(ctx context.Context, m Mutacao, fn func(ctx context.Context) error) error {
	snapshot := c.aplicar(m.Otimista)

	if err := fn(ctx); err != nil {
		c.restaurar(snapshot)
		return err
	}

	c.aplicar(m.Confirmada)
	for _, k := range m.Invalidar {
		c.Invalidar(k)
	}
	return nil
}

func (c *Cache) aplicar(patches []Patch) map[string]entrada {
	if len(patches) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	anteriores := make(map[string]entrada)
	for _, p := range patches {
		for s, e := range c.itens {
			if !e.chave.TemPrefixo(p.Prefixo) {
				continue
			}
			novo, ok := p.aplicar(e.valor)
			if !ok {
				continue
			}
			if _, ja := anteriores[s]; !ja {
				anteriores[s] = e
			}
			c.itens[s] = entrada{chave: e.chave, valor: novo, em: e.em}
		}
	}
	return anteriores
}

func (c *Cache) restaurar(anteriores map[string]entrada) {
	if len(anteriores) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for s, e := range anteriores {
		c.itens[s] = e
	}
}
