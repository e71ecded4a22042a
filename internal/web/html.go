package web

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// HTML escreve marcação acumulando o primeiro erro de escrita.
type HTML struct {
	w   io.Writer
	err error
}

// Raw escreve as partes sem escape.
func (h *HTML) Raw(partes ...string) {
	for _, p := range partes {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

// Texto escreve s com escape de HTML.
func (h *HTML) Texto(s string) {
	h.Raw(templ.EscapeString(s))
}

func (h *HTML) Textof(format string, args ...any) {
	h.Texto(fmt.Sprintf(format, args...))
}

func (h *HTML) Render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Componente adapta uma função de escrita a templ.Component.
func Componente(fn func(ctx context.Context, h *HTML)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &HTML{w: w}
		fn(ctx, h)
		return h.err
	})
}

// Esc escapa um valor para texto ou atributo.
func Esc(s string) string {
	return templ.EscapeString(s)
}

// Marcado devolve " checked" ou " selected" conforme cond.
func Marcado(cond bool, attr string) string {
	if cond {
		return " " + attr
	}
	return ""
}
