package web

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
)

// TotalPaginas é ceil(total/porPagina), nunca menor que 1.
func TotalPaginas(total, porPagina int) int {
	if porPagina <= 0 || total <= 0 {
		return 1
	}
	return (total + porPagina - 1) / porPagina
}

// Paginacao renderiza os controles de navegação; pageIndex começa em zero
// e url recebe o índice de destino.
func Paginacao(pageIndex, porPagina, total int, url func(pageIndex int) string) templ.Component {
	return Componente(func(ctx context.Context, h *HTML) {
		paginas := TotalPaginas(total, porPagina)

		h.Raw(`<div class="pagination"><div>Total de `, strconv.Itoa(total), ` item(s)</div>`)
		h.Raw(`<div><span>Página `, strconv.Itoa(pageIndex+1), ` de `, strconv.Itoa(paginas), `</span>`)

		botao := func(destino int, desabilitado bool, rotulo, simbolo string) {
			if desabilitado {
				h.Raw(`<span class="page-link" aria-disabled="true" title="`, rotulo, `">`, simbolo, `</span>`)
				return
			}
			h.Raw(`<a class="page-link" href="`, Esc(url(destino)), `" title="`, rotulo, `">`, simbolo, `</a>`)
		}
		inicio := pageIndex == 0
		fim := paginas <= pageIndex+1
		botao(0, inicio, "Primeira página", "&laquo;")
		botao(pageIndex-1, inicio, "Página anterior", "&lsaquo;")
		botao(pageIndex+1, fim, "Próxima página", "&rsaquo;")
		botao(paginas-1, fim, "Última página", "&raquo;")
		h.Raw(`</div></div>`)
	})
}
