package metricas

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var impressora = message.NewPrinter(language.BrazilianPortuguese)

// Numero formata no padrão pt-BR: 1.234 ou 12,5.
func Numero(v float64) string {
	return impressora.Sprint(number.Decimal(v, number.MaxFractionDigits(1)))
}

func Percentual(parte, total int) string {
	if total <= 0 {
		return "0%"
	}
	return impressora.Sprint(number.Percent(float64(parte)/float64(total), number.MaxFractionDigits(0)))
}

// Dia devolve dd/mm para as datas do gráfico semanal.
func Dia(s string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01")
		}
	}
	return s
}
