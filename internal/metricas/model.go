package metricas

type Quantidade struct {
	Amount float64 `json:"amount"`
}

type PorGenero struct {
	Gender string `json:"gender"`
	Amount int    `json:"amount"`
}

type PorDia struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Painel reúne tudo que o dashboard mostra.
type Painel struct {
	Atletas      Quantidade
	Anamneses    Quantidade
	Responsaveis Quantidade
	IdadeMedia   Quantidade
	Generos      []PorGenero
	UltimaSemana []PorDia
}
