package organizacao

// Endereco vem opcional em GET /orgs.
type Endereco struct {
	ID           int    `json:"id"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Zipcode      string `json:"zipcode"`
	Complement   string `json:"complement"`
	Number       string `json:"number"`
	City         string `json:"city"`
	UF           string `json:"uf"`
	Country      string `json:"country"`
}

type Dono struct {
	Name string `json:"name"`
}

// Organizacao é a resposta de GET /orgs.
type Organizacao struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Domain          string    `json:"domain"`
	DefaultPassword string    `json:"default_password"`
	Address         *Endereco `json:"address"`
	Owner           Dono      `json:"owner"`
}

// AtualizacaoEndereco é o corpo de PUT /orgs.
type AtualizacaoEndereco struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	Zipcode      string `json:"zipcode"`
	Complement   string `json:"complement"`
	Number       string `json:"number"`
	City         string `json:"city"`
	UF           string `json:"uf"`
	Country      string `json:"country"`
}
