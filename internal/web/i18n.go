package web

import "strings"

// A API usa minúsculas nas listas e maiúsculas nos detalhes; as chaves aqui são maiúsculas.
var (
	generos = map[string]string{
		"MALE":   "Masculino",
		"FEMALE": "Feminino",
	}
	lateralidades = map[string]string{
		"LEFT":  "Canhoto",
		"RIGHT": "Destro",
	}
	tiposSanguineos = map[string]string{
		"O_POSITIVE":  "O+",
		"O_NEGATIVE":  "O-",
		"A_POSITIVE":  "A+",
		"A_NEGATIVE":  "A-",
		"B_POSITIVE":  "B+",
		"B_NEGATIVE":  "B-",
		"AB_POSITIVE": "AB+",
		"AB_NEGATIVE": "AB-",
	}
	areas = map[string]string{
		"UNSPECIFIED":        "Não especificado",
		"PSYCHOLOGY":         "Psicologia",
		"PHYSIOTHERAPY":      "Fisioterapia",
		"NUTRITION":          "Nutrição",
		"NURSING":            "Enfermagem",
		"PSYCHOPEDAGOGY":     "Psicopedagogia",
		"PHYSICAL_EDUCATION": "Educação Física",
	}
	statusAtleta = map[string]string{
		"ACTIVE":   "Ativo",
		"INACTIVE": "Inativo",
	}
	papeis = map[string]string{
		"ADMINISTRATOR": "Administrador",
		"VOLUNTEER":     "Voluntário",
	}
)

func traduzir(m map[string]string, v string) string {
	if t, ok := m[strings.ToUpper(v)]; ok {
		return t
	}
	if v == "" {
		return "-"
	}
	return v
}

func Genero(v string) string        { return traduzir(generos, v) }
func Lateralidade(v string) string  { return traduzir(lateralidades, v) }
func TipoSanguineo(v string) string { return traduzir(tiposSanguineos, v) }
func Area(v string) string          { return traduzir(areas, v) }
func StatusAtleta(v string) string  { return traduzir(statusAtleta, v) }
func Papel(v string) string         { return traduzir(papeis, v) }

// Opcao é um item de <select> ou grupo de rádio.
type Opcao struct {
	Valor  string
	Rotulo string
}

var (
	OpcoesGenero = []Opcao{{"none", "Não informado"}, {"MALE", "Masculino"}, {"FEMALE", "Feminino"}}

	OpcoesLateralidade = []Opcao{{"none", "Não informado"}, {"RIGHT", "Destro"}, {"LEFT", "Canhoto"}}

	OpcoesTipoSanguineo = []Opcao{
		{"none", "Não informado"},
		{"A_POSITIVE", "A+"}, {"A_NEGATIVE", "A-"},
		{"B_POSITIVE", "B+"}, {"B_NEGATIVE", "B-"},
		{"AB_POSITIVE", "AB+"}, {"AB_NEGATIVE", "AB-"},
		{"O_POSITIVE", "O+"}, {"O_NEGATIVE", "O-"},
	}

	OpcoesArea = []Opcao{
		{"UNSPECIFIED", "Não especificado"},
		{"PSYCHOLOGY", "Psicologia"},
		{"PHYSIOTHERAPY", "Fisioterapia"},
		{"NUTRITION", "Nutrição"},
		{"NURSING", "Enfermagem"},
		{"PSYCHOPEDAGOGY", "Psicopedagogia"},
		{"PHYSICAL_EDUCATION", "Educação Física"},
	}
)
