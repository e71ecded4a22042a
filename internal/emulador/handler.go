package emulador

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// Handler encapsula DB, repository e emissor de tokens.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Emissor    *Emissor
	agora      func() time.Time
}

func NewHandler(db *gorm.DB, emissor *Emissor) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Emissor:    emissor,
		agora:      time.Now,
	}
}

// Rotas monta a API consumida pelo painel.
func (h *Handler) Rotas() http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		escreverErro(w, http.StatusNotFound, CodigoNaoEncontrado, "Rota não encontrada.")
	})

	// Rotas públicas
	r.HandleFunc("/sessions", h.CriarSessao).Methods(http.MethodPost)
	r.HandleFunc("/forgot-password", h.RecuperarSenha).Methods(http.MethodPatch)

	p := r.NewRoute().Subrouter()
	p.Use(h.Emissor.Autenticar)

	p.HandleFunc("/verify-auth", h.VerificarSessao).Methods(http.MethodGet)
	p.HandleFunc("/sign-out", h.EncerrarSessao).Methods(http.MethodPost)

	// Perfil
	p.HandleFunc("/me", h.Perfil).Methods(http.MethodGet)
	p.HandleFunc("/me", h.AtualizarPerfil).Methods(http.MethodPut)
	p.HandleFunc("/update-email", h.AtualizarEmail).Methods(http.MethodPatch)
	p.HandleFunc("/update-password", h.AtualizarSenha).Methods(http.MethodPatch)

	// Atletas e responsáveis
	p.HandleFunc("/athletes", h.ListarAtletas).Methods(http.MethodGet)
	p.HandleFunc("/athletes", h.CriarAtleta).Methods(http.MethodPost)
	p.HandleFunc("/athletes/{id}", h.BuscarAtleta).Methods(http.MethodGet)
	p.HandleFunc("/athletes/{id}", h.AtualizarAtleta).Methods(http.MethodPatch)
	p.HandleFunc("/athletes/{id}/status", h.AlternarStatus).Methods(http.MethodPatch)
	p.HandleFunc("/guardians/{id}", h.AtualizarResponsavel).Methods(http.MethodPatch)

	// Anamnese
	p.HandleFunc("/anamnesis/{id}", h.BuscarAnamnese).Methods(http.MethodGet)
	p.HandleFunc("/anamnesis/{id}/section/{sectionId:[0-9]+}/question/{questionId:[0-9]+}/answer", h.Responder).Methods(http.MethodPatch)

	// Métricas
	p.HandleFunc("/metrics/athletes-amount", h.MetricaAtletas).Methods(http.MethodGet)
	p.HandleFunc("/metrics/anamnesis-amount", h.MetricaAnamneses).Methods(http.MethodGet)
	p.HandleFunc("/metrics/guardians-amount", h.MetricaResponsaveis).Methods(http.MethodGet)
	p.HandleFunc("/metrics/average-age-amount", h.MetricaIdadeMedia).Methods(http.MethodGet)
	p.HandleFunc("/metrics/athletes-gender-amount", h.MetricaGeneros).Methods(http.MethodGet)
	p.HandleFunc("/metrics/last-week-athletes-amount", h.MetricaUltimaSemana).Methods(http.MethodGet)

	// Gestão da organização
	adm := p.NewRoute().Subrouter()
	adm.Use(ExigirAdministrador)
	adm.HandleFunc("/orgs", h.Organizacao).Methods(http.MethodGet)
	adm.HandleFunc("/orgs", h.AtualizarOrganizacao).Methods(http.MethodPut)
	adm.HandleFunc("/volunteers", h.ListarVoluntarios).Methods(http.MethodGet)
	adm.HandleFunc("/volunteers", h.CriarVoluntario).Methods(http.MethodPost)
	adm.HandleFunc("/volunteers/{id}", h.AtualizarVoluntario).Methods(http.MethodPut)
	adm.HandleFunc("/volunteers/{id}", h.ExcluirVoluntario).Methods(http.MethodDelete)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)
}

func formatarData(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func lerData(s string) (time.Time, bool) {
	for _, l := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// enum normaliza "none" e vazio para nulo e o resto para maiúsculas.
func enum(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToUpper(strings.TrimSpace(*v))
	if s == "" || s == "NONE" {
		return nil
	}
	return &s
}

func minusculo(v *string) string {
	if v == nil {
		return ""
	}
	return strings.ToLower(*v)
}

func valor(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
