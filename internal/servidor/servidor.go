package servidor

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/t21arenapark/painel/internal/acesso"
	"github.com/t21arenapark/painel/internal/anamnese"
	"github.com/t21arenapark/painel/internal/api"
	"github.com/t21arenapark/painel/internal/atleta"
	"github.com/t21arenapark/painel/internal/auth"
	"github.com/t21arenapark/painel/internal/config"
	"github.com/t21arenapark/painel/internal/metricas"
	"github.com/t21arenapark/painel/internal/organizacao"
	"github.com/t21arenapark/painel/internal/perfil"
	"github.com/t21arenapark/painel/internal/sessao"
	"github.com/t21arenapark/painel/internal/voluntario"
	"github.com/t21arenapark/painel/internal/web"
)

// Servidor é o painel montado: cliente da API, sessões e rotas.
type Servidor struct {
	Sessoes *sessao.Gerenciador
	handler http.Handler
}

// New monta o painel a partir da configuração. opts vão para o cliente da API.
func New(cfg *config.Config, opts ...api.Option) *Servidor {
	base := []api.Option{
		api.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout}),
		api.WithSessaoInvalida(sessao.AoSessaoInvalida),
	}
	if cfg.EnableAPIDelay {
		base = append(base, api.WithAtraso(cfg.APIMaxDelay))
	}
	cliente := api.NewClient(cfg.APIURL, append(base, opts...)...)

	authRepo := auth.NewRepository(cliente)
	cookies := auth.NewCookies(auth.NewSelador(cfg.CookieSecret), cfg.CookieSecure)
	sessoes := sessao.NewGerenciador(authRepo, cookies, cfg.CacheTTL)
	sessoes.AoFalharVerificacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		web.Renderizar(w, r, http.StatusBadGateway, web.PaginaErro())
	}))

	var h http.Handler = rotas(cliente, authRepo, sessoes)
	h = CSRF(cfg.CSRFKey, cfg.CookieSecure)(h)
	h = CORS(cfg.AllowedOrigins)(h)
	h = Recuperar(h)
	h = RegistrarRequisicoes(h)

	return &Servidor{Sessoes: sessoes, handler: h}
}

func (s *Servidor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func rotas(cliente *api.Client, authRepo auth.Repository, sessoes *sessao.Gerenciador) *mux.Router {
	acessoHandler := acesso.NewHandler(authRepo, sessoes)
	metricasHandler := metricas.NewHandler(metricas.NewRepository(cliente))
	atletaHandler := atleta.NewHandler(atleta.NewRepository(cliente))
	anamneseHandler := anamnese.NewHandler(anamnese.NewRepository(cliente))
	perfilHandler := perfil.NewHandler(perfil.NewRepository(cliente))
	voluntarios := voluntario.NewServico(voluntario.NewRepository(cliente))
	orgHandler := organizacao.NewHandler(organizacao.NewRepository(cliente), voluntarios)
	volHandler := voluntario.NewHandler(voluntarios, orgHandler)

	r := mux.NewRouter()
	r.Use(web.Contexto)
	r.NotFoundHandler = web.Contexto(http.HandlerFunc(web.NaoEncontrado))

	// Rotas públicas
	r.HandleFunc("/sign-in", acessoHandler.TelaEntrar).Methods(http.MethodGet)
	r.HandleFunc("/sign-in", acessoHandler.Entrar).Methods(http.MethodPost)
	r.HandleFunc("/forgot", acessoHandler.TelaRecuperar).Methods(http.MethodGet)
	r.HandleFunc("/forgot", acessoHandler.Recuperar).Methods(http.MethodPost)

	p := r.NewRoute().Subrouter()
	p.Use(sessoes.Proteger, perfil.CarregarConta(perfilHandler.Servico))

	p.HandleFunc("/", metricasHandler.Dashboard).Methods(http.MethodGet)
	p.HandleFunc("/sign-out", acessoHandler.Sair).Methods(http.MethodPost)

	// Atletas
	p.HandleFunc("/athletes", atletaHandler.Listar).Methods(http.MethodGet)
	p.HandleFunc("/athletes", atletaHandler.Criar).Methods(http.MethodPost)
	p.HandleFunc("/athletes/{id}", atletaHandler.Detalhe).Methods(http.MethodGet)
	p.HandleFunc("/athletes/{id}", atletaHandler.Atualizar).Methods(http.MethodPost)
	p.HandleFunc("/athletes/{id}/status", atletaHandler.AlternarStatus).Methods(http.MethodPost)
	p.HandleFunc("/athletes/{id}/guardian", atletaHandler.AtualizarResponsavel).Methods(http.MethodPost)

	// Anamnese
	p.HandleFunc("/anamnesis/{id}", anamneseHandler.Exibir).Methods(http.MethodGet)
	p.HandleFunc("/anamnesis/{id}/section/{sectionId:[0-9]+}", anamneseHandler.SalvarSecao).Methods(http.MethodPost)

	// Perfil
	p.HandleFunc("/me", perfilHandler.Tela).Methods(http.MethodGet)
	p.HandleFunc("/me", perfilHandler.Atualizar).Methods(http.MethodPost)
	p.HandleFunc("/me/email", perfilHandler.AtualizarEmail).Methods(http.MethodPost)
	p.HandleFunc("/me/password", perfilHandler.AtualizarSenha).Methods(http.MethodPost)

	// Organização e voluntários
	p.HandleFunc("/mine", orgHandler.Tela).Methods(http.MethodGet)
	p.HandleFunc("/mine/address", orgHandler.AtualizarEndereco).Methods(http.MethodPost)
	p.HandleFunc("/volunteers", volHandler.Criar).Methods(http.MethodPost)
	p.HandleFunc("/volunteers/{id}", volHandler.Atualizar).Methods(http.MethodPost)
	p.HandleFunc("/volunteers/{id}/delete", volHandler.Excluir).Methods(http.MethodPost)

	return r
}
