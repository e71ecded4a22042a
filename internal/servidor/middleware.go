package servidor

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gorilla/csrf"
	"github.com/rs/cors"

	"github.com/t21arenapark/painel/internal/web"
)

type respostaComStatus struct {
	http.ResponseWriter
	status int
}

func (w *respostaComStatus) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *respostaComStatus) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// RegistrarRequisicoes loga método, caminho, status e duração de cada requisição.
func RegistrarRequisicoes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inicio := time.Now()
		rw := &respostaComStatus{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		slog.InfoContext(r.Context(), "requisição",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(inicio),
		)
	})
}

// Recuperar troca um panic pela página de erro.
func Recuperar(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				slog.ErrorContext(r.Context(), "panic ao atender requisição",
					"path", r.URL.Path, "panic", p, "stack", string(debug.Stack()))
				web.Renderizar(w, r, http.StatusInternalServerError, web.PaginaErro())
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// CORS libera as origens configuradas; sem origens, nada muda.
func CORS(origens []string) func(http.Handler) http.Handler {
	if len(origens) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origens,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	})
	return c.Handler
}

// CSRF protege os formulários quando há chave configurada.
func CSRF(chave string, seguro bool) func(http.Handler) http.Handler {
	if chave == "" {
		return func(next http.Handler) http.Handler { return next }
	}
	protecao := csrf.Protect([]byte(chave),
		csrf.Secure(seguro),
		csrf.Path("/"),
		csrf.FieldName(web.CampoCSRFNome),
		csrf.ErrorHandler(http.HandlerFunc(csrfInvalido)),
	)
	return func(next http.Handler) http.Handler {
		h := protecao(next)
		if seguro {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

func csrfInvalido(w http.ResponseWriter, r *http.Request) {
	slog.WarnContext(r.Context(), "token csrf inválido", "path", r.URL.Path, "reason", csrf.FailureReason(r))
	web.ToastDeErro(w, "Sua sessão do formulário expirou. Tente novamente.")
	destino := r.Referer()
	if destino == "" {
		destino = "/"
	}
	http.Redirect(w, r, destino, http.StatusSeeOther)
}
