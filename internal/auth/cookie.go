package auth

import (
	"net/http"
	"time"
)

const (
	NomeCookie    = "auth"
	DuracaoCookie = 7 * 24 * time.Hour
)

// Cookies grava e lê o token de sessão no cookie "auth".
type Cookies struct {
	selador *Selador
	secure  bool
}

// NewCookies recebe secure=false apenas em desenvolvimento (http://localhost).
func NewCookies(selador *Selador, secure bool) *Cookies {
	return &Cookies{selador: selador, secure: secure}
}

func (c *Cookies) Gravar(w http.ResponseWriter, token string) error {
	selado, err := c.selador.Selar(token)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     NomeCookie,
		Value:    selado,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(DuracaoCookie),
		MaxAge:   int(DuracaoCookie.Seconds()),
	})
	return nil
}

func (c *Cookies) Limpar(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     NomeCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// Ler devolve o token do cookie; http.ErrNoCookie quando ausente.
func (c *Cookies) Ler(r *http.Request) (string, error) {
	ck, err := r.Cookie(NomeCookie)
	if err != nil {
		return "", err
	}
	if ck.Value == "" {
		return "", http.ErrNoCookie
	}
	return c.selador.Abrir(ck.Value)
}
