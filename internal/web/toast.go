package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const nomeCookieToast = "toast"

type TipoToast string

const (
	ToastSucesso TipoToast = "sucesso"
	ToastErro    TipoToast = "erro"
)

// Toast é uma notificação exibida uma única vez na próxima página.
type Toast struct {
	Tipo     TipoToast `json:"t"`
	Mensagem string    `json:"m"`
}

func gravarToast(w http.ResponseWriter, t Toast) {
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     nomeCookieToast,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

func ToastDeSucesso(w http.ResponseWriter, msg string) {
	gravarToast(w, Toast{Tipo: ToastSucesso, Mensagem: msg})
}

func ToastDeErro(w http.ResponseWriter, msg string) {
	gravarToast(w, Toast{Tipo: ToastErro, Mensagem: msg})
}

// ConsumirToast lê o toast pendente e o remove do navegador.
func ConsumirToast(w http.ResponseWriter, r *http.Request) (Toast, bool) {
	ck, err := r.Cookie(nomeCookieToast)
	if err != nil || ck.Value == "" {
		return Toast{}, false
	}
	http.SetCookie(w, &http.Cookie{Name: nomeCookieToast, Value: "", Path: "/", MaxAge: -1})

	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return Toast{}, false
	}
	var t Toast
	if err := json.Unmarshal(raw, &t); err != nil || t.Mensagem == "" {
		return Toast{}, false
	}
	return t, true
}
