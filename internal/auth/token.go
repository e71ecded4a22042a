package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiracao lê o exp do JWT sem validar a assinatura, que é papel da API.
// ok é falso quando o token não é um JWT ou não tem exp.
func Expiracao(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expirado só é verdadeiro quando o token traz um exp já vencido.
func Expirado(token string, agora time.Time) bool {
	exp, ok := Expiracao(token)
	return ok && !agora.Before(exp)
}
