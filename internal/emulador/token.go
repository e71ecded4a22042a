package emulador

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const validadeToken = 7 * 24 * time.Hour

var ErrTokenRevogado = errors.New("token revogado")

type Claims struct {
	OrganizacaoID string `json:"org"`
	Role          string `json:"role"`
	jwt.RegisteredClaims
}

// Emissor gera e valida os JWT HS256 do emulador. Tokens de sessões
// encerradas ficam revogados em memória até expirarem.
type Emissor struct {
	segredo   []byte
	agora     func() time.Time
	revogados sync.Map
}

func NewEmissor(segredo string) *Emissor {
	return &Emissor{segredo: []byte(segredo), agora: time.Now}
}

// GerarToken gera um JWT com validade de 7 dias.
func (e *Emissor) GerarToken(u Usuario) (string, error) {
	agora := e.agora()
	claims := &Claims{
		OrganizacaoID: u.OrganizacaoID,
		Role:          u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(agora),
			ExpiresAt: jwt.NewNumericDate(agora.Add(validadeToken)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.segredo)
}

// ValidarToken valida o token e retorna as claims.
func (e *Emissor) ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return e.segredo, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(e.agora),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	if _, revogado := e.revogados.Load(claims.ID); revogado {
		return nil, ErrTokenRevogado
	}
	return claims, nil
}

func (e *Emissor) Revogar(c *Claims) {
	e.revogados.Store(c.ID, c.ExpiresAt.Time)
}
