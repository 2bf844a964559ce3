package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity son los claims del id_token que le interesan al cliente.
type Identity struct {
	Email  string
	Expiry time.Time
}

// ParseIdentity extrae email y exp sin verificar la firma: el token
// llega directo del endpoint de token de Auth0 sobre TLS. Verificar
// firma es trabajo del backend, no de este cliente.
func ParseIdentity(idToken string) (*Identity, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("id_token ilegible: %w", err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("id_token sin claim email")
	}

	id := &Identity{Email: email}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.Expiry = exp.Time
	}
	return id, nil
}
