package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/Wuubzi/healthunity-client/internal/config"
	"github.com/Wuubzi/healthunity-client/internal/session"
)

// Flow ejecuta el authorization code + PKCE contra Auth0, con el
// redirect apuntando al listener de loopback.
type Flow struct {
	oauth    *oauth2.Config
	audience string
	addr     string
	log      *zap.Logger
}

func NewFlow(cfg *config.Config, log *zap.Logger) *Flow {
	return &Flow{
		oauth: &oauth2.Config{
			ClientID:    cfg.Auth0ClientID,
			RedirectURL: cfg.RedirectURI(),
			Scopes:      []string{"openid", "profile", "email", "offline_access"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  fmt.Sprintf("https://%s/authorize", cfg.Auth0Domain),
				TokenURL: fmt.Sprintf("https://%s/oauth/token", cfg.Auth0Domain),
			},
		},
		audience: cfg.Auth0Audience,
		addr:     cfg.CallbackAddr(),
		log:      log,
	}
}

// Login imprime la URL de autorización, espera el redirect en loopback
// y cambia el code por tokens. Devuelve las credenciales listas para
// guardar en sesión.
func (f *Flow) Login(ctx context.Context) (*session.Credentials, error) {
	verifier := oauth2.GenerateVerifier()
	state := oauth2.GenerateVerifier()
	nonce := uuid.NewString()

	authURL := f.oauth.AuthCodeURL(state,
		oauth2.S256ChallengeOption(verifier),
		oauth2.SetAuthURLParam("audience", f.audience),
		oauth2.SetAuthURLParam("nonce", nonce),
	)

	fmt.Printf("Abre esta URL en tu navegador para iniciar sesión:\n\n  %s\n\n", authURL)
	f.log.Info("esperando autorización", zap.String("listener", f.addr))

	code, err := waitForCallback(ctx, f.addr, state)
	if err != nil {
		return nil, err
	}

	token, err := f.oauth.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("intercambio de código fallido: %w", err)
	}

	idToken, _ := token.Extra("id_token").(string)
	if idToken == "" {
		return nil, fmt.Errorf("auth0 no devolvió id_token")
	}

	ident, err := ParseIdentity(idToken)
	if err != nil {
		return nil, err
	}

	creds := &session.Credentials{
		AccessToken:  token.AccessToken,
		IDToken:      idToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
		Email:        ident.Email,
	}
	// sin expiry del access token nos quedamos con el del id_token
	if creds.Expiry.IsZero() {
		creds.Expiry = ident.Expiry
	}

	f.log.Info("sesión iniciada", zap.String("email", ident.Email))
	return creds, nil
}
