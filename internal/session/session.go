package session

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNoSession = errors.New("no hay sesión iniciada")
	ErrExpired   = errors.New("la sesión expiró")
)

// Credentials es lo que persiste entre ejecuciones: el par de tokens
// de Auth0 más el id de paciente cacheado tras getPaciente.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	IDToken      string    `json:"id_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry"`
	Email        string    `json:"email"`
	PatientID    int       `json:"patient_id,omitempty"`
}

// Session es el contexto explícito de sesión que antes eran lecturas
// sueltas de SecureStore repartidas por cada pantalla. Accesores
// tipados, fallo cerrado: sin token válido no sale ninguna petición.
type Session struct {
	store *Store

	mu    sync.Mutex
	creds *Credentials
}

func New(store *Store) *Session {
	s := &Session{store: store}
	if creds, err := store.Load(); err == nil {
		s.creds = creds
	}
	return s
}

// AccessToken implementa api.TokenSource.
func (s *Session) AccessToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil || s.creds.AccessToken == "" {
		return "", ErrNoSession
	}
	if !s.creds.Expiry.IsZero() && time.Now().After(s.creds.Expiry) {
		return "", ErrExpired
	}
	return s.creds.AccessToken, nil
}

func (s *Session) Email() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil || s.creds.Email == "" {
		return "", ErrNoSession
	}
	return s.creds.Email, nil
}

func (s *Session) PatientID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil {
		return 0, ErrNoSession
	}
	if s.creds.PatientID == 0 {
		return 0, errors.New("id de paciente aún no cacheado")
	}
	return s.creds.PatientID, nil
}

// SetCredentials reemplaza la sesión completa tras un login.
func (s *Session) SetCredentials(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = &creds
	return s.store.Save(s.creds)
}

// SetPatientID cachea el id que devuelve getPaciente.
func (s *Session) SetPatientID(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil {
		return ErrNoSession
	}
	s.creds.PatientID = id
	return s.store.Save(s.creds)
}

// Clear borra tokens y cache, igual que hace la app cuando el backend
// rechaza el token.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = nil
	return s.store.Clear()
}

// Active indica si hay credenciales sin expirar.
func (s *Session) Active() bool {
	_, err := s.AccessToken()
	return err == nil
}
