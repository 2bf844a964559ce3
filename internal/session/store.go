package session

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

// Store guarda las credenciales cifradas en disco. Reemplaza al
// SecureStore del teléfono: scrypt para derivar la clave y secretbox
// para sellar el blob.
type Store struct {
	path       string
	passphrase string
}

const (
	sessionFile = "session.bin"
	saltLen     = 16
	nonceLen    = 24
)

func NewStore(dir, passphrase string) *Store {
	return &Store{
		path:       filepath.Join(dir, sessionFile),
		passphrase: passphrase,
	}
}

func (s *Store) key(salt []byte) (*[32]byte, error) {
	raw, err := scrypt.Key([]byte(s.passphrase), salt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, err
	}
	var key [32]byte
	copy(key[:], raw)
	return &key, nil
}

func (s *Store) Save(creds *Credentials) error {
	plain, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	var nonce [nonceLen]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return err
	}

	key, err := s.key(salt)
	if err != nil {
		return err
	}

	sealed := append(append([]byte{}, salt...), nonce[:]...)
	sealed = secretbox.Seal(sealed, plain, &nonce, key)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, sealed, 0o600)
}

func (s *Store) Load() (*Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	if len(raw) < saltLen+nonceLen+secretbox.Overhead {
		return nil, fmt.Errorf("sesión corrupta")
	}

	salt := raw[:saltLen]
	var nonce [nonceLen]byte
	copy(nonce[:], raw[saltLen:saltLen+nonceLen])

	key, err := s.key(salt)
	if err != nil {
		return nil, err
	}

	plain, ok := secretbox.Open(nil, raw[saltLen+nonceLen:], &nonce, key)
	if !ok {
		return nil, fmt.Errorf("sesión corrupta o clave incorrecta")
	}

	var creds Credentials
	if err := json.Unmarshal(plain, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
