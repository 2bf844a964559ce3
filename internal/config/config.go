package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	APIBaseURL string

	// Auth0
	Auth0Domain   string
	Auth0ClientID string
	Auth0Audience string
	CallbackPort  int

	// Cloudinary (preset creado en el dashboard)
	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string
	CloudinaryPreset string
	CloudinaryFolder string

	// Cache local opcional; vacío = sin cache
	RedisAddr string

	// Directorio donde vive la sesión cifrada
	StateDir string

	Timezone string
}

func Load() *Config {
	return &Config{
		APIBaseURL:       getEnv("API_URL", "https://api.healthunity.com"),
		Auth0Domain:      getEnv("AUTH0_DOMAIN", ""),
		Auth0ClientID:    getEnv("AUTH0_CLIENT_ID", ""),
		Auth0Audience:    getEnv("AUTH0_AUDIENCE", "https://api.healthunity.com"),
		CallbackPort:     getEnvInt("AUTH_CALLBACK_PORT", 8913),
		CloudinaryCloud:  getEnv("CLOUDINARY_CLOUD", ""),
		CloudinaryKey:    getEnv("CLOUDINARY_KEY", ""),
		CloudinarySecret: getEnv("CLOUDINARY_SECRET", ""),
		CloudinaryPreset: getEnv("CLOUDINARY_PRESET", "profile_images"),
		CloudinaryFolder: getEnv("CLOUDINARY_FOLDER", "profile_images"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		StateDir:         getEnv("STATE_DIR", defaultStateDir()),
		Timezone:         getEnv("TZ_OVERRIDE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".healthunity"
	}
	return filepath.Join(home, ".healthunity")
}

// RedirectURI es la URL de retorno registrada en Auth0 para el
// listener de loopback.
func (c *Config) RedirectURI() string {
	return fmt.Sprintf("http://127.0.0.1:%d/redirect", c.CallbackPort)
}

func (c *Config) CallbackAddr() string {
	return fmt.Sprintf("127.0.0.1:%d", c.CallbackPort)
}
