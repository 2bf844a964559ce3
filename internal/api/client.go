package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Wuubzi/healthunity-client/internal/apierr"
)

// TokenSource entrega el access token vigente o falla cerrado cuando
// no hay sesión. Lo implementa internal/session.
type TokenSource interface {
	AccessToken() (string, error)
}

// Client habla con el backend de HealthUnity. Todas las llamadas son de
// lectura o mutaciones simples; la lógica de negocio vive del otro lado.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	log     *zap.Logger
}

func New(baseURL string, tokens TokenSource, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokens: tokens,
		// margen de sobra para una app de un solo usuario; evita
		// martillar el backend cuando la UI repite fetches
		limiter: rate.NewLimiter(rate.Limit(10), 20),
		log:     log,
	}
}

func (c *Client) do(
	ctx context.Context,
	op string,
	method string,
	path string,
	query url.Values,
	body any,
	out any,
) error {

	if err := c.limiter.Wait(ctx); err != nil {
		return &apierr.TransportError{Op: op, Err: err}
	}

	token, err := c.tokens.AccessToken()
	if err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &apierr.TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &apierr.TransportError{Op: op, Err: err}
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &apierr.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &apierr.StatusError{Op: op, Status: resp.StatusCode}
		// el backend responde {error_code, message} en los errores;
		// si no, nos quedamos con el status pelado
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, se)
		c.log.Debug("api error",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
		)
		return se
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apierr.DecodeError{Op: op, Err: err}
	}
	return nil
}
