package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Wuubzi/healthunity-client/internal/models"
)

// Register da de alta al paciente tras el login OAuth. Es idempotente:
// si ya existe, el backend responde igual con profileCompleted.
func (c *Client) Register(ctx context.Context, gmail string) (*models.RegisterResponse, error) {
	var out models.RegisterResponse
	req := models.RegisterRequest{Gmail: gmail}
	if err := c.do(ctx, "paciente.register", http.MethodPost, "/api/v1/paciente/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPaciente(ctx context.Context, gmail string) (*models.Patient, error) {
	q := url.Values{"gmail": {gmail}}
	var out models.Patient
	if err := c.do(ctx, "paciente.getPaciente", http.MethodGet, "/api/v1/paciente/getPaciente", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompleteProfile(ctx context.Context, req models.ProfileRequest) error {
	return c.do(ctx, "paciente.complete-profile", http.MethodPost, "/api/v1/paciente/complete-profile", nil, req, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, req models.ProfileRequest) error {
	return c.do(ctx, "paciente.update-profile", http.MethodPut, "/api/v1/paciente/update-profile", nil, req, nil)
}
