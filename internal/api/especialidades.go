package api

import (
	"context"
	"net/http"

	"github.com/Wuubzi/healthunity-client/internal/models"
)

func (c *Client) GetEspecialidades(ctx context.Context) ([]models.Specialty, error) {
	var out []models.Specialty
	if err := c.do(ctx, "especialidades.getEspecialidades", http.MethodGet, "/api/v1/especialidades/getEspecialidades", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
