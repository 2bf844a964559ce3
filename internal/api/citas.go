package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Wuubzi/healthunity-client/internal/models"
)

func (c *Client) GetCitasByDoctor(ctx context.Context, idDoctor int) ([]models.DoctorCitaSlim, error) {
	q := url.Values{"idDoctor": {strconv.Itoa(idDoctor)}}
	var out []models.DoctorCitaSlim
	if err := c.do(ctx, "citas.getCitasByDoctor", http.MethodGet, "/api/v1/citas/getCitasByDoctor", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCitas lista las citas del paciente filtradas por estado
// (pendiente / completada / cancelada, según la pestaña).
func (c *Client) GetCitas(ctx context.Context, idPaciente int, estado string) ([]models.Cita, error) {
	q := url.Values{
		"idPaciente": {strconv.Itoa(idPaciente)},
		"estado":     {estado},
	}
	var out []models.Cita
	if err := c.do(ctx, "citas.getCitas", http.MethodGet, "/api/v1/citas/getCitas", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ProximaCita(ctx context.Context, idPaciente int) (*models.Cita, error) {
	q := url.Values{"idPaciente": {strconv.Itoa(idPaciente)}}
	var out models.Cita
	if err := c.do(ctx, "citas.proxima-cita", http.MethodGet, "/api/v1/citas/proxima-cita", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCita(ctx context.Context, req models.CitaRequest) error {
	return c.do(ctx, "citas.añadirCitas", http.MethodPost, "/api/v1/citas/añadirCitas", nil, req, nil)
}

func (c *Client) EditCita(ctx context.Context, idCita int, req models.CitaRequest) error {
	q := url.Values{"idCita": {strconv.Itoa(idCita)}}
	return c.do(ctx, "citas.editarCitas", http.MethodPut, "/api/v1/citas/editarCitas", q, req, nil)
}

func (c *Client) CancelCita(ctx context.Context, idCita int) error {
	q := url.Values{"idCita": {strconv.Itoa(idCita)}}
	return c.do(ctx, "citas.cancelarCitas", http.MethodPut, "/api/v1/citas/cancelarCitas", q, nil, nil)
}
