package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Wuubzi/healthunity-client/internal/models"
)

func (c *Client) GetDoctorByID(ctx context.Context, idDoctor int) (*models.Doctor, error) {
	q := url.Values{"idDoctor": {strconv.Itoa(idDoctor)}}
	var out models.Doctor
	if err := c.do(ctx, "doctor.getDoctorById", http.MethodGet, "/api/v1/doctor/getDoctorById", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDoctorSchedule(ctx context.Context, idDoctor int) (*models.DoctorSchedule, error) {
	q := url.Values{"idDoctor": {strconv.Itoa(idDoctor)}}
	var out models.DoctorSchedule
	if err := c.do(ctx, "doctor.getHorarioDoctor", http.MethodGet, "/api/v1/doctor/getHorarioDoctor", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchParams replica los query params de getDoctores.
type SearchParams struct {
	Page           int
	Limit          int
	OrderBy        string // "relevancia" por defecto en la app
	Search         string
	EspecialidadID int // 0 = sin filtro
}

func (c *Client) GetDoctores(ctx context.Context, p SearchParams) (*models.PaginatedDoctors, error) {
	q := url.Values{
		"page":    {strconv.Itoa(p.Page)},
		"limit":   {strconv.Itoa(p.Limit)},
		"orderBy": {p.OrderBy},
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.EspecialidadID != 0 {
		q.Set("especialidadId", strconv.Itoa(p.EspecialidadID))
	}

	var out models.PaginatedDoctors
	if err := c.do(ctx, "doctor.getDoctores", http.MethodGet, "/api/v1/doctor/getDoctores", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TopDoctores(ctx context.Context) ([]models.TopDoctor, error) {
	var out []models.TopDoctor
	if err := c.do(ctx, "doctor.top-doctores", http.MethodGet, "/api/v1/doctor/top-doctores", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReviewsByDoctorID(ctx context.Context, idDoctor int) ([]models.Review, error) {
	q := url.Values{"idDoctor": {strconv.Itoa(idDoctor)}}
	var out []models.Review
	if err := c.do(ctx, "doctor.getReviewsByDoctorId", http.MethodGet, "/api/v1/doctor/getReviewsByDoctorId", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddReview(ctx context.Context, req models.AddReviewRequest) error {
	return c.do(ctx, "doctor.añadir-opinion", http.MethodPost, "/api/v1/doctor/añadir-opinion", nil, req, nil)
}

// ===============================
// Favoritos
// ===============================

func (c *Client) GetFavoriteDoctors(ctx context.Context, idPaciente int) ([]models.FavoriteDoctor, error) {
	q := url.Values{"idPaciente": {strconv.Itoa(idPaciente)}}
	var out []models.FavoriteDoctor
	if err := c.do(ctx, "doctor.get-doctores-favoritos", http.MethodGet, "/api/v1/doctor/get-doctores-favoritos", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type addFavoriteRequest struct {
	// el backend espera ambos ids como string en este endpoint
	IDDoctor   string `json:"idDoctor"`
	IDPaciente string `json:"idPaciente"`
}

func (c *Client) AddFavorite(ctx context.Context, idDoctor, idPaciente int) error {
	req := addFavoriteRequest{
		IDDoctor:   strconv.Itoa(idDoctor),
		IDPaciente: strconv.Itoa(idPaciente),
	}
	return c.do(ctx, "doctor.añadir-favoritos", http.MethodPost, "/api/v1/doctor/añadir-favoritos", nil, req, nil)
}

func (c *Client) RemoveFavorite(ctx context.Context, idFavorito int) error {
	q := url.Values{"idFavorito": {strconv.Itoa(idFavorito)}}
	return c.do(ctx, "doctor.eliminar-favoritos", http.MethodDelete, "/api/v1/doctor/eliminar-favoritos", q, nil, nil)
}
