package doctors

import (
	"context"
	"sync"

	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/cache"
	"github.com/Wuubzi/healthunity-client/internal/models"
)

const defaultPageSize = 10

// Finder pagina el buscador de doctores con semántica de append:
// página 1 reemplaza resultados, las siguientes los acumulan.
type Finder struct {
	api   *api.Client
	cache *cache.Cache

	mu      sync.Mutex
	results []models.DoctorSummary
	page    int
	hasNext bool

	search         string
	especialidadID int
	orderBy        string
}

func NewFinder(client *api.Client, c *cache.Cache) *Finder {
	return &Finder{
		api:     client,
		cache:   c,
		orderBy: "relevancia",
	}
}

// Search reinicia la búsqueda con nuevos filtros.
func (f *Finder) Search(ctx context.Context, search string, especialidadID int, orderBy string) ([]models.DoctorSummary, error) {
	f.mu.Lock()
	f.search = search
	f.especialidadID = especialidadID
	if orderBy != "" {
		f.orderBy = orderBy
	}
	f.page = 0
	f.results = nil
	f.hasNext = false
	f.mu.Unlock()

	return f.NextPage(ctx)
}

// NextPage trae la página siguiente y la acumula.
func (f *Finder) NextPage(ctx context.Context) ([]models.DoctorSummary, error) {
	f.mu.Lock()
	if f.page > 0 && !f.hasNext {
		out := f.results
		f.mu.Unlock()
		return out, nil
	}
	params := api.SearchParams{
		Page:           f.page + 1,
		Limit:          defaultPageSize,
		OrderBy:        f.orderBy,
		Search:         f.search,
		EspecialidadID: f.especialidadID,
	}
	f.mu.Unlock()

	page, err := f.api.GetDoctores(ctx, params)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.page = page.CurrentPage
	f.hasNext = page.HasNext
	f.results = append(f.results, page.Content...)
	return f.results, nil
}

func (f *Finder) HasNext() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasNext
}

// ===============================
// Catálogos cacheados
// ===============================

// Especialidades lee del cache local y cae al backend en el miss.
func (f *Finder) Especialidades(ctx context.Context) ([]models.Specialty, error) {
	var out []models.Specialty
	if f.cache.Get(ctx, "especialidades", &out) {
		return out, nil
	}

	out, err := f.api.GetEspecialidades(ctx)
	if err != nil {
		return nil, err
	}
	f.cache.Set(ctx, "especialidades", out)
	return out, nil
}

func (f *Finder) TopDoctores(ctx context.Context) ([]models.TopDoctor, error) {
	var out []models.TopDoctor
	if f.cache.Get(ctx, "top-doctores", &out) {
		return out, nil
	}

	out, err := f.api.TopDoctores(ctx)
	if err != nil {
		return nil, err
	}
	f.cache.Set(ctx, "top-doctores", out)
	return out, nil
}
