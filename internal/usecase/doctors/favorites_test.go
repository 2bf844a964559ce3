package doctors

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Wuubzi/healthunity-client/internal/activity"
	"github.com/Wuubzi/healthunity-client/internal/apierr"
	"github.com/Wuubzi/healthunity-client/internal/models"
)

type staticPatient int

func (p staticPatient) PatientID() (int, error) { return int(p), nil }

type favoritesBackend struct {
	mux *http.ServeMux

	favs    []models.FavoriteDoctor
	added   []map[string]string
	removed []int
	reviews []models.AddReviewRequest
}

func newFavoritesBackend(favs ...models.FavoriteDoctor) *favoritesBackend {
	b := &favoritesBackend{mux: http.NewServeMux(), favs: favs}

	b.mux.HandleFunc("/api/v1/doctor/get-doctores-favoritos", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(b.favs)
	})
	b.mux.HandleFunc("/api/v1/doctor/añadir-favoritos", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		b.added = append(b.added, body)
	})
	b.mux.HandleFunc("/api/v1/doctor/eliminar-favoritos", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.URL.Query().Get("idFavorito"))
		b.removed = append(b.removed, id)
	})
	b.mux.HandleFunc("/api/v1/doctor/añadir-opinion", func(w http.ResponseWriter, r *http.Request) {
		var req models.AddReviewRequest
		json.NewDecoder(r.Body).Decode(&req)
		b.reviews = append(b.reviews, req)
	})
	return b
}

func newFavorites(t *testing.T, b *favoritesBackend) *Favorites {
	t.Helper()
	disp := activity.NewDispatcher(zap.NewNop())
	t.Cleanup(disp.Close)
	return NewFavorites(newAPIClient(t, b.mux), staticPatient(42), disp)
}

func TestFavoritesToggle_AddsWhenAbsent(t *testing.T) {
	b := newFavoritesBackend()
	f := newFavorites(t, b)

	added, err := f.Toggle(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, added)

	require.Len(t, b.added, 1)
	require.Equal(t, "5", b.added[0]["idDoctor"])
	require.Equal(t, "42", b.added[0]["idPaciente"])
	require.Empty(t, b.removed)
}

func TestFavoritesToggle_RemovesByIDFavorito(t *testing.T) {
	b := newFavoritesBackend(models.FavoriteDoctor{IDFavorito: 99, IDDoctor: 5})
	f := newFavorites(t, b)

	added, err := f.Toggle(context.Background(), 5)
	require.NoError(t, err)
	require.False(t, added)

	require.Equal(t, []int{99}, b.removed)
	require.Empty(t, b.added)
}

func TestFavoritesAddReview(t *testing.T) {
	b := newFavoritesBackend()
	f := newFavorites(t, b)

	require.NoError(t, f.AddReview(context.Background(), 5, 4, "muy buena atención"))
	require.Len(t, b.reviews, 1)
	require.Equal(t, models.AddReviewRequest{
		Estrellas:  4,
		Comentario: "muy buena atención",
		IDDoctor:   5,
		IDPaciente: 42,
	}, b.reviews[0])
}

func TestFavoritesAddReview_RejectsInvalidRating(t *testing.T) {
	b := newFavoritesBackend()
	f := newFavorites(t, b)

	for _, estrellas := range []int{0, 6, -1} {
		err := f.AddReview(context.Background(), 5, estrellas, "x")
		require.True(t, apierr.IsBusiness(err, apierr.CodeInvalidRating))
	}
	require.Empty(t, b.reviews)
}
