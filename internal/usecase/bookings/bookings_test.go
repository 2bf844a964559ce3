package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Wuubzi/healthunity-client/internal/activity"
	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/models"
)

type staticTokens struct{}

func (staticTokens) AccessToken() (string, error) { return "token-de-prueba", nil }

type staticPatient int

func (p staticPatient) PatientID() (int, error) { return int(p), nil }

type citasBackend struct {
	mux *http.ServeMux

	estadoQueries []string
	cancelled     []int
	proximaStatus int
}

func newCitasBackend() *citasBackend {
	b := &citasBackend{mux: http.NewServeMux()}

	b.mux.HandleFunc("/api/v1/citas/getCitas", func(w http.ResponseWriter, r *http.Request) {
		b.estadoQueries = append(b.estadoQueries, r.URL.Query().Get("estado"))
		json.NewEncoder(w).Encode([]models.Cita{
			{ID: 1, Fecha: "2026-02-10", Hora: "09:00:00", Estado: r.URL.Query().Get("estado")},
		})
	})
	b.mux.HandleFunc("/api/v1/citas/proxima-cita", func(w http.ResponseWriter, r *http.Request) {
		if b.proximaStatus != 0 {
			w.WriteHeader(b.proximaStatus)
			return
		}
		json.NewEncoder(w).Encode(models.Cita{ID: 7, Fecha: "2026-02-10", Hora: "09:00:00", Estado: "pendiente"})
	})
	b.mux.HandleFunc("/api/v1/citas/cancelarCitas", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.URL.Query().Get("idCita"))
		b.cancelled = append(b.cancelled, id)
	})
	return b
}

func newList(t *testing.T, b *citasBackend) *List {
	t.Helper()
	srv := httptest.NewServer(b.mux)
	t.Cleanup(srv.Close)

	disp := activity.NewDispatcher(zap.NewNop())
	t.Cleanup(disp.Close)

	return NewList(api.New(srv.URL, staticTokens{}, zap.NewNop()), staticPatient(42), disp)
}

func TestListByTab_MapsTabToEstado(t *testing.T) {
	b := newCitasBackend()
	l := newList(t, b)

	ctx := context.Background()
	for _, tc := range []struct {
		tab    Tab
		estado string
	}{
		{TabUpcoming, "pendiente"},
		{TabCompleted, "completada"},
		{TabCancelled, "cancelada"},
	} {
		citas, err := l.ByTab(ctx, tc.tab)
		require.NoError(t, err)
		require.Len(t, citas, 1)
		require.Equal(t, tc.estado, citas[0].Estado)
	}
	require.Equal(t, []string{"pendiente", "completada", "cancelada"}, b.estadoQueries)
}

func TestListProxima(t *testing.T) {
	l := newList(t, newCitasBackend())

	cita, err := l.Proxima(context.Background())
	require.NoError(t, err)
	require.NotNil(t, cita)
	require.Equal(t, 7, cita.ID)
}

func TestListProxima_SinCitaNoEsError(t *testing.T) {
	b := newCitasBackend()
	b.proximaStatus = http.StatusNotFound

	l := newList(t, b)
	cita, err := l.Proxima(context.Background())
	require.NoError(t, err)
	require.Nil(t, cita)
}

func TestListProxima_OtherErrorsPropagate(t *testing.T) {
	b := newCitasBackend()
	b.proximaStatus = http.StatusInternalServerError

	l := newList(t, b)
	_, err := l.Proxima(context.Background())
	require.Error(t, err)
}

func TestListCancel(t *testing.T) {
	b := newCitasBackend()
	l := newList(t, b)

	require.NoError(t, l.Cancel(context.Background(), 33))
	require.Equal(t, []int{33}, b.cancelled)
}
