package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Wuubzi/healthunity-client/internal/activity"
	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/apierr"
	"github.com/Wuubzi/healthunity-client/internal/models"
)

type staticTokens struct{}

func (staticTokens) AccessToken() (string, error) { return "token-de-prueba", nil }

type staticPatient int

func (p staticPatient) PatientID() (int, error) { return int(p), nil }

// miércoles 7 de enero de 2026, 08:00 local
var wednesdayMorning = time.Date(2026, 1, 7, 8, 0, 0, 0, time.Local)

type fakeBackend struct {
	mux *http.ServeMux

	doctorStatus   int
	scheduleStatus int

	addedCitas  []models.CitaRequest
	editedCitas map[int]models.CitaRequest
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		mux:         http.NewServeMux(),
		editedCitas: make(map[int]models.CitaRequest),
	}

	b.mux.HandleFunc("/api/v1/doctor/getDoctorById", func(w http.ResponseWriter, r *http.Request) {
		if b.doctorStatus != 0 {
			w.WriteHeader(b.doctorStatus)
			return
		}
		json.NewEncoder(w).Encode(models.Doctor{
			ID: 5,
			Usuario: models.UserDetails{
				Nombre:   "Laura",
				Apellido: "Pérez",
			},
			Especialidad: models.Specialty{ID: 2, Nombre: "Cardiología"},
		})
	})

	b.mux.HandleFunc("/api/v1/doctor/getHorarioDoctor", func(w http.ResponseWriter, r *http.Request) {
		if b.scheduleStatus != 0 {
			w.WriteHeader(b.scheduleStatus)
			return
		}
		json.NewEncoder(w).Encode(models.DoctorSchedule{
			IDDoctor: 5,
			Dias: []models.ScheduleDay{
				{
					DiaSemana: 3, // miércoles
					Horarios: []models.ScheduleRange{
						{HoraInicio: "09:00", HoraFin: "11:00"},
					},
				},
			},
		})
	})

	b.mux.HandleFunc("/api/v1/citas/getCitasByDoctor", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.DoctorCitaSlim{
			{ID: 1, Fecha: "2026-01-07", Hora: "09:30:00", Estado: "pendiente"},
		})
	})

	b.mux.HandleFunc("/api/v1/citas/añadirCitas", func(w http.ResponseWriter, r *http.Request) {
		var req models.CitaRequest
		json.NewDecoder(r.Body).Decode(&req)
		b.addedCitas = append(b.addedCitas, req)
	})

	b.mux.HandleFunc("/api/v1/citas/editarCitas", func(w http.ResponseWriter, r *http.Request) {
		var req models.CitaRequest
		json.NewDecoder(r.Body).Decode(&req)
		id, _ := strconv.Atoi(r.URL.Query().Get("idCita"))
		b.editedCitas[id] = req
	})

	return b
}

func newTestController(t *testing.T, b *fakeBackend) (*Controller, *activity.Dispatcher) {
	t.Helper()

	srv := httptest.NewServer(b.mux)
	t.Cleanup(srv.Close)

	disp := activity.NewDispatcher(zap.NewNop())
	t.Cleanup(disp.Close)

	client := api.New(srv.URL, staticTokens{}, zap.NewNop())
	c := NewController(client, staticPatient(42), disp, zap.NewNop())
	c.UseClock(func() time.Time { return wednesdayMorning })
	return c, disp
}

func TestControllerStart_ComputesAvailability(t *testing.T) {
	c, _ := newTestController(t, newFakeBackend())
	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	require.Equal(t, StateTimesReady, c.State())
	require.Equal(t, "Laura", c.Doctor().Usuario.Nombre)

	days := c.Days()
	require.Len(t, days, 4) // miércoles a sábado
	require.True(t, days[0].IsToday)

	date, ok := c.SelectedDate()
	require.True(t, ok)
	require.Equal(t, "2026-01-07", date)

	// 09:30 está ocupado por una cita pendiente
	morning, afternoon := c.AvailableTimes()
	require.Equal(t, []string{"9:00 AM", "10:00 AM", "10:30 AM"}, morning)
	require.Empty(t, afternoon)

	got, ok := c.SelectedTime()
	require.True(t, ok)
	require.Equal(t, "9:00 AM", got)
}

func TestControllerStart_DoctorFetchIsFatal(t *testing.T) {
	b := newFakeBackend()
	b.doctorStatus = http.StatusInternalServerError

	c, _ := newTestController(t, b)
	err := c.Start(context.Background(), 5, nil)
	require.Error(t, err)
	require.Equal(t, StateError, c.State())
	require.Equal(t, err, c.Err())
}

func TestControllerStart_ScheduleFailureDegrades(t *testing.T) {
	b := newFakeBackend()
	b.scheduleStatus = http.StatusInternalServerError

	c, _ := newTestController(t, b)
	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	// sin horario no hay slots, pero la pantalla sigue viva
	require.Equal(t, StateTimesReady, c.State())
	morning, afternoon := c.AvailableTimes()
	require.Empty(t, morning)
	require.Empty(t, afternoon)

	_, ok := c.SelectedTime()
	require.False(t, ok)
}

func TestControllerWorksOn(t *testing.T) {
	c, _ := newTestController(t, newFakeBackend())
	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	require.True(t, c.WorksOn(3))
	require.False(t, c.WorksOn(4))
	require.False(t, c.WorksOn(0))
}

func TestControllerSelectDate_OutOfRange(t *testing.T) {
	c, _ := newTestController(t, newFakeBackend())
	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	err := c.SelectDate("2026-03-01")
	require.True(t, apierr.IsBusiness(err, "fecha_fuera_de_rango"))
}

func TestControllerSelectTime(t *testing.T) {
	c, _ := newTestController(t, newFakeBackend())
	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	require.NoError(t, c.SelectTime("10:30 AM"))
	got, _ := c.SelectedTime()
	require.Equal(t, "10:30 AM", got)

	// 09:30 tiene cita pendiente
	err := c.SelectTime("9:30 AM")
	require.True(t, apierr.IsBusiness(err, "hora_no_disponible"))

	require.Error(t, c.SelectTime("no es una hora"))
}

func TestControllerConfirm_CreatesCita(t *testing.T) {
	b := newFakeBackend()
	c, _ := newTestController(t, b)
	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	require.NoError(t, c.SelectTime("10:00 AM"))
	require.NoError(t, c.Confirm(context.Background(), "control anual"))

	require.Len(t, b.addedCitas, 1)
	req := b.addedCitas[0]
	require.Equal(t, 5, req.IDDoctor)
	require.Equal(t, 42, req.IDPaciente)
	require.Equal(t, "2026-01-07", req.Fecha)
	require.Equal(t, "10:00:00", req.Hora)
	require.Equal(t, "control anual", req.Razon)
}

func TestControllerReschedule_PreselectsOriginalSlot(t *testing.T) {
	b := newFakeBackend()
	c, _ := newTestController(t, b)

	resched := &Reschedule{IDCita: 77, Fecha: "2026-01-07", Hora: "10:00:00"}
	require.NoError(t, c.Start(context.Background(), 5, resched))
	defer c.Close()

	got, ok := c.SelectedTime()
	require.True(t, ok)
	require.Equal(t, "10:00 AM", got)

	require.NoError(t, c.Confirm(context.Background(), "reagendada"))
	require.Empty(t, b.addedCitas)

	req, ok := b.editedCitas[77]
	require.True(t, ok)
	require.Equal(t, "2026-01-07", req.Fecha)
	require.Equal(t, "10:00:00", req.Hora)
}

func TestControllerConfirm_WithoutSlotSelected(t *testing.T) {
	b := newFakeBackend()
	b.scheduleStatus = http.StatusInternalServerError

	c, _ := newTestController(t, b)
	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	err := c.Confirm(context.Background(), "sin hora")
	require.True(t, apierr.IsBusiness(err, apierr.CodeNoSlotSelected))
}

func TestControllerUseClock_DrivesElapsedSlots(t *testing.T) {
	c, _ := newTestController(t, newFakeBackend())
	// las 09:40 del mismo miércoles: 09:00 ya pasó, 09:30 está ocupado
	c.UseClock(func() time.Time {
		return time.Date(2026, 1, 7, 9, 40, 0, 0, time.Local)
	})

	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	morning, afternoon := c.AvailableTimes()
	require.Equal(t, []string{"10:00 AM", "10:30 AM"}, morning)
	require.Empty(t, afternoon)
}

func TestControllerSelectDate_ResetsSelectionAcrossDays(t *testing.T) {
	c, _ := newTestController(t, newFakeBackend())
	require.NoError(t, c.Start(context.Background(), 5, nil))
	defer c.Close()

	require.NoError(t, c.SelectTime("10:30 AM"))

	// el jueves el doctor no atiende: sin slots, la selección se limpia
	require.NoError(t, c.SelectDate("2026-01-08"))
	_, ok := c.SelectedTime()
	require.False(t, ok)

	// de vuelta al miércoles arranca en el primer slot libre
	require.NoError(t, c.SelectDate("2026-01-07"))
	got, _ := c.SelectedTime()
	require.Equal(t, "9:00 AM", got)
}
