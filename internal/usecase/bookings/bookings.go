package bookings

import (
	"context"

	"github.com/Wuubzi/healthunity-client/internal/activity"
	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/apierr"
	"github.com/Wuubzi/healthunity-client/internal/models"
)

// PatientSource entrega el id de paciente cacheado en sesión.
type PatientSource interface {
	PatientID() (int, error)
}

// Tab son las pestañas de la pantalla de citas.
type Tab string

const (
	TabUpcoming  Tab = "upcoming"
	TabCompleted Tab = "completed"
	TabCancelled Tab = "cancelled"
)

func (t Tab) estado() string {
	switch t {
	case TabCompleted:
		return "completada"
	case TabCancelled:
		return "cancelada"
	default:
		return "pendiente"
	}
}

// List muestra las citas del paciente, una pestaña por estado.
type List struct {
	api     *api.Client
	patient PatientSource
	disp    *activity.Dispatcher
}

func NewList(client *api.Client, patient PatientSource, disp *activity.Dispatcher) *List {
	return &List{api: client, patient: patient, disp: disp}
}

func (l *List) ByTab(ctx context.Context, tab Tab) ([]models.Cita, error) {
	patientID, err := l.patient.PatientID()
	if err != nil {
		return nil, err
	}
	return l.api.GetCitas(ctx, patientID, tab.estado())
}

// Proxima es la tarjeta de próxima cita de la pantalla principal.
// Sin cita próxima devuelve nil, no error.
func (l *List) Proxima(ctx context.Context) (*models.Cita, error) {
	patientID, err := l.patient.PatientID()
	if err != nil {
		return nil, err
	}

	cita, err := l.api.ProximaCita(ctx, patientID)
	if err != nil {
		if apierr.IsStatus(err, 404) {
			return nil, nil
		}
		return nil, err
	}
	return cita, nil
}

func (l *List) Cancel(ctx context.Context, idCita int) error {
	if err := l.api.CancelCita(ctx, idCita); err != nil {
		return err
	}
	l.disp.Dispatch(activity.Event{
		Action:   "cita_cancelada",
		Entity:   "cita",
		EntityID: idCita,
	})
	return nil
}
