package booking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Wuubzi/healthunity-client/internal/activity"
	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/apierr"
	"github.com/Wuubzi/healthunity-client/internal/domain/schedule"
	"github.com/Wuubzi/healthunity-client/internal/models"
)

// State sigue el ciclo de la pantalla de reserva.
type State int

const (
	StateLoading State = iota
	StateIdle
	StateLoadingTimes
	StateTimesReady
	StateError
)

const noTime = schedule.Minutes(-1)

// PatientSource entrega el id de paciente cacheado en sesión.
type PatientSource interface {
	PatientID() (int, error)
}

// Reschedule activa el modo reprogramación: se edita la cita original
// en vez de crear una nueva, preseleccionando su fecha y hora.
type Reschedule struct {
	IDCita int
	Fecha  string // "YYYY-MM-DD"
	Hora   string // "HH:MM" o "HH:MM:SS"
}

// Controller orquesta la pantalla de reserva: carga perfil, horario y
// citas del doctor, y recalcula disponibilidad en cada cambio de fecha.
// Cada instancia es dueña de su estado; no se comparte entre pantallas.
type Controller struct {
	api     *api.Client
	patient PatientSource
	disp    *activity.Dispatcher
	log     *zap.Logger
	now     func() time.Time

	cancel context.CancelFunc

	mu      sync.Mutex
	state   State
	loadErr error

	doctorID int
	resched  *Reschedule

	doctor  *models.Doctor
	horario *models.DoctorSchedule
	citas   []models.DoctorCitaSlim

	days         []schedule.WorkingDay
	selectedDay  *schedule.WorkingDay
	available    []schedule.Minutes
	selectedTime schedule.Minutes
}

func NewController(
	client *api.Client,
	patient PatientSource,
	disp *activity.Dispatcher,
	log *zap.Logger,
) *Controller {
	return &Controller{
		api:          client,
		patient:      patient,
		disp:         disp,
		log:          log,
		now:          time.Now,
		state:        StateLoading,
		selectedTime: noTime,
	}
}

// UseClock fija la fuente de "ahora" del controlador. Los días
// ofrecidos y los slots ya transcurridos dependen de este reloj;
// TZ_OVERRIDE entra por aquí.
func (c *Controller) UseClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Start dispara los tres fetches en paralelo. El perfil del doctor es
// fatal; horario y citas degradan a "sin disponibilidad" si fallan.
// El orden de llegada no importa: los slots se calculan al final.
func (c *Controller) Start(ctx context.Context, doctorID int, resched *Reschedule) error {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	c.doctorID = doctorID
	c.resched = resched
	c.state = StateLoading
	c.cancel = cancel
	c.mu.Unlock()

	var (
		wg      sync.WaitGroup
		doctor  *models.Doctor
		horario *models.DoctorSchedule
		citas   []models.DoctorCitaSlim
		errDoc  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		doctor, errDoc = c.api.GetDoctorByID(ctx, doctorID)
	}()
	go func() {
		defer wg.Done()
		h, err := c.api.GetDoctorSchedule(ctx, doctorID)
		if err != nil {
			c.log.Warn("horario no disponible", zap.Int("doctor", doctorID), zap.Error(err))
			return
		}
		horario = h
	}()
	go func() {
		defer wg.Done()
		cs, err := c.api.GetCitasByDoctor(ctx, doctorID)
		if err != nil {
			c.log.Warn("citas del doctor no disponibles", zap.Int("doctor", doctorID), zap.Error(err))
			return
		}
		citas = cs
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if errDoc != nil {
		c.state = StateError
		c.loadErr = errDoc
		return errDoc
	}

	c.doctor = doctor
	c.horario = horario
	c.citas = citas
	c.days = schedule.WorkingDays(c.now())
	c.state = StateIdle

	// reprogramando, arrancamos en la fecha original si sigue ofertada
	initial := ""
	if resched != nil {
		for _, d := range c.days {
			if d.ISODate() == resched.Fecha {
				initial = resched.Fecha
				break
			}
		}
	}
	if initial == "" && len(c.days) > 0 {
		initial = c.days[0].ISODate()
	}
	if initial != "" {
		c.selectDateLocked(initial)
	}
	return nil
}

// SelectDate recalcula la disponibilidad para la fecha dada.
func (c *Controller) SelectDate(iso string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectDateLocked(iso)
}

func (c *Controller) selectDateLocked(iso string) error {
	var day *schedule.WorkingDay
	for i := range c.days {
		if c.days[i].ISODate() == iso {
			day = &c.days[i]
			break
		}
	}
	if day == nil {
		return apierr.ErrBusiness("fecha_fuera_de_rango")
	}

	c.state = StateLoadingTimes
	c.selectedDay = day

	var ranges []schedule.TimeRange
	for _, r := range c.horario.RangesFor(day.Weekday) {
		ranges = append(ranges, schedule.TimeRange{Start: r.HoraInicio, End: r.HoraFin})
	}

	booked := make([]schedule.BookedCita, 0, len(c.citas))
	for _, cita := range c.citas {
		booked = append(booked, schedule.BookedCita{
			Fecha:  cita.Fecha,
			Hora:   cita.Hora,
			Estado: schedule.Status(cita.Estado),
		})
	}

	c.available = schedule.Available(schedule.AvailabilityInput{
		Slots: schedule.ExpandDay(ranges),
		Citas: booked,
		Date:  day.ISODate(),
		Now:   c.now(),
	})

	c.preselectTimeLocked()
	c.state = StateTimesReady
	return nil
}

func (c *Controller) preselectTimeLocked() {
	if len(c.available) == 0 {
		c.selectedTime = noTime
		return
	}

	if c.resched != nil && c.selectedDay.ISODate() == c.resched.Fecha {
		if original, err := schedule.ParseClockSeconds(c.resched.Hora); err == nil {
			for _, s := range c.available {
				if s == original {
					c.selectedTime = original
					return
				}
			}
		}
	}

	// la selección anterior se mantiene si sigue libre
	for _, s := range c.available {
		if s == c.selectedTime {
			return
		}
	}
	c.selectedTime = c.available[0]
}

// SelectTime acepta el string de pantalla ("9:30 AM"); estado local,
// sin red hasta Confirm.
func (c *Controller) SelectTime(display string) error {
	m, err := schedule.ParseDisplay12(display)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.available {
		if s == m {
			c.selectedTime = m
			return nil
		}
	}
	return apierr.ErrBusiness("hora_no_disponible")
}

// Confirm crea la cita, o edita la original en modo reprogramación.
func (c *Controller) Confirm(ctx context.Context, razon string) error {
	c.mu.Lock()
	if c.selectedDay == nil || c.selectedTime == noTime {
		c.mu.Unlock()
		return apierr.ErrBusiness(apierr.CodeNoSlotSelected)
	}
	fecha := c.selectedDay.ISODate()
	hora := c.selectedTime.ClockSeconds()
	doctorID := c.doctorID
	resched := c.resched
	c.mu.Unlock()

	patientID, err := c.patient.PatientID()
	if err != nil {
		return err
	}

	req := models.CitaRequest{
		IDDoctor:   doctorID,
		IDPaciente: patientID,
		Fecha:      fecha,
		Hora:       hora,
		Razon:      razon,
	}

	if resched != nil {
		if err := c.api.EditCita(ctx, resched.IDCita, req); err != nil {
			return err
		}
		c.disp.Dispatch(activity.Event{
			Action:   "cita_reprogramada",
			Entity:   "cita",
			EntityID: resched.IDCita,
			Metadata: req,
		})
		return nil
	}

	if err := c.api.AddCita(ctx, req); err != nil {
		return err
	}
	c.disp.Dispatch(activity.Event{
		Action:   "cita_creada",
		Entity:   "doctor",
		EntityID: doctorID,
		Metadata: req,
	})
	return nil
}

// Close cancela cualquier fetch en vuelo; nada escribe estado después
// de descartar la pantalla.
func (c *Controller) Close() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// ===============================
// Lecturas para la UI
// ===============================

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

func (c *Controller) Doctor() *models.Doctor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doctor
}

func (c *Controller) Days() []schedule.WorkingDay {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.days
}

// WorksOn decide si el selector habilita un día de la semana.
func (c *Controller) WorksOn(weekday int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.horario.RangesFor(weekday)) > 0
}

func (c *Controller) SelectedDate() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedDay == nil {
		return "", false
	}
	return c.selectedDay.ISODate(), true
}

func (c *Controller) SelectedTime() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selectedTime == noTime {
		return "", false
	}
	return c.selectedTime.Display12(), true
}

// AvailableTimes devuelve los slots libres partidos en mañana/tarde.
func (c *Controller) AvailableTimes() (morning, afternoon []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return schedule.Partition(c.available)
}
