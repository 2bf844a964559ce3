package schedule

import (
	"strings"
	"time"
)

// BookedCita es la vista mínima de una cita existente que necesita
// el filtro de disponibilidad.
type BookedCita struct {
	Fecha  string // "YYYY-MM-DD"
	Hora   string // "HH:MM" o "HH:MM:SS"
	Estado Status
}

type AvailabilityInput struct {
	Slots []Minutes // slots del día, ya expandidos y ordenados
	Citas []BookedCita
	Date  string    // fecha seleccionada "YYYY-MM-DD"
	Now   time.Time // reloj del dispositivo
}

// Available aplica las reglas de ocupación: fuera van los slots con cita
// pendiente o confirmada en la fecha seleccionada, y si la fecha es hoy,
// los que ya empezaron (<=: un slot que arranca exactamente ahora no se
// ofrece).
func Available(in AvailabilityInput) []Minutes {
	occupied := make(map[Minutes]struct{})
	for _, c := range in.Citas {
		if c.Fecha != in.Date || !c.Estado.Occupies() {
			continue
		}
		m, err := ParseClockSeconds(c.Hora)
		if err != nil {
			continue
		}
		occupied[m] = struct{}{}
	}

	isToday := in.Now.Format(isoDate) == in.Date
	nowMin := Minutes(in.Now.Hour()*60 + in.Now.Minute())

	var out []Minutes
	for _, s := range in.Slots {
		if _, busy := occupied[s]; busy {
			continue
		}
		if isToday && s <= nowMin {
			continue
		}
		out = append(out, s)
	}

	return out
}

// Partition separa los slots en mañana/tarde para la pantalla.
func Partition(slots []Minutes) (morning, afternoon []string) {
	for _, s := range slots {
		d := s.Display12()
		if strings.HasSuffix(d, "AM") {
			morning = append(morning, d)
		} else {
			afternoon = append(afternoon, d)
		}
	}
	return morning, afternoon
}
