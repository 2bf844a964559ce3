package schedule

import "time"

const isoDate = "2006-01-02"

// WorkingDay es un día ofrecido por el selector de fechas.
type WorkingDay struct {
	Date    time.Time
	Weekday int // 0=Dom..6=Sáb, numeración que usa diaSemana en el backend
	IsToday bool
}

func (d WorkingDay) ISODate() string {
	return d.Date.Format(isoDate)
}

// WorkingDays enumera desde hoy hasta el sábado que viene, sin domingos.
// Arrancando en sábado el límite es 7: entra hoy y el sábado de la semana
// siguiente, saltando la semana intermedia. Así se comporta la app en
// producción; no cambiar sin regla de negocio confirmada.
func WorkingDays(now time.Time) []WorkingDay {
	today := int(now.Weekday())

	var bound int
	switch today {
	case 0:
		bound = 6
	case 6:
		bound = 7
	default:
		bound = 6 - today
	}

	days := make([]WorkingDay, 0, bound+1)
	for i := 0; i <= bound; i++ {
		date := now.AddDate(0, 0, i)
		if date.Weekday() == time.Sunday {
			continue
		}
		days = append(days, WorkingDay{
			Date:    date,
			Weekday: int(date.Weekday()),
			IsToday: i == 0,
		})
	}

	return days
}
