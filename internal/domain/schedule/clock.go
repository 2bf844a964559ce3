package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Minutes es una hora del día en minutos desde medianoche. Toda la
// lógica interna compara con este tipo; "HH:MM" y "H:MM AM/PM" existen
// solo en los bordes (wire / pantalla). Comparar strings de hora entre
// backend y cliente era la fuente de slots fantasma.
type Minutes int

// ParseClock convierte "HH:MM" (24h) a minutos.
func ParseClock(s string) (Minutes, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("hora inválida %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("hora fuera de rango %q", s)
	}

	return Minutes(h*60 + m), nil
}

// ParseClockSeconds acepta "HH:MM" o "HH:MM:SS"; algunas citas llegan
// del backend con segundos.
func ParseClockSeconds(s string) (Minutes, error) {
	if strings.Count(s, ":") == 2 {
		s = s[:strings.LastIndex(s, ":")]
	}
	return ParseClock(s)
}

func (m Minutes) Hour() int   { return int(m) / 60 }
func (m Minutes) Minute() int { return int(m) % 60 }

// Clock devuelve "HH:MM".
func (m Minutes) Clock() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

// ClockSeconds devuelve "HH:MM:00", el formato que esperan
// añadirCitas y editarCitas.
func (m Minutes) ClockSeconds() string {
	return m.Clock() + ":00"
}

// Display12 devuelve "H:MM AM/PM". Hora 0 → "12", 13–23 → hora-12.
func (m Minutes) Display12() string {
	h := m.Hour()
	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", h12, m.Minute(), period)
}

// ParseDisplay12 es la inversa de Display12: "12:00 AM" → 0,
// "12:00 PM" → 720.
func ParseDisplay12(s string) (Minutes, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("hora inválida %q", s)
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("hora inválida %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q", s)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q", s)
	}
	if h < 1 || h > 12 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("hora fuera de rango %q", s)
	}

	switch strings.ToUpper(fields[1]) {
	case "PM":
		if h != 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	default:
		return 0, fmt.Errorf("periodo inválido %q", s)
	}

	return Minutes(h*60 + mins), nil
}
