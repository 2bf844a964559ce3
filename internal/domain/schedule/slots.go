package schedule

import "sort"

// Duración fija de cada slot de cita.
const slotStep = 30

// TimeRange es una franja horaInicio–horaFin del horario semanal,
// en "HH:MM" 24h.
type TimeRange struct {
	Start string
	End   string
}

// GenerateSlots expande una franja en inicios cada 30 minutos,
// fin exclusivo. start >= end produce vacío.
func GenerateSlots(start, end Minutes) []Minutes {
	var slots []Minutes
	for cur := start; cur < end; cur += slotStep {
		slots = append(slots, cur)
	}
	return slots
}

// ExpandDay genera los slots de todas las franjas de un día:
// concatena, deduplica y ordena. Una franja malformada se descarta
// entera en vez de envenenar el resto del día.
func ExpandDay(ranges []TimeRange) []Minutes {
	seen := make(map[Minutes]struct{})
	var all []Minutes

	for _, r := range ranges {
		start, err := ParseClock(r.Start)
		if err != nil {
			continue
		}
		end, err := ParseClock(r.End)
		if err != nil {
			continue
		}

		for _, s := range GenerateSlots(start, end) {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			all = append(all, s)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}
