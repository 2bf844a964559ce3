package timezone

import "time"

// El cálculo de slots usa el reloj del dispositivo; TZ_OVERRIDE existe
// para fijarlo en entornos donde la zona local no es la del paciente.

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
