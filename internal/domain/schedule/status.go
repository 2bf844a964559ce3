package schedule

// ===============================
// Estados de una cita
// ===============================

// Status es el campo estado tal como lo maneja el backend.
type Status string

const (
	StatusPendiente  Status = "pendiente"
	StatusConfirmada Status = "confirmada"
	StatusCompletada Status = "completada"
	StatusCancelada  Status = "cancelada"
)

// Occupies indica si una cita en este estado bloquea su horario.
// Las completadas y canceladas liberan el slot.
func (s Status) Occupies() bool {
	return s == StatusPendiente || s == StatusConfirmada
}
