package models

// DoctorCita es el doctor embebido en una cita.
type DoctorCita struct {
	ID           int         `json:"idDoctor"`
	Experiencia  int         `json:"experiencia"`
	Detalles     string      `json:"detalles"`
	Usuario      UserDetails `json:"detallesUsuario"`
	Especialidad Specialty   `json:"especialidad"`
}

// Cita tal como la devuelven getCitas y proxima-cita.
type Cita struct {
	ID       int        `json:"idCita"`
	Detalles string     `json:"detalles"`
	Fecha    string     `json:"fecha"` // "YYYY-MM-DD"
	Hora     string     `json:"hora"`  // "HH:MM" o "HH:MM:SS"
	Estado   string     `json:"estado"`
	Recordar bool       `json:"recordar"`
	Doctor   DoctorCita `json:"doctor"`
}

// DoctorCitaSlim es lo único que expone getCitasByDoctor: suficiente
// para calcular disponibilidad sin filtrar datos de otros pacientes.
type DoctorCitaSlim struct {
	ID     int    `json:"idCita"`
	Fecha  string `json:"fecha"`
	Hora   string `json:"hora"`
	Estado string `json:"estado"`
}

// CitaRequest es el body de añadirCitas y editarCitas. La hora viaja
// como LocalTime "HH:MM:SS".
type CitaRequest struct {
	IDDoctor   int    `json:"idDoctor"`
	IDPaciente int    `json:"idPaciente"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	Razon      string `json:"razon"`
}
