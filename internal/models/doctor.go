package models

// Los nombres de campo JSON son el contrato del backend; no traducir.

type UserDetails struct {
	ID              int    `json:"idDetalleUsuario"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Gmail           string `json:"gmail"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Telefono        string `json:"telefono"`
	Genero          string `json:"genero"`
	URLImagen       string `json:"urlImagen"`
	Direccion       string `json:"direccion"`
}

type Specialty struct {
	ID     int    `json:"idEspecialidad"`
	Nombre string `json:"nombre"`
	Icono  string `json:"icono"`
}

type GalleryImage struct {
	ID        int    `json:"idImagen"`
	URLImagen string `json:"urlImagen"`
}

type Gallery struct {
	ID       int            `json:"idGaleria"`
	Imagenes []GalleryImage `json:"imagenes"`
}

// Doctor es el perfil completo que devuelve getDoctorById.
type Doctor struct {
	ID           int         `json:"idDoctor"`
	Experiencia  int         `json:"experiencia"`
	Detalles     string      `json:"detalles"`
	Usuario      UserDetails `json:"detallesUsuario"`
	Especialidad Specialty   `json:"especialidad"`
	Galeria      Gallery     `json:"galeria"`
}

// DoctorSummary es la fila aplanada de getDoctores y de favoritos.
type DoctorSummary struct {
	ID            int     `json:"idDoctor"`
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	Imagen        string  `json:"doctor_image"`
	Especialidad  string  `json:"especialidad"`
	Rating        float64 `json:"rating"`
	NumberReviews int     `json:"number_reviews"`
}

type PaginatedDoctors struct {
	Content      []DoctorSummary `json:"content"`
	CurrentPage  int             `json:"currentPage"`
	TotalItems   int             `json:"totalItems"`
	TotalPages   int             `json:"totalPages"`
	HasNext      bool            `json:"hasNext"`
	HasPrevious  bool            `json:"hasPrevious"`
	ItemsPerPage int             `json:"itemsPerPage"`
}

// TopDoctor usa nombres propios en top-doctores.
type TopDoctor struct {
	ID            int     `json:"id"`
	Nombre        string  `json:"nombre_doctor"`
	Apellido      string  `json:"apellido_doctor"`
	Imagen        string  `json:"doctor_image"`
	Especialidad  string  `json:"especialidad"`
	Rating        float64 `json:"rating"`
	NumberReviews int     `json:"number_reviews"`
}

type FavoriteDoctor struct {
	IDFavorito    int     `json:"idFavorito"`
	IDDoctor      int     `json:"idDoctor"`
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	Imagen        string  `json:"doctor_image"`
	Especialidad  string  `json:"especialidad"`
	Rating        float64 `json:"rating"`
	NumberReviews int     `json:"number_reviews"`
}

// ===============================
// Horario semanal
// ===============================

type ScheduleRange struct {
	HoraInicio string `json:"horaInicio"`
	HoraFin    string `json:"horaFin"`
}

type ScheduleDay struct {
	DiaSemana int             `json:"diaSemana"`
	Horarios  []ScheduleRange `json:"horarios"`
}

type DoctorSchedule struct {
	IDDoctor int           `json:"idDoctor"`
	Dias     []ScheduleDay `json:"dias"`
}

// RangesFor devuelve las franjas del día indicado (0=Dom..6=Sáb),
// nil si el doctor no atiende ese día.
func (s *DoctorSchedule) RangesFor(weekday int) []ScheduleRange {
	if s == nil {
		return nil
	}
	for _, d := range s.Dias {
		if d.DiaSemana == weekday {
			return d.Horarios
		}
	}
	return nil
}

// ===============================
// Reseñas
// ===============================

type ReviewPatient struct {
	ID      int         `json:"idPaciente"`
	Usuario UserDetails `json:"detallesUsuario"`
}

type Review struct {
	ID        int           `json:"idOpinionDoctor"`
	Estrellas int           `json:"estrellas"`
	Fecha     string        `json:"fecha"`
	Detalles  string        `json:"detalles"`
	Paciente  ReviewPatient `json:"paciente"`
}

type AddReviewRequest struct {
	Estrellas  int    `json:"estrellas"`
	Comentario string `json:"comentario"`
	IDDoctor   int    `json:"idDoctor"`
	IDPaciente int    `json:"idPaciente"`
}
