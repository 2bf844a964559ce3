package models

// Patient es la respuesta de getPaciente. El backend aplana los
// detalles de usuario en este nivel.
type Patient struct {
	ID               int    `json:"id"`
	Nombre           string `json:"nombre"`
	Apellido         string `json:"apellido"`
	Gmail            string `json:"gmail"`
	FechaNacimiento  string `json:"fechaNacimiento"`
	Telefono         string `json:"telefono"`
	Genero           string `json:"genero"`
	URLImagen        string `json:"urlImagen"`
	Direccion        string `json:"direccion"`
	ProfileCompleted bool   `json:"profileCompleted"`
}

type RegisterRequest struct {
	Gmail string `json:"gmail"`
}

type RegisterResponse struct {
	ProfileCompleted bool `json:"profileCompleted"`
}

// ProfileRequest es el body de complete-profile y update-profile.
type ProfileRequest struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Gmail           string `json:"gmail"`
	FechaNacimiento string `json:"fechaNacimiento"` // "YYYY-MM-DD"
	Telefono        string `json:"telefono"`
	Genero          string `json:"genero"`
	Direccion       string `json:"direccion"`
	URLImagen       string `json:"url_imagen,omitempty"`
}
