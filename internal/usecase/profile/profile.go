package profile

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/apierr"
	"github.com/Wuubzi/healthunity-client/internal/models"
	"github.com/Wuubzi/healthunity-client/internal/storage"
	"github.com/Wuubzi/healthunity-client/internal/validators"
)

// SessionAccess es lo que el flujo de perfil necesita de la sesión.
type SessionAccess interface {
	Email() (string, error)
	SetPatientID(id int) error
}

// Input son los campos del formulario de perfil. ImagePath es una ruta
// local opcional; se sube a Cloudinary antes de llamar al backend.
type Input struct {
	Nombre          string
	Apellido        string
	FechaNacimiento string // "YYYY-MM-DD"
	Telefono        string
	Genero          string
	Direccion       string
	ImagePath       string
}

var phoneRe = regexp.MustCompile(`^[0-9+\-\s]{7,20}$`)

// Flow cubre registro tras login, completar perfil y editarlo.
type Flow struct {
	api      *api.Client
	session  SessionAccess
	uploader *storage.Uploader // nil si Cloudinary no está configurado
	log      *zap.Logger

	// resolución MX/A del dominio; se reemplaza en tests para no
	// depender de la red
	domainOK func(email string) bool
}

func NewFlow(client *api.Client, session SessionAccess, uploader *storage.Uploader, log *zap.Logger) *Flow {
	return &Flow{
		api:      client,
		session:  session,
		uploader: uploader,
		log:      log,
		domainOK: validators.IsEmailDomainValid,
	}
}

// EnsureRegistered da de alta al paciente tras el login. Devuelve si el
// perfil ya está completo, que decide a qué pantalla se va.
func (f *Flow) EnsureRegistered(ctx context.Context) (profileCompleted bool, err error) {
	email, err := f.session.Email()
	if err != nil {
		return false, err
	}

	resp, err := f.api.Register(ctx, email)
	if err != nil {
		return false, err
	}
	return resp.ProfileCompleted, nil
}

// Fetch trae el paciente y cachea su id en sesión; ese id lo usan
// citas, favoritos y reseñas.
func (f *Flow) Fetch(ctx context.Context) (*models.Patient, error) {
	email, err := f.session.Email()
	if err != nil {
		return nil, err
	}

	patient, err := f.api.GetPaciente(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := f.session.SetPatientID(patient.ID); err != nil {
		f.log.Warn("no se pudo cachear id de paciente", zap.Error(err))
	}
	return patient, nil
}

// Complete envía el formulario inicial del perfil.
func (f *Flow) Complete(ctx context.Context, in Input) error {
	req, err := f.buildRequest(ctx, in)
	if err != nil {
		return err
	}
	return f.api.CompleteProfile(ctx, *req)
}

// Update guarda la edición del perfil.
func (f *Flow) Update(ctx context.Context, in Input) error {
	req, err := f.buildRequest(ctx, in)
	if err != nil {
		return err
	}
	return f.api.UpdateProfile(ctx, *req)
}

func (f *Flow) buildRequest(ctx context.Context, in Input) (*models.ProfileRequest, error) {
	email, err := f.session.Email()
	if err != nil {
		return nil, err
	}

	if err := f.validate(in, email); err != nil {
		return nil, err
	}

	req := &models.ProfileRequest{
		Nombre:          in.Nombre,
		Apellido:        in.Apellido,
		Gmail:           email,
		FechaNacimiento: in.FechaNacimiento,
		Telefono:        in.Telefono,
		Genero:          in.Genero,
		Direccion:       in.Direccion,
	}

	if in.ImagePath != "" {
		if f.uploader == nil {
			return nil, apierr.ErrBusiness("cloudinary_no_configurado")
		}
		url, err := f.uploader.UploadProfileImage(ctx, in.ImagePath)
		if err != nil {
			return nil, err
		}
		req.URLImagen = url
	}

	return req, nil
}

func (f *Flow) validate(in Input, email string) error {
	if in.Nombre == "" || in.Apellido == "" || in.Genero == "" {
		return apierr.ErrBusiness(apierr.CodeInvalidProfile)
	}
	if _, err := time.Parse("2006-01-02", in.FechaNacimiento); err != nil {
		return apierr.ErrBusiness(apierr.CodeInvalidProfile)
	}
	if !phoneRe.MatchString(in.Telefono) {
		return apierr.ErrBusiness(apierr.CodeInvalidProfile)
	}
	if !validators.HasValidFormat(email) || !f.domainOK(email) {
		return apierr.ErrBusiness(apierr.CodeInvalidProfile)
	}
	return nil
}
