package doctors

import (
	"context"

	"github.com/Wuubzi/healthunity-client/internal/activity"
	"github.com/Wuubzi/healthunity-client/internal/api"
	"github.com/Wuubzi/healthunity-client/internal/apierr"
	"github.com/Wuubzi/healthunity-client/internal/models"
)

// PatientSource entrega el id de paciente cacheado en sesión.
type PatientSource interface {
	PatientID() (int, error)
}

// Favorites gestiona el corazón de favorito de las tarjetas de doctor.
type Favorites struct {
	api     *api.Client
	patient PatientSource
	disp    *activity.Dispatcher
}

func NewFavorites(client *api.Client, patient PatientSource, disp *activity.Dispatcher) *Favorites {
	return &Favorites{api: client, patient: patient, disp: disp}
}

func (f *Favorites) List(ctx context.Context) ([]models.FavoriteDoctor, error) {
	patientID, err := f.patient.PatientID()
	if err != nil {
		return nil, err
	}
	return f.api.GetFavoriteDoctors(ctx, patientID)
}

// Toggle añade o quita el doctor de favoritos según su estado actual.
// La baja va por idFavorito, no por idDoctor: hay que listar primero.
func (f *Favorites) Toggle(ctx context.Context, idDoctor int) (added bool, err error) {
	patientID, err := f.patient.PatientID()
	if err != nil {
		return false, err
	}

	favs, err := f.api.GetFavoriteDoctors(ctx, patientID)
	if err != nil {
		return false, err
	}

	for _, fav := range favs {
		if fav.IDDoctor == idDoctor {
			if err := f.api.RemoveFavorite(ctx, fav.IDFavorito); err != nil {
				return false, err
			}
			f.disp.Dispatch(activity.Event{
				Action:   "favorito_eliminado",
				Entity:   "doctor",
				EntityID: idDoctor,
			})
			return false, nil
		}
	}

	if err := f.api.AddFavorite(ctx, idDoctor, patientID); err != nil {
		return false, err
	}
	f.disp.Dispatch(activity.Event{
		Action:   "favorito_añadido",
		Entity:   "doctor",
		EntityID: idDoctor,
	})
	return true, nil
}

// ===============================
// Reseñas
// ===============================

func (f *Favorites) ListReviews(ctx context.Context, idDoctor int) ([]models.Review, error) {
	return f.api.GetReviewsByDoctorID(ctx, idDoctor)
}

func (f *Favorites) AddReview(ctx context.Context, idDoctor, estrellas int, comentario string) error {
	if estrellas < 1 || estrellas > 5 {
		return apierr.ErrBusiness(apierr.CodeInvalidRating)
	}

	patientID, err := f.patient.PatientID()
	if err != nil {
		return err
	}

	return f.api.AddReview(ctx, models.AddReviewRequest{
		Estrellas:  estrellas,
		Comentario: comentario,
		IDDoctor:   idDoctor,
		IDPaciente: patientID,
	})
}
