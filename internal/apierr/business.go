package apierr

import "errors"

// Códigos usados por los flujos del cliente.
const (
	CodeNoSlotSelected = "no_slot_selected"
	CodeInvalidRating  = "invalid_rating"
	CodeInvalidProfile = "invalid_profile"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
