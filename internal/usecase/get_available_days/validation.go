package get_available_days

import (
	"fmt"

	"github.com/vibracionalta/VA-AgendaService/pkg/types"
)

// validateRequest valida la petición y devuelve la hora normalizada.
// Una hora ausente o malformada es un error de validación, distinto de
// "sin disponibilidad" (lista vacía).
func validateRequest(req *Request) (types.TimeString, error) {
	if req == nil || req.Hora == "" {
		return "", fmt.Errorf("%w: hora is required", ErrInvalidInput)
	}

	hora, err := types.NewTimeStringFromString(req.Hora)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	return hora, nil
}
