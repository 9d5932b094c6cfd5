package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs struct tag validation on a request DTO.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}

// RespondValidation writes a 400 with per-field detail when err carries
// validator field errors, or a plain 400 otherwise.
func RespondValidation(w http.ResponseWriter, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
		FieldErrors(w, "validation failed", fields)
		return
	}
	Error(w, http.StatusBadRequest, "invalid request body")
}
