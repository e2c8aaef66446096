package types

import (
	"github.com/go-playground/validator/v10"
)

// KindValidation accepts any defined kind name or alias; undefined is rejected.
func KindValidation(fl validator.FieldLevel) bool {
	kind, err := KindFromName(fl.Field().String())
	if err != nil {
		return false
	}
	return kind.IsValid()
}

func RegisterKindValidation(v *validator.Validate) {
	v.RegisterValidation("kind", KindValidation)
}
