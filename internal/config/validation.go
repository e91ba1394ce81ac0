package config

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"ctablegen/internal/ctab"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("c_ident", validateCIdent)
	_ = v.RegisterValidation("notblank", validateNotBlank)
	return v
}

func validateCIdent(fl validator.FieldLevel) bool {
	return ctab.IsCIdent(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return len(strings.TrimSpace(fl.Field().String())) > 0
}
