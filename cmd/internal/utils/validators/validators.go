package validators

import (
	"barbershop/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
)

// Register installs the custom tags used by the request structs.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("daykey", IsDayKey)
	_ = validate.RegisterValidation("hm", IsHM)
}

func New() *validator.Validate {
	validate := validator.New()
	Register(validate)
	return validate
}

func IsDayKey(fl validator.FieldLevel) bool {
	_, err := utils.ParseDayKey(fl.Field().String())
	return err == nil
}

func IsHM(fl validator.FieldLevel) bool {
	_, err := utils.ParseHM(fl.Field().String())
	return err == nil
}
