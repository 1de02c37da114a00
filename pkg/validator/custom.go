package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/rqc23shu/safevalley-map/internal/domain"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("hazard_type", validateHazardType)
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
}

func validateHazardType(fl validator.FieldLevel) bool {
	return domain.HazardType(fl.Field().String()).Valid()
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}
