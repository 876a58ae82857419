// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"homesec/internal/domain/entity"
	"homesec/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator with the sensor tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names in validation errors.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	_ = v.RegisterValidation("sensor_type", func(fl validator.FieldLevel) bool {
		return entity.SensorType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("sensor_location", func(fl validator.FieldLevel) bool {
		return entity.IsValidSensorLocation(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate runs the struct tags of i.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validation errors into field -> failed tag.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:]] = fe.Tag()
	}

	return fields
}
