// Package handler contains the HTTP handlers of the API.
package handler

import (
	"homesec/internal/delivery/api/response"
	"homesec/internal/delivery/api/validator"
	domainerrors "homesec/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// LoginRequest accepts both form and JSON bodies. Username is the email.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse is the OAuth2-style token response.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ChangePasswordRequest carries the caller's new password.
type ChangePasswordRequest struct {
	NewPassword string `json:"nueva_contraseña" validate:"required"`
}

// RecoverPasswordRequest identifies the account to recover.
type RecoverPasswordRequest struct {
	Email string `json:"correo" validate:"required,email"`
}

// CreateClientRequest is the body of POST /admin/clientes.
type CreateClientRequest struct {
	Name  string `json:"nombre" validate:"required"`
	Email string `json:"correo" validate:"required,email"`
}

// CreateClientCompleteRequest is the body of POST /admin/clientes/completo.
type CreateClientCompleteRequest struct {
	Client CreateClientRequest       `json:"cliente"`
	Houses []HouseWithSensorsRequest `json:"casas" validate:"dive"`
}

// HouseWithSensorsRequest is a house created together with its client.
type HouseWithSensorsRequest struct {
	Name    string              `json:"nombre" validate:"required"`
	Address string              `json:"direccion" validate:"required"`
	Sensors []SensorSpecRequest `json:"sensores" validate:"dive"`
}

// SensorSpecRequest is a sensor created together with its house.
type SensorSpecRequest struct {
	Type     string `json:"tipo_sensor" validate:"required,sensor_type"`
	Location string `json:"ubicacion" validate:"omitempty,sensor_location"`
}

// AttachHouseRequest is the body of POST /admin/clientes/{id}/casas.
type AttachHouseRequest struct {
	Name    string `json:"nombre" validate:"required"`
	Address string `json:"direccion" validate:"required"`
}

// AttachSensorRequest carries the sensor type plus its document.
// sensor_data holds ubicacion, an optional estado and the type-specific readings.
// The type is checked by the usecase once the caller may touch the house.
type AttachSensorRequest struct {
	Type       string         `json:"tipo_sensor" validate:"required"`
	SensorData map[string]any `json:"sensor_data"`
}

// MessageResponse is returned by endpoints without a resource to show.
type MessageResponse struct {
	Message string `json:"message"`
}

// bindAndValidate decodes the body into req and runs its validation tags.
// It writes the 400 response itself and reports whether the handler may continue.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Cuerpo de la solicitud no válido")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c, domainerrors.ErrInvalidInput.Message(), validator.FieldErrors(err))
	}

	return true, nil
}
