package handler

import (
	"log/slog"
	"net/http"

	"homesec/internal/delivery/api/response"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SensorHandlerParams holds dependencies for SensorHandler, injected by Fx.
type SensorHandlerParams struct {
	fx.In

	SensorUC usecase.SensorUsecase
	Logger   *slog.Logger
}

// SensorHandler serves sensor endpoints.
type SensorHandler struct {
	sensorUC usecase.SensorUsecase
	logger   *slog.Logger
}

// NewSensorHandler is the constructor for SensorHandler
func NewSensorHandler(params SensorHandlerParams) *SensorHandler {
	return &SensorHandler{
		sensorUC: params.SensorUC,
		logger:   params.Logger,
	}
}

// AttachSensorResponse returns the id of the new sensor.
type AttachSensorResponse struct {
	SensorID string `json:"sensor_id"`
}

// AttachSensor installs a sensor in one of the user's houses.
func (h *SensorHandler) AttachSensor(c echo.Context) error {
	var req AttachSensorRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	location, state, readings := splitSensorData(req.SensorData)

	caller, _ := deliverycontext.GetIdentity(c)
	out, err := h.sensorUC.AttachSensor(c.Request().Context(), caller, &usecase.AttachSensorInput{
		UserID:   c.Param("uid"),
		HouseID:  c.Param("hid"),
		Type:     req.Type,
		Location: location,
		State:    state,
		Readings: readings,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AttachSensorResponse{SensorID: out.SensorID})
}

// ListSensorsOfHouse returns the sensors of one of the user's houses.
func (h *SensorHandler) ListSensorsOfHouse(c echo.Context) error {
	caller, _ := deliverycontext.GetIdentity(c)
	sensors, err := h.sensorUC.ListSensorsOfHouse(c.Request().Context(), caller, c.Param("uid"), c.Param("hid"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sensors)
}

// splitSensorData separates the common sensor fields from the type-specific readings.
// Server-managed keys are dropped.
func splitSensorData(data map[string]any) (location, state string, readings map[string]any) {
	readings = make(map[string]any, len(data))
	for k, v := range data {
		switch k {
		case "ubicacion":
			location, _ = v.(string)
		case "estado":
			state, _ = v.(string)
		case "_id", "id", "nombre", "tipo", "ultima_actualizacion", "lecturas":
		default:
			readings[k] = v
		}
	}

	return location, state, readings
}
