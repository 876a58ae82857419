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

// HouseHandlerParams holds dependencies for HouseHandler, injected by Fx.
type HouseHandlerParams struct {
	fx.In

	HouseUC usecase.HouseUsecase
	Logger  *slog.Logger
}

// HouseHandler serves house endpoints.
type HouseHandler struct {
	houseUC usecase.HouseUsecase
	logger  *slog.Logger
}

// NewHouseHandler is the constructor for HouseHandler
func NewHouseHandler(params HouseHandlerParams) *HouseHandler {
	return &HouseHandler{
		houseUC: params.HouseUC,
		logger:  params.Logger,
	}
}

// AttachHouse creates a house for the client in the path.
func (h *HouseHandler) AttachHouse(c echo.Context) error {
	var req AttachHouseRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	caller, _ := deliverycontext.GetIdentity(c)
	house, err := h.houseUC.AttachHouse(c.Request().Context(), caller, c.Param("id"), &usecase.AttachHouseInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, house)
}

// ListClientHouses returns the full house documents of a client. Admin only.
func (h *HouseHandler) ListClientHouses(c echo.Context) error {
	caller, _ := deliverycontext.GetIdentity(c)
	houses, err := h.houseUC.ListClientHouses(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, houses)
}

// ListHouseSummaries returns the {id, nombre} list stored on the user.
func (h *HouseHandler) ListHouseSummaries(c echo.Context) error {
	caller, _ := deliverycontext.GetIdentity(c)
	houses, err := h.houseUC.ListHouseSummaries(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, houses)
}

// ListHousesWithSensors returns the caller's houses with their sensors.
func (h *HouseHandler) ListHousesWithSensors(c echo.Context) error {
	caller, _ := deliverycontext.GetIdentity(c)
	houses, err := h.houseUC.ListHousesWithSensors(c.Request().Context(), caller, c.Param("correo"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, houses)
}
