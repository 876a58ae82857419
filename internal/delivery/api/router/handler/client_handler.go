package handler

import (
	"log/slog"
	"net/http"

	"homesec/internal/delivery/api/response"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/entity"
	"homesec/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	Logger   *slog.Logger
}

// ClientHandler serves client provisioning, lookup and profile endpoints.
type ClientHandler struct {
	clientUC usecase.ClientUsecase
	logger   *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
		logger:   params.Logger,
	}
}

// CreateClientResponse is the created client plus the outcome of the welcome mail.
type CreateClientResponse struct {
	*entity.User
	WelcomeMailSent bool `json:"correo_bienvenida_enviado"`
}

// CreateClient registers a client and mails its temporary password.
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req CreateClientRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	caller, _ := deliverycontext.GetIdentity(c)
	out, err := h.clientUC.CreateClient(c.Request().Context(), caller, &usecase.CreateClientInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateClientResponse{User: out.User, WelcomeMailSent: out.WelcomeMailSent})
}

// CreateClientComplete registers a client with its houses and sensors.
func (h *ClientHandler) CreateClientComplete(c echo.Context) error {
	var req CreateClientCompleteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.CreateClientCompleteInput{
		Client: usecase.CreateClientInput{Name: req.Client.Name, Email: req.Client.Email},
		Houses: make([]usecase.NewHouseInput, 0, len(req.Houses)),
	}
	for _, house := range req.Houses {
		sensors := make([]usecase.NewSensorInput, 0, len(house.Sensors))
		for _, s := range house.Sensors {
			sensors = append(sensors, usecase.NewSensorInput{Type: s.Type, Location: s.Location})
		}
		input.Houses = append(input.Houses, usecase.NewHouseInput{
			Name:    house.Name,
			Address: house.Address,
			Sensors: sensors,
		})
	}

	caller, _ := deliverycontext.GetIdentity(c)
	out, err := h.clientUC.CreateClientComplete(c.Request().Context(), caller, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateClientResponse{User: out.User, WelcomeMailSent: out.WelcomeMailSent})
}

// ListClients returns every client.
func (h *ClientHandler) ListClients(c echo.Context) error {
	caller, _ := deliverycontext.GetIdentity(c)
	users, err := h.clientUC.ListClients(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// SearchClients filters clients by the termino query parameter.
func (h *ClientHandler) SearchClients(c echo.Context) error {
	caller, _ := deliverycontext.GetIdentity(c)
	users, err := h.clientUC.SearchClients(c.Request().Context(), caller, c.QueryParam("termino"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetProfile returns the caller's own account.
func (h *ClientHandler) GetProfile(c echo.Context) error {
	caller, _ := deliverycontext.GetIdentity(c)
	user, err := h.clientUC.GetProfile(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
