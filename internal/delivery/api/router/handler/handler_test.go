package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"homesec/internal/delivery/api/response"
	"homesec/internal/delivery/api/validator"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/errors"
	mockusecase "homesec/internal/mocks/usecase"
	"homesec/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "64b7f0c2a1b2c3d4e5f60718"
	testHouseID = "64b7f0c2a1b2c3d4e5f60719"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminCaller() *entity.Identity {
	return &entity.Identity{UserID: "64b7f0c2a1b2c3d4e5f60700", Email: "admin@example.com", Role: entity.RoleAdmin}
}

func clientCaller() *entity.Identity {
	return &entity.Identity{UserID: testUserID, Email: "ana@example.com", Role: entity.RoleClient}
}

// newContext builds an echo context with the validator installed and, when caller is set,
// the identity the authentication middleware would have stored.
func newContext(t *testing.T, method, target, body string, caller *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != nil {
		deliverycontext.SetIdentity(c, caller, "token-abc")
	}

	return c, rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return *body.Error
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("form credentials return bearer token", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
		h.now = func() time.Time { return now }

		e := echo.New()
		e.Validator = validator.New()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("username=ana%40example.com&password=secret"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		authUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "secret"}).
			Return(&usecase.LoginOutput{
				AccessToken: "jwt",
				TokenType:   usecase.TokenTypeBearer,
				ExpiresAt:   now.Add(30 * time.Minute),
			}, nil).
			Once()

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out LoginResponse
		decodeData(t, rec, &out)
		assert.Equal(t, LoginResponse{AccessToken: "jwt", TokenType: "bearer", ExpiresIn: 1800}, out)
	})

	t.Run("missing password is rejected before the usecase", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		c, rec := newContext(t, http.MethodPost, "/login", `{"username":"ana@example.com"}`, nil)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		info := decodeError(t, rec)
		assert.Equal(t, domainerrors.KindInvalidInput, info.Code)
		assert.Equal(t, map[string]any{"password": "required"}, info.Details)
	})

	t.Run("invalid credentials render 400", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		c, rec := newContext(t, http.MethodPost, "/login", `{"username":"ana@example.com","password":"bad"}`, nil)

		authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.KindInvalidCredentials, decodeError(t, rec).Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
	c, rec := newContext(t, http.MethodPost, "/logout", "", clientCaller())

	authUC.EXPECT().Logout(mock.Anything, "token-abc").Return(nil).Once()

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out MessageResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "Sesión cerrada exitosamente", out.Message)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	t.Run("passes the caller and new password", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		caller := clientCaller()
		c, rec := newContext(t, http.MethodPut, "/clientes/actualizar-contraseña", `{"nueva_contraseña":"Nueva#Clave1"}`, caller)

		authUC.EXPECT().
			ChangePassword(mock.Anything, caller, &usecase.ChangePasswordInput{NewPassword: "Nueva#Clave1"}).
			Return(nil).
			Once()

		require.NoError(t, h.ChangePassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("weak password surfaces details", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		c, rec := newContext(t, http.MethodPut, "/clientes/actualizar-contraseña", `{"nueva_contraseña":"abc"}`, clientCaller())

		authUC.EXPECT().
			ChangePassword(mock.Anything, mock.Anything, mock.Anything).
			Return(domainerrors.ErrInvalidInput.WithDetails("La contraseña debe tener al menos 8 caracteres")).
			Once()

		require.NoError(t, h.ChangePassword(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "La contraseña debe tener al menos 8 caracteres", decodeError(t, rec).Details)
	})
}

func TestAuthHandler_RecoverPassword(t *testing.T) {
	t.Run("mail failure is returned to the error handler", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		c, _ := newContext(t, http.MethodPost, "/clientes/recuperar", `{"correo":"ana@example.com"}`, nil)

		authUC.EXPECT().
			RecoverPassword(mock.Anything, &usecase.RecoverPasswordInput{Email: "ana@example.com"}).
			Return(errors.Wrap(domainerrors.ErrEmailDeliveryFailed, "smtp down")).
			Once()

		err := h.RecoverPassword(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrEmailDeliveryFailed))
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		authUC := mockusecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})
		c, rec := newContext(t, http.MethodPost, "/clientes/recuperar", `{"correo":"not-an-email"}`, nil)

		require.NoError(t, h.RecoverPassword(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"correo": "email"}, decodeError(t, rec).Details)
	})
}

func TestClientHandler_CreateClient(t *testing.T) {
	clientUC := mockusecase.NewMockClientUsecase(t)
	h := NewClientHandler(ClientHandlerParams{ClientUC: clientUC, Logger: newDiscardLogger()})
	caller := adminCaller()
	c, rec := newContext(t, http.MethodPost, "/admin/clientes", `{"nombre":"Ana","correo":"ana@example.com"}`, caller)

	clientUC.EXPECT().
		CreateClient(mock.Anything, caller, &usecase.CreateClientInput{Name: "Ana", Email: "ana@example.com"}).
		Return(&usecase.CreateClientOutput{
			User:            &entity.User{ID: testUserID, Name: "Ana", Email: "ana@example.com", Role: entity.RoleClient},
			WelcomeMailSent: true,
		}, nil).
		Once()

	require.NoError(t, h.CreateClient(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out map[string]any
	decodeData(t, rec, &out)
	assert.Equal(t, testUserID, out["id"])
	assert.Equal(t, true, out["correo_bienvenida_enviado"])
	assert.NotContains(t, out, "PasswordHash")
}

func TestClientHandler_CreateClientComplete(t *testing.T) {
	t.Run("maps houses and sensors", func(t *testing.T) {
		clientUC := mockusecase.NewMockClientUsecase(t)
		h := NewClientHandler(ClientHandlerParams{ClientUC: clientUC, Logger: newDiscardLogger()})
		body := `{
			"cliente": {"nombre": "Ana", "correo": "ana@example.com"},
			"casas": [{
				"nombre": "Casa Centro",
				"direccion": "Calle 1",
				"sensores": [{"tipo_sensor": "gas", "ubicacion": "cocina"}, {"tipo_sensor": "humo"}]
			}]
		}`
		c, rec := newContext(t, http.MethodPost, "/admin/clientes/completo", body, adminCaller())

		expected := &usecase.CreateClientCompleteInput{
			Client: usecase.CreateClientInput{Name: "Ana", Email: "ana@example.com"},
			Houses: []usecase.NewHouseInput{{
				Name:    "Casa Centro",
				Address: "Calle 1",
				Sensors: []usecase.NewSensorInput{{Type: "gas", Location: "cocina"}, {Type: "humo"}},
			}},
		}
		clientUC.EXPECT().
			CreateClientComplete(mock.Anything, mock.Anything, expected).
			Return(&usecase.CreateClientOutput{User: &entity.User{ID: testUserID}}, nil).
			Once()

		require.NoError(t, h.CreateClientComplete(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown sensor type fails validation", func(t *testing.T) {
		clientUC := mockusecase.NewMockClientUsecase(t)
		h := NewClientHandler(ClientHandlerParams{ClientUC: clientUC, Logger: newDiscardLogger()})
		body := `{"cliente":{"nombre":"Ana","correo":"ana@example.com"},"casas":[{"nombre":"C","direccion":"D","sensores":[{"tipo_sensor":"laser"}]}]}`
		c, rec := newContext(t, http.MethodPost, "/admin/clientes/completo", body, adminCaller())

		require.NoError(t, h.CreateClientComplete(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"casas[0].sensores[0].tipo_sensor": "sensor_type"}, decodeError(t, rec).Details)
	})
}

func TestClientHandler_SearchClients(t *testing.T) {
	clientUC := mockusecase.NewMockClientUsecase(t)
	h := NewClientHandler(ClientHandlerParams{ClientUC: clientUC, Logger: newDiscardLogger()})
	c, rec := newContext(t, http.MethodGet, "/admin/clientes/buscar?termino=ana", "", adminCaller())

	clientUC.EXPECT().
		SearchClients(mock.Anything, mock.Anything, "ana").
		Return([]*entity.User{{ID: testUserID, Name: "Ana"}}, nil).
		Once()

	require.NoError(t, h.SearchClients(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out []entity.User
	decodeData(t, rec, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Ana", out[0].Name)
}

func TestClientHandler_ListClients_Forbidden(t *testing.T) {
	clientUC := mockusecase.NewMockClientUsecase(t)
	h := NewClientHandler(ClientHandlerParams{ClientUC: clientUC, Logger: newDiscardLogger()})
	c, rec := newContext(t, http.MethodGet, "/admin/clientes", "", clientCaller())

	clientUC.EXPECT().ListClients(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrForbidden).Once()

	require.NoError(t, h.ListClients(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, domainerrors.KindForbidden, decodeError(t, rec).Code)
}

func TestHouseHandler_AttachHouse(t *testing.T) {
	houseUC := mockusecase.NewMockHouseUsecase(t)
	h := NewHouseHandler(HouseHandlerParams{HouseUC: houseUC, Logger: newDiscardLogger()})
	c, rec := newContext(t, http.MethodPost, "/admin/clientes/"+testUserID+"/casas", `{"nombre":"Casa","direccion":"Calle 1"}`, adminCaller())
	c.SetParamNames("id")
	c.SetParamValues(testUserID)

	houseUC.EXPECT().
		AttachHouse(mock.Anything, mock.Anything, testUserID, &usecase.AttachHouseInput{Name: "Casa", Address: "Calle 1"}).
		Return(&entity.House{ID: testHouseID, Name: "Casa", Address: "Calle 1", OwnerID: testUserID, Sensors: []entity.SensorRef{}}, nil).
		Once()

	require.NoError(t, h.AttachHouse(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out entity.House
	decodeData(t, rec, &out)
	assert.Equal(t, testHouseID, out.ID)
	assert.Empty(t, out.Sensors)
}

func TestHouseHandler_ListHouseSummaries_NotFound(t *testing.T) {
	houseUC := mockusecase.NewMockHouseUsecase(t)
	h := NewHouseHandler(HouseHandlerParams{HouseUC: houseUC, Logger: newDiscardLogger()})
	c, rec := newContext(t, http.MethodGet, "/clientes/"+testUserID+"/casas", "", clientCaller())
	c.SetParamNames("id")
	c.SetParamValues(testUserID)

	houseUC.EXPECT().
		ListHouseSummaries(mock.Anything, mock.Anything, testUserID).
		Return(nil, domainerrors.ErrNotFound.WithDetails("Usuario no encontrado")).
		Once()

	require.NoError(t, h.ListHouseSummaries(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Usuario no encontrado", decodeError(t, rec).Details)
}

func TestHouseHandler_ListHousesWithSensors(t *testing.T) {
	houseUC := mockusecase.NewMockHouseUsecase(t)
	h := NewHouseHandler(HouseHandlerParams{HouseUC: houseUC, Logger: newDiscardLogger()})
	c, rec := newContext(t, http.MethodGet, "/clientes/casas/ana@example.com", "", clientCaller())
	c.SetParamNames("correo")
	c.SetParamValues("ana@example.com")

	houseUC.EXPECT().
		ListHousesWithSensors(mock.Anything, mock.Anything, "ana@example.com").
		Return([]*entity.HouseDetail{{ID: testHouseID, Sensors: []*entity.Sensor{{ID: "s1", Type: entity.SensorGas}}}}, nil).
		Once()

	require.NoError(t, h.ListHousesWithSensors(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out []entity.HouseDetail
	decodeData(t, rec, &out)
	require.Len(t, out, 1)
	require.Len(t, out[0].Sensors, 1)
	assert.Equal(t, entity.SensorGas, out[0].Sensors[0].Type)
}

func TestSensorHandler_AttachSensor(t *testing.T) {
	t.Run("splits sensor_data into fields and readings", func(t *testing.T) {
		sensorUC := mockusecase.NewMockSensorUsecase(t)
		h := NewSensorHandler(SensorHandlerParams{SensorUC: sensorUC, Logger: newDiscardLogger()})
		body := `{"tipo_sensor":"gas","sensor_data":{"ubicacion":"cocina","estado":"inactivo","nivel_gas":12,"tipo":"ignored"}}`
		c, rec := newContext(t, http.MethodPost, "/admin/clientes/"+testUserID+"/casas/"+testHouseID+"/sensores", body, clientCaller())
		c.SetParamNames("uid", "hid")
		c.SetParamValues(testUserID, testHouseID)

		sensorUC.EXPECT().
			AttachSensor(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ *entity.Identity, input *usecase.AttachSensorInput) (*usecase.AttachSensorOutput, error) {
				assert.Equal(t, testUserID, input.UserID)
				assert.Equal(t, testHouseID, input.HouseID)
				assert.Equal(t, "gas", input.Type)
				assert.Equal(t, "cocina", input.Location)
				assert.Equal(t, "inactivo", input.State)
				assert.Equal(t, map[string]any{"nivel_gas": float64(12)}, input.Readings)

				return &usecase.AttachSensorOutput{SensorID: "s1"}, nil
			}).
			Once()

		require.NoError(t, h.AttachSensor(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out AttachSensorResponse
		decodeData(t, rec, &out)
		assert.Equal(t, "s1", out.SensorID)
	})

	t.Run("foreign house is reported as not found", func(t *testing.T) {
		sensorUC := mockusecase.NewMockSensorUsecase(t)
		h := NewSensorHandler(SensorHandlerParams{SensorUC: sensorUC, Logger: newDiscardLogger()})
		c, rec := newContext(t, http.MethodPost, "/", `{"tipo_sensor":"humo","sensor_data":{"ubicacion":"sala"}}`, clientCaller())

		sensorUC.EXPECT().
			AttachSensor(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrNotFound.WithDetails("Casa no encontrada o no pertenece al usuario")).
			Once()

		require.NoError(t, h.AttachSensor(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown type is left to the usecase", func(t *testing.T) {
		sensorUC := mockusecase.NewMockSensorUsecase(t)
		h := NewSensorHandler(SensorHandlerParams{SensorUC: sensorUC, Logger: newDiscardLogger()})
		c, rec := newContext(t, http.MethodPost, "/", `{"tipo_sensor":"unknown","sensor_data":{"ubicacion":"sala"}}`, clientCaller())
		c.SetParamNames("uid", "hid")
		c.SetParamValues("bbbbbbbbbbbbbbbbbbbbbbbb", "cccccccccccccccccccccccc")

		sensorUC.EXPECT().
			AttachSensor(mock.Anything, mock.Anything, mock.MatchedBy(func(input *usecase.AttachSensorInput) bool {
				return input.Type == "unknown"
			})).
			Return(nil, domainerrors.ErrForbidden).
			Once()

		require.NoError(t, h.AttachSensor(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSensorHandler_ListSensorsOfHouse(t *testing.T) {
	sensorUC := mockusecase.NewMockSensorUsecase(t)
	h := NewSensorHandler(SensorHandlerParams{SensorUC: sensorUC, Logger: newDiscardLogger()})
	c, rec := newContext(t, http.MethodGet, "/", "", clientCaller())
	c.SetParamNames("uid", "hid")
	c.SetParamValues(testUserID, testHouseID)

	sensorUC.EXPECT().
		ListSensorsOfHouse(mock.Anything, mock.Anything, testUserID, testHouseID).
		Return([]*entity.Sensor{}, nil).
		Once()

	require.NoError(t, h.ListSensorsOfHouse(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(mustData(t, rec)))
}

func mustData(t *testing.T, rec *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "store reachable", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "store down", pingErr: errors.New("no reachable servers"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{
				ping:   func(context.Context) error { return tt.pingErr },
				logger: newDiscardLogger(),
			}
			c, rec := newContext(t, http.MethodGet, "/health", "", nil)

			require.NoError(t, h.HealthCheck(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
