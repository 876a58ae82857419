package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"homesec/config"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/errors"
	"homesec/internal/usecase"

	"go.uber.org/fx"
)

// sensorService implements the SensorUsecase interface.
type sensorService struct {
	guard       usecase.Guard
	provisioner *provisioner
	maxSensors  int
	logger      *slog.Logger
}

// SensorServiceParams holds dependencies for SensorService, injected by Fx.
type SensorServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	HouseRepo  repository.HouseRepository
	SensorRepo repository.SensorRepository
	Guard      usecase.Guard
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSensorService is the constructor for sensorService.
func NewSensorService(params SensorServiceParams) usecase.SensorUsecase {
	return &sensorService{
		guard:       params.Guard,
		provisioner: newProvisioner(params.UserRepo, params.HouseRepo, params.SensorRepo, params.Config, params.Logger),
		maxSensors:  maxSensorsPerClient(params.Config),
		logger:      params.Logger,
	}
}

func sensorLimitDetail(limit int) string {
	return fmt.Sprintf("Se alcanzó el máximo de %d sensores por cliente", limit)
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sensorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AttachSensor installs a sensor in a house owned by input.UserID.
func (srv *sensorService) AttachSensor(ctx context.Context, caller *entity.Identity, input *usecase.AttachSensorInput) (*usecase.AttachSensorOutput, error) {
	if err := srv.guard.RequireSelfOrAdmin(caller, input.UserID); err != nil {
		return nil, err
	}

	house, err := srv.guard.RequireHouseOwnership(ctx, input.UserID, input.HouseID)
	if err != nil {
		return nil, err
	}

	sensorType, ok := entity.ParseSensorType(input.Type)
	if !ok {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Tipo de sensor no válido: " + input.Type)
	}
	if !entity.IsValidSensorLocation(input.Location) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Ubicación no válida: " + input.Location)
	}

	if srv.maxSensors > 0 {
		count, err := srv.provisioner.countSensors(ctx, input.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count sensors")
		}
		if count >= srv.maxSensors {
			srv.log(ctx).Warn("Sensor limit reached", slog.String("userID", input.UserID), slog.Int("count", count))

			return nil, domainerrors.ErrInvalidInput.WithDetails(sensorLimitDetail(srv.maxSensors))
		}
	}

	state := input.State
	if state == "" {
		state = entity.DefaultSensorState
	}

	sensor := &entity.Sensor{
		Name:     sensorType.String(),
		Type:     sensorType,
		Location: input.Location,
		State:    state,
		Readings: maps.Clone(input.Readings),
	}
	if err := srv.provisioner.attachSensor(ctx, srv.log(ctx), house.ID, sensor); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Sensor attached",
		slog.String("houseID", house.ID),
		slog.String("sensorID", sensor.ID),
		slog.String("sensorType", sensorType.String()),
	)

	return &usecase.AttachSensorOutput{SensorID: sensor.ID}, nil
}

// ListSensorsOfHouse returns the resolvable sensors of an owned house.
func (srv *sensorService) ListSensorsOfHouse(ctx context.Context, caller *entity.Identity, userID, houseID string) ([]*entity.Sensor, error) {
	if err := srv.guard.RequireSelfOrAdmin(caller, userID); err != nil {
		return nil, err
	}

	house, err := srv.guard.RequireHouseOwnership(ctx, userID, houseID)
	if err != nil {
		return nil, err
	}

	return srv.provisioner.expandSensors(ctx, srv.log(ctx), house.Sensors), nil
}
