package impl

import (
	"context"
	"log/slog"
	"strings"

	"homesec/config"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/errors"
	"homesec/internal/usecase"

	"go.uber.org/fx"
)

// houseService implements the HouseUsecase interface.
type houseService struct {
	userRepo    repository.UserRepository
	houseRepo   repository.HouseRepository
	guard       usecase.Guard
	provisioner *provisioner
	logger      *slog.Logger
}

// HouseServiceParams holds dependencies for HouseService, injected by Fx.
type HouseServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	HouseRepo  repository.HouseRepository
	SensorRepo repository.SensorRepository
	Guard      usecase.Guard
	Config     *config.Config
	Logger     *slog.Logger
}

// NewHouseService is the constructor for houseService.
func NewHouseService(params HouseServiceParams) usecase.HouseUsecase {
	return &houseService{
		userRepo:    params.UserRepo,
		houseRepo:   params.HouseRepo,
		guard:       params.Guard,
		provisioner: newProvisioner(params.UserRepo, params.HouseRepo, params.SensorRepo, params.Config, params.Logger),
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *houseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AttachHouse creates a house owned by clientID.
func (srv *houseService) AttachHouse(ctx context.Context, caller *entity.Identity, clientID string, input *usecase.AttachHouseInput) (*entity.House, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	if name == "" || address == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Nombre y dirección son obligatorios")
	}

	client, err := srv.userRepo.FindByID(ctx, clientID)
	if err != nil {
		srv.log(ctx).Warn("Client lookup failed", slog.String("clientID", clientID), slog.Any("error", err))

		return nil, errors.Wrap(toAppError(err, "Cliente no encontrado"), "failed to load client")
	}

	house := &entity.House{Name: name, Address: address, OwnerID: client.ID}
	if err := srv.provisioner.attachHouse(ctx, srv.log(ctx), house); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("House attached", slog.String("clientID", client.ID), slog.String("houseID", house.ID))

	return house, nil
}

// ListClientHouses returns the houses of clientID.
func (srv *houseService) ListClientHouses(ctx context.Context, caller *entity.Identity, clientID string) ([]*entity.House, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, clientID); err != nil {
		return nil, errors.Wrap(toAppError(err, "Cliente no encontrado"), "failed to load client")
	}

	houses, err := srv.houseRepo.FindByOwner(ctx, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list houses")
	}

	return houses, nil
}

// ListHouseSummaries returns the house index stored on the user document.
func (srv *houseService) ListHouseSummaries(ctx context.Context, caller *entity.Identity, userID string) ([]entity.HouseSummary, error) {
	if err := srv.guard.RequireSelfOrAdmin(caller, userID); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(toAppError(err, "Usuario no encontrado"), "failed to load user")
	}

	if user.Houses == nil {
		return []entity.HouseSummary{}, nil
	}

	return user.Houses, nil
}

// ListHousesWithSensors returns the caller's houses with every resolvable sensor.
// The email in the path must be the caller's own.
func (srv *houseService) ListHousesWithSensors(ctx context.Context, caller *entity.Identity, email string) ([]*entity.HouseDetail, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if entity.NormalizeEmail(email) != entity.NormalizeEmail(caller.Email) {
		srv.log(ctx).Warn("Email does not match caller", slog.String("userID", caller.UserID))

		return nil, domainerrors.ErrForbidden
	}

	houses, err := srv.houseRepo.FindByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list houses")
	}

	logger := srv.log(ctx)
	details := make([]*entity.HouseDetail, 0, len(houses))
	for _, h := range houses {
		details = append(details, &entity.HouseDetail{
			ID:      h.ID,
			Name:    h.Name,
			Address: h.Address,
			OwnerID: h.OwnerID,
			Sensors: srv.provisioner.expandSensors(ctx, logger, h.Sensors),
		})
	}

	return details, nil
}
