package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"homesec/config"
	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/domain/service"
	"homesec/internal/errors"
	"homesec/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultSensorBrand       = "Generica"
	defaultSensorModelPrefix = "Modelo-"
)

// clientService implements the ClientUsecase interface.
type clientService struct {
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	mailer      service.Mailer
	guard       usecase.Guard
	provisioner *provisioner
	maxSensors  int
	logger      *slog.Logger
	now         func() time.Time
}

// ClientServiceParams holds dependencies for ClientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	HouseRepo  repository.HouseRepository
	SensorRepo repository.SensorRepository
	Hasher     service.PasswordHasher
	Mailer     service.Mailer
	Guard      usecase.Guard
	Config     *config.Config
	Logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		mailer:      params.Mailer,
		guard:       params.Guard,
		provisioner: newProvisioner(params.UserRepo, params.HouseRepo, params.SensorRepo, params.Config, params.Logger),
		maxSensors:  maxSensorsPerClient(params.Config),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func maxSensorsPerClient(cfg *config.Config) int {
	if cfg == nil || cfg.Auth == nil {
		return 0
	}

	return cfg.Auth.MaxSensorsPerClient
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateClient registers a client with a temporary password and mails it.
func (srv *clientService) CreateClient(ctx context.Context, caller *entity.Identity, input *usecase.CreateClientInput) (*usecase.CreateClientOutput, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	return srv.createClient(ctx, input)
}

func (srv *clientService) createClient(ctx context.Context, input *usecase.CreateClientInput) (*usecase.CreateClientOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := entity.NormalizeEmail(input.Email)
	if name == "" || email == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Nombre y correo son obligatorios")
	}

	srv.log(ctx).Info("Creating client", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Client already exists", slog.String("email", email))

		return nil, domainerrors.ErrConflict
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	temporary, err := srv.hasher.GenerateTemporary()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternal, "failed to generate temporary password")
	}

	hash, err := srv.hasher.Hash(temporary)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternal, "failed to hash temporary password")
	}

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleClient,
		Status:       entity.StatusActive,
		CreatedAt:    srv.now().UTC(),
		Houses:       []entity.HouseSummary{},
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create client", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(toAppError(err, "Cliente no encontrado"), "failed to create client")
	}

	// The account exists from here on, so a failed mail does not undo it.
	sent := true
	if err := srv.mailer.Send(ctx, welcomeMessage(ctx, email, temporary)); err != nil {
		sent = false
		srv.log(ctx).Error("Failed to deliver welcome email", slog.String("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Client created", slog.String("userID", user.ID), slog.Bool("welcomeMailSent", sent))
	user.PasswordHash = ""

	return &usecase.CreateClientOutput{User: user, WelcomeMailSent: sent}, nil
}

// CreateClientComplete creates the client, its houses and their sensors.
// Every house and sensor is validated before the first write.
func (srv *clientService) CreateClientComplete(ctx context.Context, caller *entity.Identity, input *usecase.CreateClientCompleteInput) (*usecase.CreateClientOutput, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	plan, err := srv.planHouses(input.Houses)
	if err != nil {
		return nil, err
	}

	out, err := srv.createClient(ctx, &input.Client)
	if err != nil {
		return nil, err
	}

	logger := srv.log(ctx)
	for i, h := range input.Houses {
		house := &entity.House{
			Name:    strings.TrimSpace(h.Name),
			Address: strings.TrimSpace(h.Address),
			OwnerID: out.User.ID,
		}
		if err := srv.provisioner.attachHouse(ctx, logger, house); err != nil {
			return nil, err
		}
		out.User.Houses = append(out.User.Houses, house.Summary())

		for _, sensor := range plan[i] {
			if err := srv.provisioner.attachSensor(ctx, logger, house.ID, sensor); err != nil {
				return nil, err
			}
		}
	}

	logger.Info("Client provisioned", slog.String("userID", out.User.ID), slog.Int("houses", len(input.Houses)))

	return out, nil
}

// planHouses validates the requested sensors and builds their documents.
func (srv *clientService) planHouses(houses []usecase.NewHouseInput) ([][]*entity.Sensor, error) {
	plan := make([][]*entity.Sensor, len(houses))
	total := 0
	for i, h := range houses {
		if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Address) == "" {
			return nil, domainerrors.ErrInvalidInput.WithDetails("Cada casa requiere nombre y dirección")
		}

		for _, s := range h.Sensors {
			sensorType, ok := entity.ParseSensorType(s.Type)
			if !ok {
				return nil, domainerrors.ErrInvalidInput.WithDetails("Tipo de sensor no válido: " + s.Type)
			}
			if s.Location != "" && !entity.IsValidSensorLocation(s.Location) {
				return nil, domainerrors.ErrInvalidInput.WithDetails("Ubicación no válida: " + s.Location)
			}

			plan[i] = append(plan[i], &entity.Sensor{
				Name:     sensorType.String(),
				Type:     sensorType,
				Location: s.Location,
				State:    entity.DefaultSensorState,
				Readings: map[string]any{
					"marca":  defaultSensorBrand,
					"modelo": defaultSensorModelPrefix + strings.ToUpper(sensorType.String()),
				},
			})
			total++
		}
	}

	if srv.maxSensors > 0 && total > srv.maxSensors {
		return nil, domainerrors.ErrInvalidInput.WithDetails(sensorLimitDetail(srv.maxSensors))
	}

	return plan, nil
}

// ListClients returns every client account.
func (srv *clientService) ListClients(ctx context.Context, caller *entity.Identity) ([]*entity.User, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListByRole(ctx, entity.RoleClient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return users, nil
}

// SearchClients matches term against client names and emails.
func (srv *clientService) SearchClients(ctx context.Context, caller *entity.Identity, term string) ([]*entity.User, error) {
	if err := srv.guard.RequireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.Search(ctx, entity.RoleClient, strings.TrimSpace(term))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search clients")
	}

	return users, nil
}

// GetProfile returns the caller's account.
func (srv *clientService) GetProfile(ctx context.Context, caller *entity.Identity) (*entity.User, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(toAppError(err, "Usuario no encontrado"), "failed to load profile")
	}
	user.PasswordHash = ""

	return user, nil
}
