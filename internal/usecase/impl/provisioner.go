package impl

import (
	"context"
	"log/slog"
	"time"

	"homesec/config"
	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/errors"
	"homesec/internal/infra/metrics"

	"github.com/sethvargo/go-retry"
)

const defaultDualWriteBaseDelay = 100 * time.Millisecond

// provisioner performs the two-step writes that create a child document and
// then index it on its parent. The store offers no transaction across the
// two collections, so a failed parent update is retried and, if it keeps
// failing, the child is deleted again.
type provisioner struct {
	userRepo   repository.UserRepository
	houseRepo  repository.HouseRepository
	sensorRepo repository.SensorRepository
	retries    uint64
	baseDelay  time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func newProvisioner(
	userRepo repository.UserRepository,
	houseRepo repository.HouseRepository,
	sensorRepo repository.SensorRepository,
	cfg *config.Config,
	logger *slog.Logger,
) *provisioner {
	p := &provisioner{
		userRepo:   userRepo,
		houseRepo:  houseRepo,
		sensorRepo: sensorRepo,
		baseDelay:  defaultDualWriteBaseDelay,
		logger:     logger,
		now:        time.Now,
	}
	if cfg != nil && cfg.Auth != nil {
		p.retries = cfg.Auth.DualWriteRetries
		if cfg.Auth.DualWriteBaseDelay > 0 {
			p.baseDelay = cfg.Auth.DualWriteBaseDelay
		}
	}

	return p
}

// attachHouse inserts the house and pushes its summary onto the owner.
func (p *provisioner) attachHouse(ctx context.Context, logger *slog.Logger, house *entity.House) error {
	house.Sensors = []entity.SensorRef{}
	if err := p.houseRepo.Create(ctx, house); err != nil {
		return errors.Wrap(toAppError(err, "Cliente no encontrado"), "failed to create house")
	}

	return p.link(ctx, logger, "house", house.ID,
		func(ctx context.Context) error {
			return p.userRepo.PushHouse(ctx, house.OwnerID, house.Summary())
		},
		func(ctx context.Context) error {
			return p.houseRepo.Delete(ctx, house.ID)
		},
	)
}

// attachSensor inserts the sensor into its type collection and pushes a reference onto the house.
func (p *provisioner) attachSensor(ctx context.Context, logger *slog.Logger, houseID string, sensor *entity.Sensor) error {
	if sensor.LastReadingAt.IsZero() {
		sensor.LastReadingAt = p.now().UTC()
	}
	if err := p.sensorRepo.Create(ctx, sensor); err != nil {
		return errors.Wrap(toAppError(err, houseNotFoundDetail), "failed to create sensor")
	}

	ref := entity.SensorRef{SensorID: sensor.ID, Type: sensor.Type}

	return p.link(ctx, logger, "sensor", sensor.ID,
		func(ctx context.Context) error {
			return p.houseRepo.PushSensor(ctx, houseID, ref)
		},
		func(ctx context.Context) error {
			return p.sensorRepo.Delete(ctx, sensor.Type, sensor.ID)
		},
	)
}

// link retries push with exponential backoff. Missing parents are not retried.
// When push gives up, compensate runs on a context detached from cancellation.
func (p *provisioner) link(
	ctx context.Context,
	logger *slog.Logger,
	kind, childID string,
	push func(context.Context) error,
	compensate func(context.Context) error,
) error {
	backoff := retry.WithMaxRetries(p.retries, retry.NewExponential(p.baseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := push(ctx)
		if err == nil {
			return nil
		}
		if errors.IsAny(err, repository.ErrUserNotFound, repository.ErrHouseNotFound, repository.ErrInvalidID) {
			return err
		}
		logger.Warn("Parent update failed, retrying", slog.String("kind", kind), slog.Any("error", err))

		return retry.RetryableError(err)
	})
	if err == nil {
		return nil
	}

	compErr := compensate(context.WithoutCancel(ctx))
	metrics.IncrementCompensations(kind, compErr)
	if compErr != nil {
		logger.Error("Compensation failed, orphan document left behind",
			slog.String("kind", kind),
			slog.String("orphan_id", childID),
			slog.Any("error", compErr),
			slog.Any("cause", err),
		)
	} else {
		logger.Warn("Parent update failed, child document removed",
			slog.String("kind", kind),
			slog.String("child_id", childID),
			slog.Any("error", err),
		)
	}

	if errors.IsAny(err, repository.ErrUserNotFound, repository.ErrHouseNotFound) {
		return toAppError(err, "Recurso no encontrado")
	}

	return errors.Wrap(domainerrors.ErrInternal, err.Error())
}

// countSensors sums the sensor references across every house of ownerID.
func (p *provisioner) countSensors(ctx context.Context, ownerID string) (int, error) {
	houses, err := p.houseRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, h := range houses {
		total += len(h.Sensors)
	}

	return total, nil
}

// expandSensors resolves references against their type collections.
// Dangling or unreadable references are logged and skipped.
func (p *provisioner) expandSensors(ctx context.Context, logger *slog.Logger, refs []entity.SensorRef) []*entity.Sensor {
	sensors := make([]*entity.Sensor, 0, len(refs))
	for _, ref := range refs {
		if ref.SensorID == "" || !ref.Type.IsValid() {
			logger.Warn("Skipping malformed sensor reference",
				slog.String("sensor_id", ref.SensorID),
				slog.String("sensor_type", ref.Type.String()),
			)

			continue
		}

		sensor, err := p.sensorRepo.FindByID(ctx, ref.Type, ref.SensorID)
		if err != nil {
			logger.Warn("Skipping unresolved sensor reference",
				slog.String("sensor_id", ref.SensorID),
				slog.String("sensor_type", ref.Type.String()),
				slog.Any("error", err),
			)

			continue
		}
		sensors = append(sensors, sensor)
	}

	return sensors
}
