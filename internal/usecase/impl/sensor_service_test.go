package impl

import (
	"context"
	"testing"

	"homesec/internal/domain/entity"
	domainerrors "homesec/internal/domain/errors"
	"homesec/internal/domain/repository"
	"homesec/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSensorService(t *testing.T) (usecase.SensorUsecase, serviceFixtures) {
	fx := newServiceFixtures(t)

	srv := NewSensorService(SensorServiceParams{
		UserRepo:   fx.userRepo,
		HouseRepo:  fx.houseRepo,
		SensorRepo: fx.sensorRepo,
		Guard:      fx.guard,
		Config:     fx.config,
		Logger:     fx.logger,
	})

	return srv, fx
}

func TestSensorService_AttachSensor_Success(t *testing.T) {
	srv, fx := createTestSensorService(t)
	ctx := context.Background()

	fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, clientID).Return(ownedHouse(), nil)
	fx.houseRepo.EXPECT().FindByOwner(ctx, clientID).Return([]*entity.House{ownedHouse()}, nil)
	fx.sensorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Sensor")).
		Run(func(_ context.Context, sensor *entity.Sensor) {
			assert.Equal(t, "humo", sensor.Name)
			assert.Equal(t, entity.DefaultSensorState, sensor.State)
			assert.Equal(t, 3, sensor.Readings["nivel_toxicidad"])
			assert.False(t, sensor.LastReadingAt.IsZero())
			sensor.ID = sensorID
		}).
		Return(nil)
	fx.houseRepo.EXPECT().PushSensor(mock.Anything, houseID, entity.SensorRef{SensorID: sensorID, Type: entity.SensorSmoke}).Return(nil)

	out, err := srv.AttachSensor(ctx, clientIdentity(), &usecase.AttachSensorInput{
		UserID:   clientID,
		HouseID:  houseID,
		Type:     "humo",
		Location: "cocina",
		Readings: map[string]any{"nivel_toxicidad": 3},
	})

	require.NoError(t, err)
	assert.Equal(t, sensorID, out.SensorID)
}

func TestSensorService_AttachSensor_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign house reads as missing", func(t *testing.T) {
		srv, fx := createTestSensorService(t)
		fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, otherID).Return(nil, repository.ErrHouseNotFound)

		_, err := srv.AttachSensor(ctx, adminIdentity(), &usecase.AttachSensorInput{
			UserID: otherID, HouseID: houseID, Type: "gas", Location: "cocina",
		})

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("client acting for someone else", func(t *testing.T) {
		srv, _ := createTestSensorService(t)

		_, err := srv.AttachSensor(ctx, clientIdentity(), &usecase.AttachSensorInput{
			UserID: otherID, HouseID: houseID, Type: "gas", Location: "cocina",
		})

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown type writes nothing", func(t *testing.T) {
		srv, fx := createTestSensorService(t)
		fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, clientID).Return(ownedHouse(), nil)

		_, err := srv.AttachSensor(ctx, clientIdentity(), &usecase.AttachSensorInput{
			UserID: clientID, HouseID: houseID, Type: "laser", Location: "cocina",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("unknown location", func(t *testing.T) {
		srv, fx := createTestSensorService(t)
		fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, clientID).Return(ownedHouse(), nil)

		_, err := srv.AttachSensor(ctx, clientIdentity(), &usecase.AttachSensorInput{
			UserID: clientID, HouseID: houseID, Type: "gas", Location: "azotea",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("sensor limit reached", func(t *testing.T) {
		srv, fx := createTestSensorService(t)
		refs := make([]entity.SensorRef, 10)
		for i := range refs {
			refs[i] = entity.SensorRef{SensorID: sensorID, Type: entity.SensorSound}
		}
		fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, clientID).Return(ownedHouse(), nil)
		fx.houseRepo.EXPECT().FindByOwner(ctx, clientID).Return([]*entity.House{ownedHouse(refs...)}, nil)

		_, err := srv.AttachSensor(ctx, clientIdentity(), &usecase.AttachSensorInput{
			UserID: clientID, HouseID: houseID, Type: "gas", Location: "cocina",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestSensorService_ListSensorsOfHouse(t *testing.T) {
	srv, fx := createTestSensorService(t)
	ctx := context.Background()
	house := ownedHouse(
		entity.SensorRef{SensorID: sensorID, Type: entity.SensorMagnetic},
		entity.SensorRef{SensorID: "bad", Type: "laser"},
	)

	fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, clientID).Return(house, nil)
	fx.sensorRepo.EXPECT().FindByID(ctx, entity.SensorMagnetic, sensorID).
		Return(&entity.Sensor{ID: sensorID, Type: entity.SensorMagnetic}, nil)

	sensors, err := srv.ListSensorsOfHouse(ctx, clientIdentity(), clientID, houseID)

	require.NoError(t, err)
	require.Len(t, sensors, 1)
	assert.Equal(t, entity.SensorMagnetic, sensors[0].Type)
}

func TestSensorService_ListSensorsOfHouse_EmptyHouse(t *testing.T) {
	srv, fx := createTestSensorService(t)
	ctx := context.Background()

	fx.houseRepo.EXPECT().FindByIDAndOwner(ctx, houseID, clientID).Return(ownedHouse(), nil)

	sensors, err := srv.ListSensorsOfHouse(ctx, adminIdentity(), clientID, houseID)

	require.NoError(t, err)
	assert.NotNil(t, sensors)
	assert.Empty(t, sensors)
}
