package repository

import (
	"context"

	"homesec/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrSensorNotFound is returned when a sensor document does not exist in its type collection.
	ErrSensorNotFound = errors.New("sensor not found")
	// ErrUnknownSensorType is returned when no collection is registered for a sensor type.
	ErrUnknownSensorType = errors.New("unknown sensor type")
)

// SensorRepository stores sensors in one collection per sensor type.
type SensorRepository interface {
	// Create inserts the sensor into the collection of sensor.Type and assigns its ID.
	Create(ctx context.Context, sensor *entity.Sensor) error

	// FindByID looks the sensor up in the collection of sensorType.
	FindByID(ctx context.Context, sensorType entity.SensorType, id string) (*entity.Sensor, error)

	// Delete removes a sensor. Used to compensate a failed house update.
	Delete(ctx context.Context, sensorType entity.SensorType, id string) error
}
