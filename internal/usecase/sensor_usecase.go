package usecase

import (
	"context"

	"homesec/internal/domain/entity"
)

// AttachSensorInput defines a sensor to install in a house.
type AttachSensorInput struct {
	UserID   string
	HouseID  string
	Type     string
	Location string
	State    string
	// Readings holds the type-specific fields of the sensor.
	Readings map[string]any
}

// AttachSensorOutput returns the generated sensor id.
type AttachSensorOutput struct {
	SensorID string
}

// SensorUsecase defines sensor operations scoped to an owned house.
type SensorUsecase interface {
	AttachSensor(ctx context.Context, caller *entity.Identity, input *AttachSensorInput) (*AttachSensorOutput, error)

	// ListSensorsOfHouse returns the sensors that could be resolved. Dangling references are skipped.
	ListSensorsOfHouse(ctx context.Context, caller *entity.Identity, userID, houseID string) ([]*entity.Sensor, error)
}
