package repository

import (
	"context"

	"homesec/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrHouseNotFound is returned when a house is absent or not owned by the requested user.
var ErrHouseNotFound = errors.New("house not found")

// HouseRepository defines the persistence operations for houses.
type HouseRepository interface {
	// Create persists a new house and assigns its ID.
	Create(ctx context.Context, house *entity.House) error

	// FindByID retrieves a house by ID.
	FindByID(ctx context.Context, id string) (*entity.House, error)

	// FindByIDAndOwner retrieves a house only when ownerID owns it.
	// Absent and foreign houses both yield ErrHouseNotFound.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.House, error)

	// FindByOwner returns every house owned by ownerID.
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.House, error)

	// PushSensor appends a sensor reference to the house.
	PushSensor(ctx context.Context, id string, ref entity.SensorRef) error

	// Delete removes a house. Used to compensate a failed owner update.
	Delete(ctx context.Context, id string) error
}
